package models

import (
	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

const ProviderModel = "provider"

// Provider carries hypervisor specific knobs. DiskSize is in MiB;
// customizations are passed through to the provider untouched.
type Provider struct {
	model.Base

	Name           string
	Memory         int
	Cpus           int
	DiskSize       uint64
	Gui            bool
	Customizations map[string]string
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Type() string {
	return ProviderModel
}

func (p *Provider) Setters() model.Setters {
	return model.Setters{
		"name":           model.String(&p.Name),
		"memory":         model.Int(&p.Memory),
		"cpus":           model.Int(&p.Cpus),
		"disk_size":      model.Uint64(&p.DiskSize),
		"gui":            model.Bool(&p.Gui),
		"customizations": model.StringMap(&p.Customizations),
	}
}

func (p *Provider) Action() (model.Action, diag.Diagnostics) {
	provider := config.Provider{
		Name:           p.Name,
		Memory:         p.Memory,
		Cpus:           p.Cpus,
		DiskSize:       p.DiskSize,
		Gui:            p.Gui,
		Customizations: p.Customizations,
	}
	return func(target any) diag.Diagnostics {
		cfg, diags := machineTarget(target, ProviderModel)
		if diags.HasErrors() {
			return diags
		}
		cfg.Providers = append(cfg.Providers, provider)
		return nil
	}, nil
}
