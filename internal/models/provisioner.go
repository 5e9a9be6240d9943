package models

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

const ProvisionerModel = "provisioner"

// Provisioner describes one provisioning step run inside the guest after it
// boots. Only the shell kind is implemented at the moment.
type Provisioner struct {
	model.Base

	Kind       string
	Inline     string
	Script     string
	Args       []string
	Env        map[string]string
	EnvFile    string
	Privileged bool
}

func NewProvisioner() *Provisioner {
	return &Provisioner{Kind: "shell"}
}

func (p *Provisioner) Type() string {
	return ProvisionerModel
}

func (p *Provisioner) Setters() model.Setters {
	return model.Setters{
		"kind":       p.setKind,
		"inline":     model.String(&p.Inline),
		"script":     model.String(&p.Script),
		"args":       model.StringSlice(&p.Args),
		"env":        model.StringMap(&p.Env),
		"env_file":   model.String(&p.EnvFile),
		"privileged": model.Bool(&p.Privileged),
	}
}

func (p *Provisioner) setKind(value any) diag.Diagnostics {
	var diags diag.Diagnostics
	kind, ok := value.(string)
	if !ok || kind != "shell" {
		return diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid attribute value",
			Detail:   fmt.Sprintf("only the 'shell' provisioner is supported, got %v", value),
		})
	}
	p.Kind = kind
	return nil
}

// Command renders the single shell command this provisioner runs. Arguments
// are escaped individually so a descriptor can never smuggle shell syntax
// through them.
func (p *Provisioner) Command() string {
	var parts []string
	switch {
	case p.Inline != "":
		parts = append(parts, p.Inline)
	case p.Script != "":
		parts = append(parts, shellescape.Quote(p.Script))
	}
	if len(p.Args) > 0 {
		parts = append(parts, shellescape.QuoteCommand(p.Args))
	}
	return strings.Join(parts, " ")
}

func (p *Provisioner) Action() (model.Action, diag.Diagnostics) {
	var diags diag.Diagnostics
	if p.Inline != "" && p.Script != "" {
		diags = diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "conflicting attributes",
			Detail:   "'inline' and 'script' are mutually exclusive",
		})
	}
	if p.Inline == "" && p.Script == "" && len(p.Args) > 0 {
		diags = diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "missing attribute",
			Detail:   "'args' requires 'inline' or 'script'",
		})
	}
	if diags.HasErrors() {
		return nil, diags
	}

	provisioner := config.Provisioner{
		Kind:       p.Kind,
		Command:    p.Command(),
		Script:     p.Script,
		Env:        p.Env,
		EnvFile:    p.EnvFile,
		Privileged: p.Privileged,
	}
	return func(target any) diag.Diagnostics {
		cfg, diags := machineTarget(target, ProvisionerModel)
		if diags.HasErrors() {
			return diags
		}
		cfg.Provisioners = append(cfg.Provisioners, provisioner)
		return nil
	}, diags
}
