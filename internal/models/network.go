package models

import (
	"fmt"

	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
	"github.com/srevinsaju/machina/internal/x"
)

const NetworkModel = "network"

var networkKinds = []string{"private_network", "public_network", "forwarded_port"}

// Network describes one network attachment or port forward.
type Network struct {
	model.Base

	Kind        string
	Address     string
	Netmask     string
	Bridge      string
	GuestPort   int
	HostPort    int
	AutoCorrect bool
}

func NewNetwork() *Network {
	return &Network{}
}

func (n *Network) Type() string {
	return NetworkModel
}

func (n *Network) Setters() model.Setters {
	return model.Setters{
		"kind":         n.setKind,
		"address":      model.String(&n.Address),
		"netmask":      model.String(&n.Netmask),
		"bridge":       model.String(&n.Bridge),
		"guest_port":   model.Int(&n.GuestPort),
		"host_port":    model.Int(&n.HostPort),
		"auto_correct": model.Bool(&n.AutoCorrect),
	}
}

func (n *Network) setKind(value any) diag.Diagnostics {
	var diags diag.Diagnostics
	kind, ok := value.(string)
	if !ok || !x.Contains(networkKinds, kind) {
		return diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid attribute value",
			Detail:   fmt.Sprintf("kind must be one of %v, got %v", networkKinds, value),
		})
	}
	n.Kind = kind
	return nil
}

func (n *Network) Action() (model.Action, diag.Diagnostics) {
	network := config.Network{
		Kind:        n.Kind,
		Address:     n.Address,
		Netmask:     n.Netmask,
		Bridge:      n.Bridge,
		GuestPort:   n.GuestPort,
		HostPort:    n.HostPort,
		AutoCorrect: n.AutoCorrect,
	}
	return func(target any) diag.Diagnostics {
		cfg, diags := machineTarget(target, NetworkModel)
		if diags.HasErrors() {
			return diags
		}
		cfg.Networks = append(cfg.Networks, network)
		return nil
	}, nil
}
