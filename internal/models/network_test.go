package models

import (
	"testing"

	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNetwork_Populate(t *testing.T) {
	n, diags := model.New(NewNetwork(), model.Structure{
		"kind":    "private_network",
		"address": "192.168.56.10",
		"netmask": "255.255.255.0",
	})
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, n.Kind, "private_network")
	assert.Equal(t, n.Address, "192.168.56.10")
}

func TestNetwork_InvalidKind(t *testing.T) {
	_, diags := model.New(NewNetwork(), model.Structure{
		"kind": "warp_drive",
	})
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags.Error(), "invalid attribute value")
}

func TestNetwork_ForwardedPortAction(t *testing.T) {
	n, diags := model.New(NewNetwork(), model.Structure{
		"kind":         "forwarded_port",
		"guest_port":   float64(22),
		"host_port":    float64(2222),
		"auto_correct": true,
	})
	assert.Equal(t, diags.HasErrors(), false)

	cfg := &config.Machine{}
	assert.Equal(t, model.Apply(n, cfg).HasErrors(), false)
	assert.Equal(t, cfg.Networks[0], config.Network{
		Kind:        "forwarded_port",
		GuestPort:   22,
		HostPort:    2222,
		AutoCorrect: true,
	})
}
