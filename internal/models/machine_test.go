package models

import (
	"testing"

	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/model"
	"github.com/stretchr/testify/assert"
)

func machineStructure() model.Structure {
	return model.Structure{
		"box":      "ubuntu/jammy",
		"hostname": "web",
		"synced_folders": []any{
			map[string]any{"source": "./", "destination": "/vagrant", "mode": "rw"},
		},
		"networks": []any{
			map[string]any{"kind": "forwarded_port", "guest_port": float64(80), "host_port": float64(8080)},
		},
		"provisioners": []any{
			map[string]any{"kind": "shell", "inline": "apt-get update"},
		},
		"providers": []any{
			map[string]any{"name": "virtualbox", "memory": float64(2048), "cpus": float64(2)},
		},
	}
}

func TestMachine_Populate(t *testing.T) {
	machine, diags := model.New(NewMachine(), machineStructure())
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, machine.Box, "ubuntu/jammy")
	assert.Equal(t, machine.Hostname, "web")
	assert.Equal(t, len(machine.SyncedFolders), 1)
	assert.Equal(t, len(machine.Networks), 1)
	assert.Equal(t, len(machine.Provisioners), 1)
	assert.Equal(t, len(machine.Providers), 1)
}

func TestMachine_Apply(t *testing.T) {
	machine, diags := model.New(NewMachine(), machineStructure())
	assert.Equal(t, diags.HasErrors(), false)

	cfg := config.New()
	assert.Equal(t, model.Apply(machine, cfg).HasErrors(), false)

	assert.Equal(t, cfg.Box, "ubuntu/jammy")
	assert.Equal(t, cfg.Hostname, "web")
	assert.Equal(t, cfg.SyncedFolders[0].Destination, "/vagrant")
	assert.Equal(t, cfg.Networks[0].HostPort, 8080)
	assert.Equal(t, cfg.Provisioners[0].Command, "apt-get update")
	assert.Equal(t, cfg.Providers[0].Memory, 2048)
	assert.NotEqual(t, cfg.ID, "")
}

func TestMachine_ApplyEqualsActionInvocation(t *testing.T) {
	machine, diags := model.New(NewMachine(), machineStructure())
	assert.Equal(t, diags.HasErrors(), false)

	applied := &config.Machine{}
	assert.Equal(t, model.Apply(machine, applied).HasErrors(), false)

	invoked := &config.Machine{}
	action, d := machine.Action()
	assert.Equal(t, d.HasErrors(), false)
	assert.Equal(t, action(invoked).HasErrors(), false)

	assert.Equal(t, applied, invoked)
}

func TestMachine_NestedUnknownAttributeAbortsEverything(t *testing.T) {
	structure := machineStructure()
	structure["synced_folders"] = []any{
		map[string]any{"source": "./", "destination": "/vagrant", "owner": "root"},
	}

	machine, diags := model.New(NewMachine(), structure)
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags.Error(), "unknown attribute")
	assert.Nil(t, machine)
}

func TestMachine_TopLevelUnknownAttribute(t *testing.T) {
	structure := machineStructure()
	structure["cloud"] = "nope"

	machine, diags := model.New(NewMachine(), structure)
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags[0].Detail, "cloud")
	assert.Contains(t, diags[0].Detail, MachineModel)
	assert.Nil(t, machine)
}

func TestMachine_ActionIsRepeatable(t *testing.T) {
	machine, diags := model.New(NewMachine(), machineStructure())
	assert.Equal(t, diags.HasErrors(), false)

	// a populated model can derive its action any number of times
	first := &config.Machine{}
	second := &config.Machine{}
	assert.Equal(t, model.Apply(machine, first).HasErrors(), false)
	assert.Equal(t, model.Apply(machine, second).HasErrors(), false)
	assert.Equal(t, first, second)
}
