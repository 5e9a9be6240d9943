package models

import (
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

const MachineModel = "machine"

// Machine is the top level model a descriptor populates. Nested collections
// are models themselves; their actions are folded into the machine's own
// action in declaration order.
type Machine struct {
	model.Base

	Box          string
	BoxURL       string
	BoxVersion   string
	Hostname     string
	Communicator string

	SyncedFolders []*SyncedFolder
	Networks      []*Network
	Provisioners  []*Provisioner
	Providers     []*Provider
}

func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) Type() string {
	return MachineModel
}

func (m *Machine) Setters() model.Setters {
	return model.Setters{
		"box":            model.String(&m.Box),
		"box_url":        model.String(&m.BoxURL),
		"box_version":    model.String(&m.BoxVersion),
		"hostname":       model.String(&m.Hostname),
		"communicator":   model.String(&m.Communicator),
		"synced_folders": model.ModelSlice(&m.SyncedFolders, NewSyncedFolder),
		"networks":       model.ModelSlice(&m.Networks, NewNetwork),
		"provisioners":   model.ModelSlice(&m.Provisioners, NewProvisioner),
		"providers":      model.ModelSlice(&m.Providers, NewProvider),
	}
}

func (m *Machine) Action() (model.Action, diag.Diagnostics) {
	var diags diag.Diagnostics

	box := m.Box
	boxURL := m.BoxURL
	boxVersion := m.BoxVersion
	hostname := m.Hostname
	communicator := m.Communicator

	actions := []model.Action{
		func(target any) diag.Diagnostics {
			cfg, d := machineTarget(target, MachineModel)
			if d.HasErrors() {
				return d
			}
			cfg.Box = box
			cfg.BoxURL = boxURL
			cfg.BoxVersion = boxVersion
			cfg.Hostname = hostname
			cfg.Communicator = communicator
			return nil
		},
	}

	for _, folder := range m.SyncedFolders {
		action, d := model.Derive(folder)
		diags = diags.Extend(d)
		actions = append(actions, action)
	}
	for _, network := range m.Networks {
		action, d := model.Derive(network)
		diags = diags.Extend(d)
		actions = append(actions, action)
	}
	for _, provisioner := range m.Provisioners {
		action, d := model.Derive(provisioner)
		diags = diags.Extend(d)
		actions = append(actions, action)
	}
	for _, provider := range m.Providers {
		action, d := model.Derive(provider)
		diags = diags.Extend(d)
		actions = append(actions, action)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return model.Sequence(actions...), diags
}
