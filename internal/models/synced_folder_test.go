package models

import (
	"testing"

	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSyncedFolder_Populate(t *testing.T) {
	folder, diags := model.New(NewSyncedFolder(), model.Structure{
		"source":      "./",
		"destination": "/vagrant",
		"mode":        "rw",
		"exclude":     []any{".git/**", "node_modules/**"},
	})
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, folder.Source, "./")
	assert.Equal(t, folder.Destination, "/vagrant")
	assert.Equal(t, folder.Mode, "rw")
	assert.Equal(t, folder.Exclude, []string{".git/**", "node_modules/**"})
}

func TestSyncedFolder_DefaultMode(t *testing.T) {
	folder, diags := model.New(NewSyncedFolder(), model.Structure{
		"source":      "./",
		"destination": "/vagrant",
	})
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, folder.Mode, "rw")
}

func TestSyncedFolder_InvalidMode(t *testing.T) {
	_, diags := model.New(NewSyncedFolder(), model.Structure{
		"mode": "rwx",
	})
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags.Error(), "invalid attribute value")
}

func TestSyncedFolder_UnknownAttribute(t *testing.T) {
	folder, diags := model.New(NewSyncedFolder(), model.Structure{
		"source": "./",
		"owner":  "root",
	})
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags[0].Detail, "owner")
	assert.Contains(t, diags[0].Detail, SyncedFolderModel)
	assert.Nil(t, folder)
}

func TestSyncedFolder_InvalidExcludePattern(t *testing.T) {
	_, diags := model.New(NewSyncedFolder(), model.Structure{
		"exclude": []any{"[invalid"},
	})
	assert.Equal(t, diags.HasErrors(), true)
}

func TestSyncedFolder_Excludes(t *testing.T) {
	folder, diags := model.New(NewSyncedFolder(), model.Structure{
		"exclude": []any{"*.log"},
	})
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, folder.Excludes("debug.log"), true)
	assert.Equal(t, folder.Excludes("main.go"), false)
}

func TestSyncedFolder_Action(t *testing.T) {
	folder, diags := model.New(NewSyncedFolder(), model.Structure{
		"source":      "./",
		"destination": "/vagrant",
		"mode":        "ro",
	})
	assert.Equal(t, diags.HasErrors(), false)

	cfg := &config.Machine{}
	assert.Equal(t, model.Apply(folder, cfg).HasErrors(), false)
	assert.Equal(t, len(cfg.SyncedFolders), 1)
	assert.Equal(t, cfg.SyncedFolders[0], config.SyncedFolder{
		Source:      "./",
		Destination: "/vagrant",
		Mode:        "ro",
	})
}

func TestSyncedFolder_ActionRejectsForeignTarget(t *testing.T) {
	folder := NewSyncedFolder()
	diags := model.Apply(folder, "not a machine")
	assert.Equal(t, diags.HasErrors(), true)
	assert.Contains(t, diags.Error(), "invalid target")
}
