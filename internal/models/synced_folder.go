package models

import (
	"fmt"

	"github.com/bmatcuk/doublestar"
	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

const SyncedFolderModel = "synced_folder"

// SyncedFolder maps a host directory into the guest.
type SyncedFolder struct {
	model.Base

	Source      string
	Destination string
	Mode        string
	Exclude     []string
}

func NewSyncedFolder() *SyncedFolder {
	return &SyncedFolder{Mode: "rw"}
}

func (f *SyncedFolder) Type() string {
	return SyncedFolderModel
}

func (f *SyncedFolder) Setters() model.Setters {
	return model.Setters{
		"source":      model.String(&f.Source),
		"destination": model.String(&f.Destination),
		"mode":        f.setMode,
		"exclude":     f.setExclude,
	}
}

func (f *SyncedFolder) setMode(value any) diag.Diagnostics {
	var diags diag.Diagnostics
	mode, ok := value.(string)
	if !ok || (mode != "rw" && mode != "ro") {
		return diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid attribute value",
			Detail:   fmt.Sprintf("mode must be 'rw' or 'ro', got %v", value),
		})
	}
	f.Mode = mode
	return nil
}

func (f *SyncedFolder) setExclude(value any) diag.Diagnostics {
	diags := model.StringSlice(&f.Exclude)(value)
	if diags.HasErrors() {
		return diags
	}
	for _, pattern := range f.Exclude {
		if _, err := doublestar.Match(pattern, ""); err != nil {
			diags = diags.Append(diag.Diagnostic{
				Severity: diag.SeverityError,
				Summary:  "invalid attribute value",
				Detail:   fmt.Sprintf("'%s' is not a valid exclude pattern", pattern),
			})
		}
	}
	return diags
}

// Excludes reports whether the given path matches one of the folder's
// exclude patterns.
func (f *SyncedFolder) Excludes(path string) bool {
	for _, pattern := range f.Exclude {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (f *SyncedFolder) Action() (model.Action, diag.Diagnostics) {
	folder := config.SyncedFolder{
		Source:      f.Source,
		Destination: f.Destination,
		Mode:        f.Mode,
		Exclude:     f.Exclude,
	}
	return func(target any) diag.Diagnostics {
		cfg, diags := machineTarget(target, SyncedFolderModel)
		if diags.HasErrors() {
			return diags
		}
		cfg.SyncedFolders = append(cfg.SyncedFolders, folder)
		return nil
	}, nil
}
