// Package descriptor reads machine descriptor files and turns them into the
// generic structure the model layer is populated from. Two frontends are
// supported, HCL and YAML, both normalized through cty so models cannot tell
// them apart.
package descriptor

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/meta"
	"github.com/srevinsaju/machina/internal/model"
)

// Load reads the descriptor at path and parses it according to its
// extension.
func Load(fs afero.Fs, path string) (model.Structure, diag.Diagnostics) {
	var diags diag.Diagnostics

	log.Debugf("loading descriptor from %s", path)
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "could not read descriptor",
			Detail:   err.Error(),
			Source:   path,
		})
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return parseHCL(src, path)
	case ".yaml", ".yml":
		return parseYAML(src, path)
	default:
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "unsupported descriptor format",
			Detail:   "descriptors must end in .hcl, .yaml or .yml",
			Source:   path,
		})
	}
}

// Find locates a descriptor in the given directory, preferring the HCL
// variant when both exist.
func Find(fs afero.Fs, dir string) (string, diag.Diagnostics) {
	var diags diag.Diagnostics
	for _, name := range []string{meta.ConfigFileName, meta.ConfigFileNameYAML} {
		candidate := filepath.Join(dir, name)
		exists, err := afero.Exists(fs, candidate)
		if err == nil && exists {
			return candidate, diags
		}
	}
	return "", diags.Append(diag.Diagnostic{
		Severity: diag.SeverityError,
		Summary:  "no descriptor found",
		Detail:   "expected " + meta.ConfigFileName + " or " + meta.ConfigFileNameYAML + " in " + dir,
		Source:   dir,
	})
}

// UserDefaultsPath returns the per-user defaults descriptor, which is layered
// underneath every project descriptor when present.
func UserDefaultsPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.UserConfigDir, meta.DefaultsFileName), nil
}
