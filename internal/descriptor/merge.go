package descriptor

import (
	"github.com/imdario/mergo"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

// Merge layers an overlay structure on top of a base structure. Keys present
// in the overlay win; keys only present in the base fill the gaps. The
// result feeds a single Populate call, so defaults and overrides go through
// the same unknown-attribute check as any other structure.
func Merge(base, overlay model.Structure) (model.Structure, diag.Diagnostics) {
	var diags diag.Diagnostics

	merged := map[string]any{}
	for k, v := range overlay {
		merged[k] = v
	}
	if err := mergo.Merge(&merged, map[string]any(base)); err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "could not merge descriptors",
			Detail:   err.Error(),
			Source:   "descriptor",
		})
	}
	return model.Structure(merged), diags
}
