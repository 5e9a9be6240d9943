package descriptor

import (
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
	ctyyaml "github.com/zclconf/go-cty-yaml"
)

// parseYAML decodes a YAML descriptor through cty so that YAML and HCL
// descriptors produce identical generic structures.
func parseYAML(src []byte, filename string) (model.Structure, diag.Diagnostics) {
	var diags diag.Diagnostics

	ty, err := ctyyaml.Standard.ImpliedType(src)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid descriptor",
			Detail:   err.Error(),
			Source:   filename,
		})
	}

	value, err := ctyyaml.Standard.Unmarshal(src, ty)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid descriptor",
			Detail:   err.Error(),
			Source:   filename,
		})
	}

	converted, err := ctyToGo(value)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid descriptor value",
			Detail:   err.Error(),
			Source:   filename,
		})
	}

	structure, ok := converted.(map[string]any)
	if !ok {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid descriptor",
			Detail:   "top level of a descriptor must be a mapping",
			Source:   filename,
		})
	}
	return structure, diags
}
