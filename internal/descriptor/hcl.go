package descriptor

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/model"
)

// parseHCL evaluates every top level attribute of an HCL descriptor into the
// generic structure. Descriptors are data, not programs: attributes must be
// literal expressions, and block syntax is rejected in favour of attribute
// syntax so both frontends describe the same shape.
func parseHCL(src []byte, filename string) (model.Structure, diag.Diagnostics) {
	var diags diag.Diagnostics

	parser := hclparse.NewParser()
	f, hclDiags := parser.ParseHCL(src, filename)
	if hclDiags.HasErrors() {
		return nil, appendHclDiagnostics(diags, hclDiags, filename)
	}

	attrs, hclDiags := f.Body.JustAttributes()
	if hclDiags.HasErrors() {
		return nil, appendHclDiagnostics(diags, hclDiags, filename)
	}

	structure := model.Structure{}
	for name, attr := range attrs {
		value, hclDiags := attr.Expr.Value(nil)
		if hclDiags.HasErrors() {
			return nil, appendHclDiagnostics(diags, hclDiags, filename)
		}
		converted, err := ctyToGo(value)
		if err != nil {
			return nil, diags.Append(diag.Diagnostic{
				Severity: diag.SeverityError,
				Summary:  "invalid descriptor value",
				Detail:   fmt.Sprintf("attribute '%s': %s", name, err),
				Source:   filename,
			})
		}
		structure[name] = converted
	}
	return structure, diags
}

func appendHclDiagnostics(diags diag.Diagnostics, hclDiags hcl.Diagnostics, filename string) diag.Diagnostics {
	for _, d := range hclDiags {
		severity := diag.SeverityWarning
		if d.Severity == hcl.DiagError {
			severity = diag.SeverityError
		}
		source := filename
		if d.Subject != nil {
			source = d.Subject.String()
		}
		diags = diags.Append(diag.NewDiagnostic(severity, d.Summary, d.Detail, source))
	}
	return diags
}
