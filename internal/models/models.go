// Package models contains the concrete machine configuration models. Each
// model declares its setter registry and derives a deferred action that
// mutates the host config.Machine when applied.
package models

import (
	"fmt"

	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/diag"
)

// machineTarget asserts the opaque action target back to the host
// configuration object. Actions are the only place in the repository where
// the target's concrete type is known.
func machineTarget(target any, source string) (*config.Machine, diag.Diagnostics) {
	cfg, ok := target.(*config.Machine)
	if !ok {
		var diags diag.Diagnostics
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "invalid target",
			Detail:   fmt.Sprintf("expected *config.Machine, got %T", target),
			Source:   source,
		})
	}
	return cfg, nil
}
