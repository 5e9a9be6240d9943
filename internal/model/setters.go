package model

import (
	"fmt"

	"github.com/srevinsaju/machina/internal/diag"
)

// The setter constructors below are the vocabulary concrete models build
// their registries from. Descriptor frontends deliver numbers as float64 and
// sequences as []any, so each constructor coerces the dynamic value into the
// declared field type and reports a mismatch otherwise.

func typeError(expected string, got any) diag.Diagnostics {
	var diags diag.Diagnostics
	return diags.Append(diag.Diagnostic{
		Severity: diag.SeverityError,
		Summary:  "invalid attribute value",
		Detail:   fmt.Sprintf("expected %s, got %T", expected, got),
	})
}

func String(dst *string) Setter {
	return func(value any) diag.Diagnostics {
		s, ok := value.(string)
		if !ok {
			return typeError("string", value)
		}
		*dst = s
		return nil
	}
}

func Bool(dst *bool) Setter {
	return func(value any) diag.Diagnostics {
		b, ok := value.(bool)
		if !ok {
			return typeError("bool", value)
		}
		*dst = b
		return nil
	}
}

func Int(dst *int) Setter {
	return func(value any) diag.Diagnostics {
		switch v := value.(type) {
		case int:
			*dst = v
		case int64:
			*dst = int(v)
		case uint64:
			*dst = int(v)
		case float64:
			if v != float64(int(v)) {
				return typeError("integer", value)
			}
			*dst = int(v)
		default:
			return typeError("integer", value)
		}
		return nil
	}
}

func Uint64(dst *uint64) Setter {
	return func(value any) diag.Diagnostics {
		switch v := value.(type) {
		case int:
			if v < 0 {
				return typeError("unsigned integer", value)
			}
			*dst = uint64(v)
		case int64:
			if v < 0 {
				return typeError("unsigned integer", value)
			}
			*dst = uint64(v)
		case uint64:
			*dst = v
		case float64:
			if v < 0 || v != float64(uint64(v)) {
				return typeError("unsigned integer", value)
			}
			*dst = uint64(v)
		default:
			return typeError("unsigned integer", value)
		}
		return nil
	}
}

func StringSlice(dst *[]string) Setter {
	return func(value any) diag.Diagnostics {
		switch v := value.(type) {
		case []string:
			*dst = append([]string{}, v...)
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return typeError("sequence of strings", item)
				}
				out = append(out, s)
			}
			*dst = out
		default:
			return typeError("sequence of strings", value)
		}
		return nil
	}
}

func StringMap(dst *map[string]string) Setter {
	return func(value any) diag.Diagnostics {
		switch v := value.(type) {
		case map[string]string:
			out := make(map[string]string, len(v))
			for k, item := range v {
				out[k] = item
			}
			*dst = out
		case map[string]any:
			out := make(map[string]string, len(v))
			for k, item := range v {
				s, ok := item.(string)
				if !ok {
					return typeError("mapping of strings", item)
				}
				out[k] = s
			}
			*dst = out
		default:
			return typeError("mapping of strings", value)
		}
		return nil
	}
}

// ModelSlice populates a slice of nested models from a sequence of mappings.
// Each element is populated through New on a fresh instance; any failure in
// a nested model aborts the entire population chain, matching the
// no-partial-success contract of the top level.
func ModelSlice[M Model](dst *[]M, fresh func() M) Setter {
	return func(value any) diag.Diagnostics {
		var diags diag.Diagnostics
		seq, ok := value.([]any)
		if !ok {
			return typeError("sequence of mappings", value)
		}
		out := make([]M, 0, len(seq))
		for _, item := range seq {
			mapping, ok := item.(map[string]any)
			if !ok {
				return typeError("mapping", item)
			}
			m, d := New(fresh(), Structure(mapping))
			diags = diags.Extend(d)
			if d.HasErrors() {
				return diags
			}
			out = append(out, m)
		}
		*dst = out
		return diags
	}
}
