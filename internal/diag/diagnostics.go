package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/srevinsaju/machina/internal/ui"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInvalid = "invalid"
)

type Diagnostic struct {
	Severity string
	Summary  string
	Detail   string
	Source   string
}

func NewDiagnostic(severity, summary, detail, source string) Diagnostic {
	return Diagnostic{
		Severity: severity,
		Summary:  summary,
		Detail:   detail,
		Source:   source,
	}
}

type Diagnostics []Diagnostic

func (d Diagnostics) Len() int {
	return len(d)
}

func (d Diagnostics) Extend(diags Diagnostics) Diagnostics {
	return append(d, diags...)
}

func (d Diagnostics) Append(diag Diagnostic) Diagnostics {
	return append(d, diag)
}

func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (d Diagnostics) HasWarnings() bool {
	for _, diag := range d {
		if diag.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

func (d Diagnostic) Error() string {
	message := fmt.Sprintf("%s: %s, (%s)", d.Severity, d.Summary, d.Detail)
	return message
}

func (d Diagnostics) Error() string {
	count := len(d)
	switch {
	case count == 0:
		return "no diagnostics"
	case count == 1:
		return d[0].Error()
	default:
		return fmt.Sprintf("%s, and %d other diagnostic(s)", d[0].Error(), count-1)
	}
}

func NewError(source, message string) Diagnostic {
	return NewDiagnostic(SeverityError, message, "", source)
}

// NewNotImplementedError reports a model type that did not supply its
// deferred action. This is a programming error on the model author's side,
// never a descriptor problem.
func NewNotImplementedError(source string) Diagnostic {
	return NewError(source, "not implemented")
}

// NewUnknownAttributeError reports a descriptor key that has no registered
// setter on the model it was addressed to. The attribute name and the model
// type are both carried so the host tool can surface them to the user as a
// descriptor validation failure.
func NewUnknownAttributeError(attribute, modelType string) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Summary:  "unknown attribute",
		Detail:   fmt.Sprintf("attribute '%s' is not valid on '%s'", attribute, modelType),
		Source:   modelType,
	}
}

func (d Diagnostics) Write(writer io.Writer) {
	for i, diag := range d {
		_, err := fmt.Fprintf(writer, "%s: %s\n\t%s\n\tsource: %s\n\n",
			ui.Red(fmt.Sprintf("diagnostic %d", i+1)),
			ui.Bold(diag.Summary),
			diag.Detail,
			ui.Grey(diag.Source),
		)
		if err != nil {
			panic(err)
		}
	}
}

// Fatal renders the diagnostics like Write and terminates the process. Only
// the CLI entrypoints call this; library code returns diagnostics instead.
func (d Diagnostics) Fatal(writer io.Writer) {
	d.Write(writer)
	os.Exit(1)
}
