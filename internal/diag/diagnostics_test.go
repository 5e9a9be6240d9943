package diag

import (
	"bytes"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_HasErrors(t *testing.T) {
	var diags Diagnostics
	assert.Equal(t, diags.HasErrors(), false)

	diags = diags.Append(NewDiagnostic(SeverityWarning, "something odd", "", "test"))
	assert.Equal(t, diags.HasErrors(), false)
	assert.Equal(t, diags.HasWarnings(), true)

	diags = diags.Append(NewError("test", "something broke"))
	assert.Equal(t, diags.HasErrors(), true)
}

func TestDiagnostics_Error(t *testing.T) {
	var diags Diagnostics
	assert.Equal(t, diags.Error(), "no diagnostics")

	diags = diags.Append(NewError("test", "something broke"))
	assert.Contains(t, diags.Error(), "something broke")

	diags = diags.Append(NewError("test", "something else broke"))
	assert.Contains(t, diags.Error(), "1 other diagnostic(s)")
}

func TestNewUnknownAttributeError(t *testing.T) {
	d := NewUnknownAttributeError("owner", "synced_folder")
	assert.Equal(t, d.Severity, SeverityError)
	assert.Equal(t, d.Summary, "unknown attribute")
	assert.Contains(t, d.Detail, "owner")
	assert.Contains(t, d.Detail, "synced_folder")
	assert.Equal(t, d.Source, "synced_folder")
}

func TestDiagnostics_Write(t *testing.T) {
	var diags Diagnostics
	diags = diags.Append(NewUnknownAttributeError("owner", "synced_folder"))

	var buf bytes.Buffer
	diags.Write(&buf)

	rendered := stripansi.Strip(buf.String())
	assert.Contains(t, rendered, "diagnostic 1")
	assert.Contains(t, rendered, "unknown attribute")
	assert.Contains(t, rendered, "source: synced_folder")
}

func TestNewNotImplementedError(t *testing.T) {
	d := NewNotImplementedError("machine")
	assert.Equal(t, d.Summary, "not implemented")
	assert.Equal(t, d.Source, "machine")
}
