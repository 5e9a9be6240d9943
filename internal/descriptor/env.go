package descriptor

import (
	"github.com/hashicorp/go-envparse"
	"github.com/spf13/afero"
	"github.com/srevinsaju/machina/internal/diag"
)

// ParseEnvFile reads a dotenv style file referenced by a provisioner's
// env_file attribute. The model layer itself never touches the filesystem;
// the host resolves env files after the configuration has been applied.
func ParseEnvFile(fs afero.Fs, path string) (map[string]string, diag.Diagnostics) {
	var diags diag.Diagnostics

	f, err := fs.Open(path)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "could not read env file",
			Detail:   err.Error(),
			Source:   path,
		})
	}
	defer f.Close()

	env, err := envparse.Parse(f)
	if err != nil {
		return nil, diags.Append(diag.Diagnostic{
			Severity: diag.SeverityError,
			Summary:  "could not parse env file",
			Detail:   err.Error(),
			Source:   path,
		})
	}
	return env, diags
}
