package meta

var (
	AppVersion = "v0.x"
)

const (
	AppName = "machina"

	AppDescription = "A declarative, descriptor-driven machine configuration tool"

	ConfigFileName     = "machina.hcl"
	ConfigFileNameYAML = "machina.yaml"
	DefaultsFileName   = "defaults.yaml"
	UserConfigDir      = ".machina"

	// EnvVarPrefix prefixes every environment variable the CLI reads,
	// e.g. MACHINA_DEBUG, MACHINA_COLOR.
	EnvVarPrefix = "MACHINA_"
)
