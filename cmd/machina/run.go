package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/srevinsaju/machina/internal/config"
	"github.com/srevinsaju/machina/internal/descriptor"
	"github.com/srevinsaju/machina/internal/diag"
	"github.com/srevinsaju/machina/internal/logging"
	"github.com/srevinsaju/machina/internal/meta"
	"github.com/srevinsaju/machina/internal/model"
	"github.com/srevinsaju/machina/internal/models"
	"github.com/srevinsaju/machina/internal/ui"
	"github.com/srevinsaju/machina/internal/x"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func newLogger(ctx *cli.Context) *logrus.Logger {
	ui.ConfigureColors(ctx.String("color"))

	verbosity := ctx.Count("verbose")
	if ctx.Bool("debug") && verbosity < 2 {
		verbosity = 2
	}
	cfg := logging.Config{
		Verbosity:     verbosity,
		JSON:          ctx.Bool("json"),
		CorrelationID: uuid.NewString(),
		Sinks:         logging.ParseSinksFromCLI(ctx),
	}
	return x.MustReturn(logging.New(cfg)).(*logrus.Logger)
}

// loadStructure resolves the descriptor path, parses it, and layers the
// per-user defaults descriptor underneath unless --no-defaults is given.
func loadStructure(ctx *cli.Context, fs afero.Fs, logger *logrus.Logger) (model.Structure, string, diag.Diagnostics) {
	var diags diag.Diagnostics

	path := ctx.Path("file")
	if path == "" {
		dir := ctx.Path("chdir")
		if dir == "" {
			dir = "."
		}
		found, d := descriptor.Find(fs, dir)
		diags = diags.Extend(d)
		if d.HasErrors() {
			return nil, "", diags
		}
		path = found
	}

	structure, d := descriptor.Load(fs, path)
	diags = diags.Extend(d)
	if d.HasErrors() {
		return nil, path, diags
	}

	if ctx.Bool("no-defaults") {
		return structure, path, diags
	}

	defaultsPath, err := descriptor.UserDefaultsPath()
	if err != nil {
		logger.Debugf("could not resolve user defaults path: %s", err)
		return structure, path, diags
	}
	exists, err := afero.Exists(fs, defaultsPath)
	if err != nil || !exists {
		return structure, path, diags
	}

	logger.Debugf("layering user defaults from %s", defaultsPath)
	base, d := descriptor.Load(fs, defaultsPath)
	diags = diags.Extend(d)
	if d.HasErrors() {
		return nil, path, diags
	}
	merged, d := descriptor.Merge(base, structure)
	diags = diags.Extend(d)
	if d.HasErrors() {
		return nil, path, diags
	}
	return merged, path, diags
}

func cliValidate(ctx *cli.Context) error {
	logger := newLogger(ctx)
	fs := afero.NewOsFs()

	structure, path, diags := loadStructure(ctx, fs, logger)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	machine, d := model.New(models.NewMachine(), structure)
	diags = diags.Extend(d)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	// deriving the action surfaces cross-attribute conflicts too
	_, d = model.Derive(machine)
	diags = diags.Extend(d)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	fmt.Println(ui.Descriptor, ui.Bold(path))
	fmt.Printf("%s %s box=%s hostname=%s\n",
		ui.SubItem, ui.Machine, machine.Box, machine.Hostname)
	fmt.Printf("%s %s synced_folders=%d networks=%d providers=%d\n",
		ui.SubItem, ui.Options,
		len(machine.SyncedFolders), len(machine.Networks), len(machine.Providers))
	for _, provisioner := range machine.Provisioners {
		privileged := ui.False
		if provisioner.Privileged {
			privileged = ui.True
		}
		fmt.Printf("%s %s %s privileged=%s\n",
			ui.Plus, ui.Color("cyan", provisioner.Kind), provisioner.Command(), privileged)
	}
	ui.Success("descriptor is valid")
	return nil
}

func cliEval(ctx *cli.Context) error {
	logger := newLogger(ctx)
	fs := afero.NewOsFs()

	structure, _, diags := loadStructure(ctx, fs, logger)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	machine, d := model.New(models.NewMachine(), structure)
	diags = diags.Extend(d)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	cfg := config.New()
	d = model.Apply(machine, cfg)
	diags = diags.Extend(d)
	if diags.HasErrors() {
		diags.Fatal(os.Stderr)
	}

	// env files are host-side state, resolved only after the deferred
	// actions have run
	for i := range cfg.Provisioners {
		provisioner := &cfg.Provisioners[i]
		if provisioner.EnvFile == "" {
			continue
		}
		env, d := descriptor.ParseEnvFile(fs, provisioner.EnvFile)
		diags = diags.Extend(d)
		if d.HasErrors() {
			diags.Fatal(os.Stderr)
		}
		if provisioner.Env == nil {
			provisioner.Env = map[string]string{}
		}
		for k, v := range env {
			if _, ok := provisioner.Env[k]; !ok {
				provisioner.Env[k] = v
			}
		}
	}

	out := x.MustReturn(yaml.Marshal(cfg)).([]byte)
	fmt.Print(string(out))
	return nil
}

func cliInit(ctx *cli.Context) error {
	ui.ConfigureColors(ctx.String("color"))
	fs := afero.NewOsFs()

	path := meta.ConfigFileName
	if x.FileExists(path) {
		if !ui.PromptYesNo(path + " already exists, overwrite?") {
			return nil
		}
	}

	box := ui.PromptString("Which box should the machine boot?", "ubuntu/jammy")
	hostname := ui.PromptString("Hostname of the machine", "machina")
	provider := ui.PromptSelect("Which provider will run the machine?", []string{"virtualbox", "libvirt", "vmware_desktop"})
	memory := ui.PromptString("Memory (MiB)", "2048")
	cpus := ui.PromptString("CPUs", "2")

	if _, err := strconv.Atoi(memory); err != nil {
		ui.Error("memory must be an integer")
	}
	if _, err := strconv.Atoi(cpus); err != nil {
		ui.Error("cpus must be an integer")
	}

	content := fmt.Sprintf(`box      = %q
hostname = %q

providers = [
  {
    name   = %q
    memory = %s
    cpus   = %s
  },
]
`, box, hostname, provider, memory, cpus)

	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return err
	}

	ui.Success("wrote %s", path)
	return nil
}
