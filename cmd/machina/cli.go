package main

import (
	"github.com/srevinsaju/machina/internal/meta"
	"github.com/urfave/cli/v2"
)

func initCli() *cli.App {
	app := &cli.App{
		Name:                 meta.AppName,
		Usage:                meta.AppDescription,
		Version:              meta.AppVersion,
		EnableBashCompletion: true,

		Commands: []*cli.Command{
			{
				Name:   "validate",
				Usage:  "Parse the descriptor and check every attribute against the machine models",
				Action: cliValidate,
			},
			{
				Name:   "eval",
				Usage:  "Apply the descriptor to a fresh machine configuration and print the result",
				Action: cliEval,
			},
			{
				Name:   "init",
				Usage:  "Interactively write a starter descriptor in the current directory",
				Action: cliInit,
			},
		},

		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:     "file",
				Required: false,
				Usage:    "The descriptor file which needs to be evaluated",
			},

			&cli.PathFlag{
				Name:     "chdir",
				Required: false,
				Usage:    "The directory where the descriptor is searched for",
				Aliases:  []string{"C"},
			},

			&cli.BoolFlag{
				Name:     "debug",
				Required: false,
				Usage:    "Enable debug mode",
				EnvVars:  []string{meta.EnvVarPrefix + "DEBUG"},
			},

			&cli.BoolFlag{
				Name:     "verbose",
				Required: false,
				Usage:    "Increase logging verbosity, can be repeated",
				Aliases:  []string{"v"},
			},

			&cli.StringFlag{
				Name:        "color",
				Required:    false,
				Usage:       "Configure colored output, one of auto, always, never",
				EnvVars:     []string{meta.EnvVarPrefix + "COLOR"},
				DefaultText: "auto",
			},

			&cli.BoolFlag{
				Name:     "json",
				Required: false,
				Usage:    "Emit logs in JSON format",
				EnvVars:  []string{meta.EnvVarPrefix + "JSON"},
			},

			&cli.BoolFlag{
				Name:     "no-defaults",
				Required: false,
				Usage:    "Do not layer the per-user defaults descriptor underneath",
			},

			&cli.BoolFlag{
				Name:  "logging.local.file",
				Usage: "Mirror logs to a local file",
			},
			&cli.StringFlag{
				Name:  "logging.local.file.path",
				Usage: "Path of the local log file",
				Value: meta.AppName + ".log",
			},
			&cli.BoolFlag{
				Name:  "logging.remote.google-cloud",
				Usage: "Mirror logs to Google Cloud Logging",
			},
			&cli.StringFlag{
				Name:  "logging.remote.google-cloud.project",
				Usage: "Google Cloud project receiving the logs",
			},
		},
	}

	return app
}
