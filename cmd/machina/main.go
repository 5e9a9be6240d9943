package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/srevinsaju/machina/internal/meta"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	log.SetOutput(os.Stdout)

	if os.Getenv(meta.EnvVarPrefix+"DEBUG") != "" {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	app := initCli()
	if err := app.Run(os.Args); err != nil {
		panic(err)
	}
}
