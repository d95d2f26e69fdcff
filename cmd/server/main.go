package main

import (
	"os"

	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/Autsav24/EDIX12/pkg/config"
	"github.com/Autsav24/EDIX12/pkg/server"
)

func main() {
	app := &cli.App{
		Name:  "edix12-server",
		Usage: "HTTP service for X12 healthcare transaction build/parse/validate",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Listen address override, e.g. :9090",
			},
			&cli.StringFlag{
				Name:  "profiles-file",
				Usage: "YAML payer profile file shadowing the built-ins",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if listen := c.String("listen"); listen != "" {
		cfg.Listen = listen
	}
	if profiles := c.String("profiles-file"); profiles != "" {
		cfg.ProfilesFile = profiles
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	log.Printf("listening on %s", cfg.Listen)
	return s.Listen()
}
