package main

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cellmorph/utils/internal/config"
	"github.com/cellmorph/utils/internal/stream"
)

// ServeCmd runs the WebSocket stream server.
type ServeCmd struct {
	Config string `help:"Path to the HCL configuration file" default:"streams.hcl" type:"path"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if level, err := log.ParseLevel(cfg.Server.LogLevel); err == nil && !cli.Debug {
		logger.SetLevel(level)
	}

	srv, err := stream.NewServer(cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}
	defer srv.Stop()

	logger.Info("Serving generator streams", "streams", len(cfg.Streams), "addr", cfg.ListenAddress())
	return srv.Start()
}
