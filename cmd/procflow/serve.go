package main

import (
	"fmt"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/logger"
	"github.com/alkime/procflow/internal/server"
)

// ServeCmd runs the HTTP server.
type ServeCmd struct {
	Port string `flag:"" optional:"" help:"Listen port (overrides PORT)"`
}

// Run executes the serve command.
func (c *ServeCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.Port != "" {
		cfg.Port = c.Port
	}

	log := logger.SetupLogger(cfg)

	deps, closeDeps, err := server.DepsFromConfig(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDeps(); err != nil {
			log.Error("Failed to close renderer", "error", err)
		}
	}()

	return server.Run(server.New(cfg, log, deps))
}
