package main

import (
	"log"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/logger"
	"github.com/alkime/procflow/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup structured logging
	logger := logger.SetupLogger(cfg)

	logger.Info("Starting procflow server",
		"env", cfg.Env,
		"port", cfg.Port,
		"provider", cfg.Provider,
	)

	deps, closeDeps, err := server.DepsFromConfig(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build server dependencies: %v", err)
	}
	defer func() {
		if err := closeDeps(); err != nil {
			logger.Error("Failed to close renderer", "error", err)
		}
	}()

	srv := server.New(cfg, logger, deps)
	if err := server.Run(srv); err != nil {
		logger.Error("Failed to start server", "error", err)
		log.Fatalf("Fatal: %v", err)
	}
}
