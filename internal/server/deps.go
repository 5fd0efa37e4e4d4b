package server

import (
	"fmt"
	"log/slog"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/keyring"
	"github.com/alkime/procflow/internal/render"
)

// DepsFromConfig builds the model flow and export renderer described by cfg.
// Generation stays disabled when no API key is available; the returned close
// function releases the browser.
func DepsFromConfig(cfg *config.Config, logger *slog.Logger) (Deps, func() error, error) {
	deps := Deps{}
	closer := func() error { return nil }

	apiKey := keyring.Resolve(cfg.APIKey(), cfg.Provider)
	if apiKey == "" {
		logger.Warn("No API key configured, diagram generation disabled", "provider", cfg.Provider)
	} else {
		gen, err := content.NewGenerator(cfg.Provider, apiKey, content.WithModel(cfg.Model))
		if err != nil {
			return Deps{}, closer, fmt.Errorf("failed to create generator: %w", err)
		}
		deps.Flow = content.NewFlow(gen, logger)
	}

	if cfg.ExportEnabled {
		renderer := render.NewChromeRenderer(render.Config{
			Bin:        cfg.ChromeBin,
			ControlURL: cfg.ChromeURL,
			Timeout:    cfg.RenderTimeout,
		}, logger)
		deps.Renderer = renderer
		closer = renderer.Close
	}

	return deps, closer, nil
}
