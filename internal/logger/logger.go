package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/alkime/procflow/internal/config"
)

// SetupLogger configures JSON structured logging for the server and sets it as default.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return setup(os.Stdout, cfg)
}

func setup(w io.Writer, cfg *config.Config) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Level resolves the log level. An explicit non-info LOG_LEVEL wins; otherwise
// development logs at debug and everything else at info.
func Level(cfg *config.Config) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil && level != slog.LevelInfo {
		return level
	}

	if cfg.Env == config.EnvDevelopment {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
