package server_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestDepsFromConfig(t *testing.T) {
	gokeyring.MockInit()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("no key disables generation", func(t *testing.T) {
		deps, closer, err := server.DepsFromConfig(&config.Config{Provider: "openai"}, logger)
		require.NoError(t, err)
		defer func() { _ = closer() }()

		assert.Nil(t, deps.Flow)
		assert.Nil(t, deps.Renderer)
	})

	t.Run("key and export", func(t *testing.T) {
		cfg := &config.Config{Provider: "anthropic", AnthropicAPIKey: "sk-ant", ExportEnabled: true}
		deps, closer, err := server.DepsFromConfig(cfg, logger)
		require.NoError(t, err)
		defer func() { _ = closer() }()

		assert.NotNil(t, deps.Flow)
		assert.NotNil(t, deps.Renderer)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, _, err := server.DepsFromConfig(&config.Config{Provider: "llama", OpenAIAPIKey: "k"}, logger)
		assert.Error(t, err)
	})
}
