package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/alkime/procflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LLM_PROVIDER", "RENDER_TIMEOUT", "PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("RENDER_TIMEOUT", "5s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sk-ant-test", cfg.APIKey())
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("RENDER_TIMEOUT", "soon")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestBuildCSP(t *testing.T) {
	strict := config.BuildCSP("strict")
	relaxed := config.BuildCSP("relaxed")

	assert.Contains(t, strict, "https://cdn.jsdelivr.net")
	assert.NotContains(t, strict, "unsafe-inline' https")
	assert.Contains(t, relaxed, "'unsafe-inline' https://cdn.jsdelivr.net")
}
