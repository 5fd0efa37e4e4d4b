package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"
	// EnvDevelopment represents the development environment.
	EnvDevelopment = "development"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Language model settings
	Provider        string `envconfig:"LLM_PROVIDER" default:"openai"`
	Model           string `envconfig:"LLM_MODEL"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`

	// Export settings
	ChromeBin     string        `envconfig:"CHROME_BIN"`
	ChromeURL     string        `envconfig:"CHROME_URL"`
	RenderTimeout time.Duration `envconfig:"RENDER_TIMEOUT" default:"30s"`
	ExportEnabled bool          `envconfig:"EXPORT_ENABLED" default:"true"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional for development)
	if err := godotenv.Load(); err != nil {
		// Not an error if file doesn't exist (expected in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// APIKey returns the configured key for the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}

	return c.OpenAIAPIKey
}

// BuildCSP constructs Content Security Policy based on mode.
// Both modes allow the mermaid.js bundle from jsDelivr.
func BuildCSP(mode string) string {
	if mode == "strict" {
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self' https://cdn.jsdelivr.net; " +
			"img-src 'self' data: blob:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// Development/relaxed CSP
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
		"img-src 'self' data: blob:"
}
