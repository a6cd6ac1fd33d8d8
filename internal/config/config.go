// Package config loads tool settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all settings, populated from FARS_-prefixed environment
// variables. Command-line flags override DataDir per invocation.
type Config struct {
	DataDir   string `envconfig:"DATA_DIR" default:"."`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FARS", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid FARS_LOG_LEVEL %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid FARS_LOG_FORMAT %q", cfg.LogFormat)
	}

	return &cfg, nil
}
