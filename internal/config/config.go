// Package config handles application configuration management.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "IDENTICON"

// Config holds all application configuration.
type Config struct {
	// Base directory for history and logs (~/.identicon)
	BaseDir string `envconfig:"BASE_DIR"`

	// Directory generated images are written to. "." is the working directory.
	OutDir string `envconfig:"OUT_DIR"`

	// Maximum number of identicons generated in parallel by batch runs
	Jobs int `envconfig:"JOBS"`

	// Log level: "debug", "info", "warn", "error"
	LogLevel string `envconfig:"LOG_LEVEL"`

	// Record every generation in the history database
	HistoryEnabled bool `envconfig:"HISTORY_ENABLED"`
}

// Load reads configuration from IDENTICON_* environment variables on top of
// DefaultConfig. It touches no files; the history database and the log
// create their directories under BaseDir when they are opened.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("invalid configuration: jobs must be at least 1, got %d", c.Jobs)
	}
	if c.BaseDir == "" {
		return fmt.Errorf("invalid configuration: base directory is empty")
	}
	return nil
}
