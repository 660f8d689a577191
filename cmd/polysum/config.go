package main

import (
	"fmt"

	"github.com/jonathan/polysum/internal/config"
)

// loadConfig reads the optional config file and applies POLYSUM_* environment overrides.
// CLI flags are applied by the caller afterwards so they take priority.
func loadConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, fmt.Errorf("failed to apply environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
