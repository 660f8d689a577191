// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/polysum/internal/types"
)

// DefaultPort is the HTTP port used when none is configured
const DefaultPort = 8000

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port           int      `json:"port,omitempty" yaml:"port,omitempty"`                       // HTTP listen port
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"` // CORS origins; empty means "*"

	// Input gate
	MinChars int `json:"min_chars,omitempty" yaml:"min_chars,omitempty"` // Minimum trimmed input length
	MaxChars int `json:"max_chars,omitempty" yaml:"max_chars,omitempty"` // Maximum trimmed input length

	// Behavior
	Debug   bool `json:"debug,omitempty" yaml:"debug,omitempty"`     // Include agent results in responses
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed agent output
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:     DefaultPort,
		MinChars: types.DefaultMinChars,
		MaxChars: types.DefaultMaxChars,
	}
}

// LoadConfig loads configuration from a JSON or YAML file.
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are accepted since MergeWithDefaults fills them later.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MinChars < 0 {
		return fmt.Errorf("config error: 'min_chars' must be non-negative")
	}
	if c.MaxChars < 0 {
		return fmt.Errorf("config error: 'max_chars' must be non-negative")
	}
	if c.MaxChars > 0 && c.MinChars > c.MaxChars {
		return fmt.Errorf("config error: 'min_chars' (%d) exceeds 'max_chars' (%d)", c.MinChars, c.MaxChars)
	}
	for _, origin := range c.AllowedOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("config error: 'allowed_origins' contains an empty entry")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MinChars == 0 {
		result.MinChars = defaults.MinChars
	}
	if result.MaxChars == 0 {
		result.MaxChars = defaults.MaxChars
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
