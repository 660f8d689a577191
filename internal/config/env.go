package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv
const (
	EnvPort           = "POLYSUM_PORT"
	EnvMinChars       = "POLYSUM_MIN_CHARS"
	EnvMaxChars       = "POLYSUM_MAX_CHARS"
	EnvAllowedOrigins = "POLYSUM_ALLOWED_ORIGINS"
)

// ApplyEnv overrides fields of c with any POLYSUM_* environment variables that are set.
func (c *Config) ApplyEnv() error {
	if err := envInt(EnvPort, &c.Port); err != nil {
		return err
	}
	if err := envInt(EnvMinChars, &c.MinChars); err != nil {
		return err
	}
	if err := envInt(EnvMaxChars, &c.MaxChars); err != nil {
		return err
	}

	if raw := os.Getenv(EnvAllowedOrigins); raw != "" {
		var origins []string
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.AllowedOrigins = origins
	}
	return nil
}

func envInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	*dst = v
	return nil
}
