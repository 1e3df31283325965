package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with VAULT_* environment variables. Unset variables
// keep the current values.
func parseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
