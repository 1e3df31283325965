package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Default data locations per backend.
const (
	DefaultJSONFile   = "secure_data.json"
	DefaultSQLiteFile = "secure_data.db"
)

// Config holds runtime settings for the vault CLI.
//
// Fields:
//   - DataFile: durable storage location; empty means the backend default.
//   - Backend: "json" (single JSON file) or "sqlite".
//   - MaxAttempts: failed retrievals before the lockout warning.
//   - BcryptCost: work factor for passkey hashes.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DataFile    string `json:"data_file" yaml:"data_file" env:"VAULT_DATA_FILE"`
	Backend     string `json:"backend" yaml:"backend" env:"VAULT_BACKEND"`
	MaxAttempts int    `json:"max_attempts" yaml:"max_attempts" env:"VAULT_MAX_ATTEMPTS"`
	BcryptCost  int    `json:"bcrypt_cost" yaml:"bcrypt_cost" env:"VAULT_BCRYPT_COST"`
	LogLevel    string `json:"log_level" yaml:"log_level" env:"VAULT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = ""
	c.Backend = BackendJSON
	c.MaxAttempts = 3
	c.BcryptCost = 12
	c.LogLevel = "info"
}

// StoragePath returns DataFile, or the default file for the configured
// backend when DataFile is empty.
func (c *Config) StoragePath() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultJSONFile
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendJSON, BackendSQLite)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the config file named by
// -c/-config, then the environment, then command-line flags; later sources
// override earlier ones. args are the program arguments without the binary
// name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
