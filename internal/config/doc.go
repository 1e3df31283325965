// Package config loads runtime configuration for the vault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config; .yaml/.yml files are
//     parsed as YAML, others as JSON.
//  3. Environment variables VAULT_DATA_FILE, VAULT_BACKEND,
//     VAULT_MAX_ATTEMPTS, VAULT_BCRYPT_COST, VAULT_LOG_LEVEL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-c, -config string   config file
//	-f string            data file path
//	-b string            storage backend (json or sqlite)
//	-m int               failed retrievals before the lockout warning
//	-l string            log level
//
// # File schema
//
//	{
//	  "data_file": "secure_data.json",
//	  "backend": "json",
//	  "max_attempts": 3,
//	  "bcrypt_cost": 12,
//	  "log_level": "info"
//	}
package config
