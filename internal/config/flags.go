package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/secretvault/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-f string   data file path
//	-b string   storage backend (json or sqlite)
//	-m int      failed retrievals before the lockout warning
//	-l string   log level
//
// Only these flags are looked at; -c/-config and anything else is left to
// other parsers.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-f", "-b", "-m", "-l"})

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "data file path")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend: json or sqlite")
	fs.IntVar(&cfg.MaxAttempts, "m", cfg.MaxAttempts, "failed retrievals before the lockout warning")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
