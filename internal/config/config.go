// Package config loads analisador's TOML configuration file, following
// the same struct-tag-driven decode style internal/tqw uses for world
// files in the teacher repository.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lferreira-dev/analisador/internal/parser"
)

// Config holds every setting an operator can override. Use Default for a
// usable starting point (embedded tables, default cap, localhost:8080);
// the zero value leaves HTTPAddr empty.
type Config struct {
	// ActionTable and GotoTable optionally override the embedded default
	// CSVs in internal/slrtable, for operators iterating on the tables
	// themselves. Both must be set together or left both empty.
	ActionTable string `toml:"action_table"`
	GotoTable   string `toml:"goto_table"`

	// MaxRecoverableErrors overrides parser.DefaultMaxRecoverableErrors.
	// Zero means "use the default".
	MaxRecoverableErrors int `toml:"max_recoverable_errors"`

	// HTTPAddr is the bind address used by cmd/analisadorsrv.
	HTTPAddr string `toml:"http_addr"`
}

// Default returns the zero-configuration Config: embedded tables, the
// default recoverable-error cap, and localhost:8080.
func Default() Config {
	return Config{
		MaxRecoverableErrors: parser.DefaultMaxRecoverableErrors,
		HTTPAddr:             "localhost:8080",
	}
}

// Load decodes a TOML file at path into a Config seeded with Default's
// values, so a file only needs to name the fields it overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if cfg.MaxRecoverableErrors <= 0 {
		cfg.MaxRecoverableErrors = parser.DefaultMaxRecoverableErrors
	}
	if (cfg.ActionTable == "") != (cfg.GotoTable == "") {
		return Config{}, fmt.Errorf("action_table and goto_table must both be set or both be empty")
	}
	return cfg, nil
}

// UsesEmbeddedTables reports whether cfg has no table-file overrides.
func (c Config) UsesEmbeddedTables() bool {
	return c.ActionTable == "" && c.GotoTable == ""
}
