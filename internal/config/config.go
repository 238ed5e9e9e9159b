package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Scoping selects how procedure and function calls bind their formals.
type Scoping string

const (
	// ScopingActivation saves the callee's formal and local slots when the
	// callee is re-entered and restores them when that call returns, so
	// recursive calls see their own arguments. Outermost calls behave as in
	// ScopingFlat.
	ScopingActivation Scoping = "activation"
	// ScopingFlat overwrites the shared slots and never restores them.
	ScopingFlat Scoping = "flat"
)

// DefaultMaxCallDepth bounds nested procedure/function activations.
const DefaultMaxCallDepth = 10000

// Config represents the top-level datelang.yaml configuration.
type Config struct {
	// Scoping is "activation" (default) or "flat".
	Scoping Scoping `yaml:"scoping"`

	// MaxCallDepth is the number of nested calls after which evaluation
	// aborts with an internal error.
	MaxCallDepth int `yaml:"max_call_depth"`

	// FailFast stops static analysis after the first stage that reported
	// diagnostics instead of aggregating all of them.
	FailFast bool `yaml:"fail_fast"`

	// SymbolsDB is an optional SQLite file that receives the final symbol
	// table of every run.
	SymbolsDB string `yaml:"symbols_db,omitempty"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "console" or "json". Console output is colored on a TTY.
	Format string `yaml:"format"`
	// TraceCalls logs every procedure/function activation at debug level.
	TraceCalls bool `yaml:"trace_calls,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Scoping:      ScopingActivation,
		MaxCallDepth: DefaultMaxCallDepth,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Parse decodes YAML configuration on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks field values that YAML decoding cannot.
func (c *Config) Validate() error {
	switch c.Scoping {
	case ScopingActivation, ScopingFlat:
	case "":
		c.Scoping = ScopingActivation
	default:
		return fmt.Errorf("unknown scoping %q (want %q or %q)", c.Scoping, ScopingActivation, ScopingFlat)
	}
	if c.MaxCallDepth <= 0 {
		return fmt.Errorf("max_call_depth must be positive, got %d", c.MaxCallDepth)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		c.Log.Level = "warn"
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	case "":
		c.Log.Format = "console"
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
