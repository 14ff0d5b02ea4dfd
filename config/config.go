package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codefrk/logman/core"
	"github.com/codefrk/logman/registry"
)

// Config declares the console options and the set of managed log files.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Logs    []LogConfig   `yaml:"logs"`
}

// ConsoleConfig holds console sink options.
type ConsoleConfig struct {
	// NoColor disables ANSI styling regardless of terminal detection.
	NoColor bool `yaml:"no_color"`
}

// LogConfig declares one managed log file.
type LogConfig struct {
	Alias string `yaml:"alias"`
	Path  string `yaml:"path"`
	// MaxLength in bytes; 0 means the default (5000).
	MaxLength int64 `yaml:"max_length"`
	// Behaviour is one of stop, ignore, split, rewrite, continue.
	// Unknown values downgrade to stop with a warning at registration.
	Behaviour string `yaml:"behaviour"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural requirements: aliases and paths present and
// unique, sizes non-negative.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Logs))
	for i, l := range c.Logs {
		if l.Alias == "" {
			return fmt.Errorf("logs[%d]: alias is required", i)
		}
		if l.Path == "" {
			return fmt.Errorf("logs[%d] (%s): path is required", i, l.Alias)
		}
		if l.MaxLength < 0 {
			return fmt.Errorf("logs[%d] (%s): max_length must not be negative", i, l.Alias)
		}
		if seen[l.Alias] {
			return fmt.Errorf("duplicate alias %q", l.Alias)
		}
		seen[l.Alias] = true
	}
	return nil
}

// NoColor reports whether styling should be disabled, honoring the
// LOGMAN_NO_COLOR environment override.
func (c *Config) NoColor() bool {
	if os.Getenv("LOGMAN_NO_COLOR") != "" {
		return true
	}
	return c.Console.NoColor
}

// Apply registers every declared log file with reg. Registration stops at
// the first failure so a broken declaration is not silently skipped.
func (c *Config) Apply(reg *registry.Registry) error {
	for _, l := range c.Logs {
		var opts []registry.Option
		if l.MaxLength > 0 {
			opts = append(opts, registry.WithMaxLength(l.MaxLength))
		}
		if l.Behaviour != "" {
			// Pass the normalized token through even when unknown; AddLog
			// owns the downgrade-to-stop warning.
			b, _ := core.ParseBehaviour(l.Behaviour)
			opts = append(opts, registry.WithBehaviour(b))
		}
		if err := reg.AddLog(l.Path, l.Alias, opts...); err != nil {
			return fmt.Errorf("register %q: %w", l.Alias, err)
		}
	}
	return nil
}
