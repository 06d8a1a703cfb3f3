package cliconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/bft-labs/udostore/pkg/log"
	"github.com/bft-labs/udostore/pkg/persist"
)

// Output formats for printing a mapping.
const (
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputPercent = "percent"
)

// Config holds CLI configuration for udo.
type Config struct {
	Path      string
	LogLevel  string
	LogFormat string
	Output    string
	Debounce  time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Path:      persist.DefaultPath(),
		LogLevel:  "info",
		LogFormat: log.FormatConsole,
		Output:    OutputJSON,
		Debounce:  100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	switch c.Output {
	case OutputJSON, OutputYAML, OutputPercent:
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}

	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// NewLogger builds the stderr logger described by cfg.
func NewLogger(cfg Config) (*log.ZerologAdapter, error) {
	return log.NewZerologAdapter(os.Stderr, cfg.LogFormat, cfg.LogLevel)
}

// configSetter applies values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration sets a duration if positive and flag not changed.
func (s *configSetter) setDuration(flag string, value time.Duration, dst *time.Duration) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// parseDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) parseDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
