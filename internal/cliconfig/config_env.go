package cliconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig is the UDO_* environment surface.
type EnvConfig struct {
	Path      string        `env:"UDO_PATH"`
	LogLevel  string        `env:"UDO_LOG_LEVEL"`
	LogFormat string        `env:"UDO_LOG_FORMAT"`
	Output    string        `env:"UDO_OUTPUT"`
	Debounce  time.Duration `env:"UDO_DEBOUNCE"`
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables that are already set are left alone.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (UDO_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	s := newConfigSetter(changed)
	s.setString("path", ec.Path, &cfg.Path)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)
	s.setString("log-format", ec.LogFormat, &cfg.LogFormat)
	s.setString("output", ec.Output, &cfg.Output)
	s.setDuration("debounce", ec.Debounce, &cfg.Debounce)
	return nil
}
