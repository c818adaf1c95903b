package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a config file or the environment may change.
// Command-line flags always win over both.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Interval is the play interval as a Go duration string ("400ms").
	Interval string `json:"interval" yaml:"interval"`

	// Format is the trace output format: table or json.
	Format string `json:"format" yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Interval: "400ms",
		Format:   formatTable,
	}
}

// LoadConfig layers the file at path (if any) and then PATHTRACE_* variables
// over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	loadConfigFromEnv(&cfg)

	if _, err := cfg.PlayInterval(); err != nil {
		return cfg, err
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// PlayInterval parses Interval.
func (c Config) PlayInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("config: interval %q: %w", c.Interval, err)
	}

	return d, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}

		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadConfigFromEnv(cfg *Config) {
	if v := os.Getenv("PATHTRACE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PATHTRACE_INTERVAL"); v != "" {
		cfg.Interval = v
	}
	if v := os.Getenv("PATHTRACE_FORMAT"); v != "" {
		cfg.Format = v
	}
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}

	return lvl, nil
}
