// Package config provides configuration management for wikimark.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the wikimark configuration.
type Config struct {
	GFM       bool   `yaml:"gfm"`
	HardWraps bool   `yaml:"hard_wraps,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	NoColor   bool   `yaml:"no_color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		GFM:      true,
		LogLevel: "info",
	}
}

// Validate checks that all fields hold acceptable values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return errors.New("log_level must be one of: debug, info, warn, error")
}

// LoadFromEnv overrides configuration from environment variables.
// Only set, non-empty variables take effect.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("WIKIMARK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WIKIMARK_GFM"); v != "" {
		c.GFM = v != "false" && v != "0"
	}
	if v := os.Getenv("WIKIMARK_HARD_WRAPS"); v != "" {
		c.HardWraps = v == "true" || v == "1"
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.NoColor = true
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wikimark", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".wikimark", "config.yml")
	}

	return filepath.Join(home, ".config", "wikimark", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with
// environment variables. A missing file falls back to defaults.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}

	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
