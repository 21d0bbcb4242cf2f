// Package config provides configuration management for cola-complete.
//
// Configuration is entirely optional: with no file and no environment
// variables present the tool behaves identically, using "git" from PATH
// and prompting for a shell on install.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the cola-complete configuration.
type Config struct {
	// GitPath overrides the git executable used for repository queries.
	GitPath string `yaml:"git_path,omitempty"`
	// Shell is the default shell for the install command.
	Shell string `yaml:"shell,omitempty"`
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override file values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if git := os.Getenv("COLA_COMPLETE_GIT"); git != "" {
		c.GitPath = git
	}
	if shell := os.Getenv("COLA_COMPLETE_SHELL"); shell != "" {
		c.Shell = shell
	}
}

// Git returns the configured git executable, defaulting to "git" from PATH.
func (c *Config) Git() string {
	if c.GitPath == "" {
		return "git"
	}
	return c.GitPath
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "cola-complete", "config.yml")
	}

	// Fall back to ~/.config/cola-complete/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cola-complete", "config.yml")
	}

	return filepath.Join(home, ".config", "cola-complete", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
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

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing or unreadable file is not an error; completion has
// to work out of the box.
func LoadWithEnv(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg
}
