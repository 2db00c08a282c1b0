// Package config loads taskman settings from YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIURL     = "TASKMAN_API_URL"
	EnvAPITimeout = "TASKMAN_API_TIMEOUT"
	EnvThemeFile  = "TASKMAN_THEME_FILE"
)

const (
	DefaultAPIBaseURL = "http://localhost:3000/api"
	DefaultAPITimeout = 10 * time.Second
)

// Config represents the application configuration
type Config struct {
	API         APIConfig   `yaml:"api"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// APIConfig points the client at a task API
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// A missing file yields the defaults; .env and environment
// variables are applied on top.
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, readErr)
		}
	}

	loadThemeFile(config)
	config.applyDefaults()

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// loadThemeFile merges a theme from TASKMAN_THEME_FILE when set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies TASKMAN_API_URL and TASKMAN_API_TIMEOUT
func (c *Config) applyEnv() error {
	if url := os.Getenv(EnvAPIURL); url != "" {
		c.API.BaseURL = url
	}
	if raw := os.Getenv(EnvAPITimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAPITimeout, raw, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("invalid %s %q: must be positive", EnvAPITimeout, raw)
		}
		c.API.Timeout = timeout
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskman", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskman", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultAPIBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
