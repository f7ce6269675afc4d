// Package config loads client configuration from the YAML config file and
// the environment, and persists the login session.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/taskdeck/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the backend used when neither the file nor the environment set one
const DefaultAPIURL = "http://localhost:5000"

// ColorScheme is re-exported so callers do not import the colors package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	APIURL      string      `yaml:"api_url"`
	LogLevel    string      `yaml:"log_level"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Default returns a configuration with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file, then applies environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		cfg := Default()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from path, then applies environment overrides
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	loadThemeFile(cfg)

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskdeck", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskdeck", "config.yaml"), nil
}

// DataDir returns the directory holding logs and the session file.
// TASKDECK_HOME overrides the default of ~/.taskdeck.
func DataDir() (string, error) {
	if dir := os.Getenv("TASKDECK_HOME"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".taskdeck"), nil
}

// loadThemeFile merges the theme from TASKDECK_THEME_FILE, if set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv("TASKDECK_THEME_FILE")
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
		cfg.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
