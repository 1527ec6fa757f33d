// Package config loads optional user defaults for pathsearch.
//
// The file is YAML and entirely optional:
//
//	color: auto        # auto, always or never
//	regex: false       # treat patterns as regular expressions by default
//	log_level: warn    # trace, debug, info, warn or error
//
// Command-line flags always take precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/harrison/pathsearch/internal/logger"
)

// RelPath is the config file location relative to the XDG config directories.
var RelPath = filepath.Join("pathsearch", "config.yaml")

// Config represents pathsearch configuration options
type Config struct {
	// Color controls highlighting (auto, always, never)
	Color ColorMode `yaml:"color"`

	// Regex interprets the pattern as a regular expression
	Regex bool `yaml:"regex"`

	// LogLevel sets diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Color:    ColorAuto,
		Regex:    false,
		LogLevel: logger.DefaultLevel,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed or invalid, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	type yamlConfig struct {
		Color    string `yaml:"color"`
		Regex    *bool  `yaml:"regex"`
		LogLevel string `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if yamlCfg.Color != "" {
		cfg.Color = ColorMode(yamlCfg.Color)
	}
	if yamlCfg.Regex != nil {
		cfg.Regex = *yamlCfg.Regex
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the config from path, or from the first pathsearch/config.yaml
// found in the XDG config directories when path is empty.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return LoadConfig(path)
	}

	found, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		// No config file anywhere is the common case.
		return DefaultConfig(), nil
	}
	return LoadConfig(found)
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(color *ColorMode, regex *bool, logLevel *string) {
	if color != nil {
		c.Color = *color
	}
	if regex != nil {
		c.Regex = *regex
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if _, err := ParseColorMode(string(c.Color)); err != nil {
		return err
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	return nil
}
