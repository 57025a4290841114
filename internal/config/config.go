// Package config provides configuration management for mcplint using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "mcplint"

// DefaultManifest is the manifest filename checked when no path argument
// is given on the command line.
const DefaultManifest = "server.json"

// Config represents the top-level configuration structure.
type Config struct {
	Version  int          `mapstructure:"version" yaml:"version"`
	Manifest string       `mapstructure:"manifest" yaml:"manifest"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
}

// OutputConfig controls how validation results are rendered.
type OutputConfig struct {
	// Format is the report format: "text" or "json".
	Format string `mapstructure:"format" yaml:"format"`

	// Color enables colorized text output when the terminal supports it.
	Color bool `mapstructure:"color" yaml:"color"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support (MCPLINT_MANIFEST, ...)
	viper.SetEnvPrefix("MCPLINT")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("manifest", DefaultManifest)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", true)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// An explicitly requested file must exist
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
