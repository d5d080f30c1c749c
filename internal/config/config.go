// Package config loads tictoc configuration from files, environment
// variables and command-line flags.
package config

import (
	"fmt"
	"strings"
)

// Config is the complete configuration for tictoc. It covers the run/stats
// commands and the stats server, and loads from configuration files,
// environment variables and command-line flags.
type Config struct {
	// Global settings
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose   bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
	CacheDir  string `mapstructure:"cache_dir" yaml:"cache_dir" json:"cache_dir"`
	Precision int    `mapstructure:"precision" yaml:"precision" json:"precision"`

	// Run command settings
	Run RunConfig `mapstructure:"run" yaml:"run" json:"run"`

	// Terminal plot settings
	Plot PlotConfig `mapstructure:"plot" yaml:"plot" json:"plot"`

	// Server settings (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// RunConfig contains settings for timing external commands.
type RunConfig struct {
	Tag string `mapstructure:"tag" yaml:"tag" json:"tag"`
}

// PlotConfig controls the runtime-over-time terminal plot.
type PlotConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Height  int  `mapstructure:"height" yaml:"height" json:"height"`
	Width   int  `mapstructure:"width" yaml:"width" json:"width"`
}

// ServerConfig contains settings for the stats HTTP server.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Verbose:   false,
		CacheDir:  "", // resolved to the XDG cache dir by the history store
		Precision: 4,
		Run: RunConfig{
			Tag: "default",
		},
		Plot: PlotConfig{
			Enabled: true,
			Height:  20,
			Width:   80,
		},
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			ShutdownTimeout: 10,
		},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("invalid precision: %d (must be between 0 and 12)", c.Precision)
	}

	if c.Plot.Height <= 0 {
		return fmt.Errorf("invalid plot height: %d (must be positive)", c.Plot.Height)
	}
	if c.Plot.Width <= 0 {
		return fmt.Errorf("invalid plot width: %d (must be positive)", c.Plot.Width)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout: %d (must be positive)", c.Server.ShutdownTimeout)
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
