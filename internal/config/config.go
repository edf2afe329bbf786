// Package config assembles the application configuration from built-in
// defaults, the YAML config file and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		History       HistoryConfig      `mapstructure:"history"`
		Log           LogConfig          `mapstructure:"log"`
		Paths         PathsConfig        `mapstructure:"-"`
	}

	// SettingsConfig holds timer behaviour settings.
	SettingsConfig struct {
		// Sound plays the bell at the end of each phase
		Sound bool `mapstructure:"sound"`
		// Cmd is executed after each phase ends
		Cmd string `mapstructure:"cmd"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// HistoryConfig controls recording of completed phases.
	HistoryConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// PathsConfig holds the resolved file locations. It is never read from
	// or written to the config file.
	PathsConfig struct {
		Config string
		DB     string
		Log    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			Sound: true,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New creates a Config with default values, applies opts in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithPaths records the resolved file locations.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.Paths = PathsConfig{
			Config: configPath,
			DB:     dbPath,
			Log:    logPath,
		}

		return nil
	}
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"sound=%t notify=%t history=%t log=%s cmd=%q",
		c.Settings.Sound,
		c.Notifications.Enabled,
		c.History.Enabled,
		c.Log.Level,
		c.Settings.Cmd,
	)
}
