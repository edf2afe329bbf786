package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keySound                = "settings.sound"
	keySessionCmd           = "settings.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyHistoryEnabled       = "history.enabled"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the current values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper uses the values accumulated so far (built-in defaults and any
// first-run prompt answers) as Viper's defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keySound, c.Settings.Sound)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyHistoryEnabled, c.History.Enabled)
	v.SetDefault(keyLogLevel, c.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
