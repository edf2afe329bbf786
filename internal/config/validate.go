package config

import (
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/logger"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Settings.Cmd != "" {
		if _, err := shellquote.Split(c.Settings.Cmd); err != nil {
			return errInvalidCmd.Fmt(c.Settings.Cmd).Wrap(err)
		}
	}

	return nil
}
