package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	LogLevel      string
	Mute          bool
	DisableNotify bool
	NoHistory     bool
}

// WithCLIConfig returns an Option that applies command-line flags on top of
// the values loaded so far.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SessionCmd:    ctx.String("session-cmd"),
			LogLevel:      ctx.String("log-level"),
			Mute:          ctx.Bool("mute"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoHistory:     ctx.Bool("no-history"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Mute {
		c.Settings.Sound = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.NoHistory {
		c.History.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if lvl := strings.TrimSpace(opts.LogLevel); lvl != "" {
		c.Log.Level = lvl
	}
}
