package app

import "github.com/urfave/cli/v2"

var (
	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list phases that ended after this time (e.g. '2 days ago', 'yesterday'). Defaults to the start of today",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the history as JSON",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play the bell when a session or break ends",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session or break ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session or break. POMO_PHASE holds the phase that ended",
	}

	noHistoryFlag = &cli.BoolFlag{
		Name:  "no-history",
		Usage: "Do not record completed sessions and breaks",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error (default: info)",
	}
)
