package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomo/internal/clock"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logger"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/sound"
	"github.com/ayoisaiah/pomo/internal/static"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envUpdateNotifier = "POMO_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envPomoNoColor    = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of Pomo from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/pomo/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/pomo/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of pomo is available: %s at %s", version, resp.Request.URL.String())
	}
}

// loadConfig reads the config file without prompting. A missing file is
// written with the defaults.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// newAlert returns the bell, or a silent alert when sound is disabled or no
// audio device is available. The returned func releases the speaker.
func newAlert(cfg *config.Config, log *slog.Logger) (clock.Alert, func()) {
	if !cfg.Settings.Sound {
		return clock.NopAlert{}, func() {}
	}

	bell, err := sound.NewBell()
	if err != nil {
		report.Warn(err)
		log.Warn("continuing without sound", slog.Any("error", err))

		return clock.NopAlert{}, func() {}
	}

	return bell, bell.Close
}

// editConfigAction handles the edit-config command which opens the pomo config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.Paths.Config)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	err = cmd.Run()
	if err != nil {
		return errEditor.Fmt(editor).Wrap(err)
	}

	return nil
}

// historyAction handles the history command and prints the sessions and
// breaks completed within a time period.
func historyAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	now := time.Now()

	since, err := sinceTime(ctx.String("since"), now)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.Paths.DB)
	if err != nil {
		return errOpenHistory.Wrap(err)
	}

	records, err := db.GetRecords(since, now)
	if err != nil {
		return err
	}

	return listRecords(config.Stdout, records, ctx.Bool("json"))
}

// defaultAction runs the interactive timer.
func defaultAction(ctx *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithPromptConfig(pathutil.ConfigFilePath(), nil),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	// the level was checked by config validation
	level, _ := logger.ParseLevel(cfg.Log.Level)

	log, closer := logger.NewFile(cfg.Paths.Log, level)
	defer closer.Close()

	slog.SetDefault(log)

	ui.DarkTheme = cfg.Display.DarkTheme

	if err = static.Install(pathutil.Dir()); err != nil {
		log.Warn("unable to install notification icon", slog.Any("error", err))
	}

	alert, closeAlert := newAlert(cfg, log)
	defer closeAlert()

	opts := []timer.Option{timer.WithLogger(log)}

	if cfg.History.Enabled {
		db, err := store.NewClient(cfg.Paths.DB)
		if err != nil {
			return errOpenHistory.Wrap(err)
		}

		opts = append(opts, timer.WithStore(db))
	}

	log.Info("starting pomo", slog.String("config", cfg.String()))

	t := timer.New(cfg, clock.New(alert), opts...)

	_, err = tea.NewProgram(t).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pomo/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	return nil
}
