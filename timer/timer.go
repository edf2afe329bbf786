// Package timer runs the interactive countdown. The Timer model is the only
// owner of the clock engine: every key press and every tick reaches the
// engine through Update.
package timer

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomo/internal/clock"
	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/store"
)

const (
	padding  = 2
	maxWidth = 60
)

// Notifier shows a desktop notification.
type Notifier func(title, message string) error

// CommandRunner executes the configured session command after phase ends.
type CommandRunner func(command string, ended clock.Phase) error

// Option configures a Timer.
type Option func(*Timer)

// Timer is the bubbletea model for the countdown.
type Timer struct {
	engine *clock.Engine
	opts   *config.Config
	db     store.DB
	notify Notifier
	run    CommandRunner
	log    *slog.Logger
	now    func() time.Time

	// phaseStart is when the active phase was first started; zero until then
	phaseStart time.Time

	// gen identifies the current chain of tick messages. It changes whenever
	// the countdown is started, stopped or reset so that ticks armed before
	// the change are discarded.
	gen int

	// err is the last collaborator failure, shown below the countdown
	err error

	progress progress.Model
	help     help.Model
	style    styles
}

// tickMsg drives one countdown step.
type tickMsg struct {
	gen int
}

// hookMsg reports the outcome of work done after a phase ends.
type hookMsg struct {
	hook string
	err  error
}

// WithStore records completed phases in db.
func WithStore(db store.DB) Option {
	return func(t *Timer) {
		t.db = db
	}
}

// WithNotifier replaces the desktop notifier.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notify = n
	}
}

// WithCommandRunner replaces the session command runner.
func WithCommandRunner(r CommandRunner) Option {
	return func(t *Timer) {
		t.run = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// WithClock replaces the wall clock used to timestamp history records.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// New creates a timer model around engine.
func New(cfg *config.Config, engine *clock.Engine, opts ...Option) *Timer {
	t := &Timer{
		engine: engine,
		opts:   cfg,
		notify: desktopNotify,
		run:    runSessionCmd,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
		help:  help.New(),
		style: newStyles(cfg.Display.DarkTheme),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Engine returns the engine driven by the timer.
func (t *Timer) Engine() *clock.Engine {
	return t.engine
}

func (t *Timer) Init() tea.Cmd {
	if t.engine.Running() {
		return t.tick()
	}

	return nil
}

// tick arms the next countdown step for the current generation.
func (t *Timer) tick() tea.Cmd {
	gen := t.gen

	return tea.Tick(clock.Resolution, func(_ time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
