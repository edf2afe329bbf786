package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomo/internal/clock"
)

// handleTick advances the countdown by one step and re-arms the next tick.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != t.gen || !t.engine.Running() {
		return t, nil
	}

	before := t.engine.Phase()

	err := t.engine.Tick(clock.Resolution)
	if err != nil {
		t.err = err
		t.log.Warn("alert failed", slog.Any("error", err))
	}

	if t.engine.Phase() == before {
		return t, t.tick()
	}

	t.log.Info(
		"phase changed",
		slog.String("ended", before.String()),
		slog.String("phase", t.engine.Phase().String()),
		slog.Duration("remaining", t.engine.Remaining()),
	)

	return t, tea.Batch(t.tick(), t.phaseEnded(before))
}

func (t *Timer) handleToggle() (tea.Model, tea.Cmd) {
	t.engine.Toggle()
	t.gen++

	if !t.engine.Running() {
		t.log.Info("timer paused", slog.String("remaining", t.engine.Format()))
		return t, nil
	}

	if t.phaseStart.IsZero() {
		t.phaseStart = t.now()
	}

	t.log.Info(
		"timer started",
		slog.String("phase", t.engine.Phase().String()),
		slog.String("remaining", t.engine.Format()),
	)

	return t, t.tick()
}

func (t *Timer) handleReset() (tea.Model, tea.Cmd) {
	t.gen++
	t.phaseStart = time.Time{}
	t.err = nil

	if err := t.engine.Reset(); err != nil {
		t.err = err
		t.log.Warn("alert reset failed", slog.Any("error", err))
	}

	t.log.Info("timer reset")

	return t, nil
}

// handleLength applies a length change and logs it when it was ignored.
func (t *Timer) handleLength(s *clock.Setter, change func() bool) (tea.Model, tea.Cmd) {
	if !change() {
		t.log.Debug(
			"length change ignored",
			slog.String("phase", s.Phase().String()),
			slog.Int("minutes", s.Minutes()),
			slog.Bool("running", t.engine.Running()),
		)

		return t, nil
	}

	if s.Phase() == t.engine.Phase() {
		t.phaseStart = time.Time{}
	}

	return t, nil
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		return t.handleToggle()

	case key.Matches(msg, defaultKeymap.reset):
		return t.handleReset()

	case key.Matches(msg, defaultKeymap.sessionUp):
		return t.handleLength(t.engine.Session(), t.engine.Session().Increment)

	case key.Matches(msg, defaultKeymap.sessionDn):
		return t.handleLength(t.engine.Session(), t.engine.Session().Decrement)

	case key.Matches(msg, defaultKeymap.breakUp):
		return t.handleLength(t.engine.Break(), t.engine.Break().Increment)

	case key.Matches(msg, defaultKeymap.breakDn):
		return t.handleLength(t.engine.Break(), t.engine.Break().Decrement)

	case key.Matches(msg, defaultKeymap.quit):
		t.engine.Stop()
		t.gen++

		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok && t.log.Enabled(context.Background(), slog.LevelDebug) {
		t.log.Debug("message received", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case hookMsg:
		if msg.err != nil {
			t.err = msg.err
			t.log.Warn(msg.hook+" failed", slog.Any("error", msg.err))
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
