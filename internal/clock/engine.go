// Package clock implements the session/break countdown: an Engine that owns
// the remaining time, the active phase and the running flag, and one Setter
// per phase that owns the configured length of that phase.
//
// An Engine is not safe for concurrent use. It is meant to be owned by a
// single goroutine (the bubbletea update loop) that delivers every user
// action and every tick.
package clock

import "time"

// Resolution is the interval at which the engine is ticked. Remaining time is
// stored as a whole number of these steps so that depletion is detected
// exactly.
const Resolution = 125 * time.Millisecond

const unitsPerSecond = int64(time.Second / Resolution)

// Alert is the audible cue played on every phase change.
type Alert interface {
	Play() error
	Pause() error
	SeekTo(position time.Duration) error
}

// NopAlert is an Alert that does nothing.
type NopAlert struct{}

func (NopAlert) Play() error { return nil }

func (NopAlert) Pause() error { return nil }

func (NopAlert) SeekTo(time.Duration) error { return nil }

// State is a copy of the observable engine state.
type State struct {
	Phase          Phase
	Running        bool
	Remaining      time.Duration
	SessionMinutes int
	BreakMinutes   int
}

// Engine is the countdown state machine.
type Engine struct {
	alert     Alert
	setters   [2]*Setter
	remaining int64 // eighths of a second
	phase     Phase
	running   bool
}

// New returns a stopped engine in the session phase with the default
// lengths. A nil alert is replaced by NopAlert.
func New(alert Alert) *Engine {
	if alert == nil {
		alert = NopAlert{}
	}

	e := &Engine{
		alert: alert,
		phase: Session,
	}

	e.setters[Session] = newSetter(e, Session, DefaultSessionMinutes)
	e.setters[Break] = newSetter(e, Break, DefaultBreakMinutes)
	e.remaining = e.setters[Session].units()

	return e
}

// Session returns the setter for the session length.
func (e *Engine) Session() *Setter {
	return e.setters[Session]
}

// Break returns the setter for the break length.
func (e *Engine) Break() *Setter {
	return e.setters[Break]
}

// Setter returns the setter for p.
func (e *Engine) Setter(p Phase) *Setter {
	return e.setters[p]
}

// Phase returns the active phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Running reports whether the countdown is ticking.
func (e *Engine) Running() bool {
	return e.running
}

// Remaining returns the time left in the active phase.
func (e *Engine) Remaining() time.Duration {
	return time.Duration(e.remaining) * Resolution
}

// RemainingSeconds returns the time left in the active phase in seconds.
func (e *Engine) RemainingSeconds() float64 {
	return float64(e.remaining) / float64(unitsPerSecond)
}

// Duration returns the configured length of p.
func (e *Engine) Duration(p Phase) time.Duration {
	return time.Duration(e.setters[p].Minutes()) * time.Minute
}

// Progress returns the elapsed fraction of the active phase in [0, 1].
func (e *Engine) Progress() float64 {
	total := e.setters[e.phase].units()

	elapsed := float64(total-e.remaining) / float64(total)

	return min(max(elapsed, 0), 1)
}

// Snapshot returns a copy of the observable state.
func (e *Engine) Snapshot() State {
	return State{
		Phase:          e.phase,
		Running:        e.running,
		Remaining:      e.Remaining(),
		SessionMinutes: e.setters[Session].Minutes(),
		BreakMinutes:   e.setters[Break].Minutes(),
	}
}

// Start resumes the countdown. It is a no-op if already running.
func (e *Engine) Start() {
	e.running = true
}

// Stop pauses the countdown without touching phase or remaining time.
func (e *Engine) Stop() {
	e.running = false
}

// Toggle flips between running and stopped.
func (e *Engine) Toggle() {
	e.running = !e.running
}

// Tick advances a running countdown by dt, truncated to whole multiples of
// Resolution. When the remaining time is used up, the phase flips and the
// remaining time is reseeded from the current length of the new phase before
// the alert is played. An alert failure is returned but never undoes the
// transition.
func (e *Engine) Tick(dt time.Duration) error {
	if !e.running {
		return nil
	}

	steps := int64(dt / Resolution)
	if steps <= 0 {
		return nil
	}

	e.remaining -= steps
	if e.remaining > 0 {
		return nil
	}

	ended := e.phase

	e.phase = ended.Next()
	e.remaining = e.setters[e.phase].units()

	if err := e.alert.Play(); err != nil {
		return errAlertPlay.Fmt(ended).Wrap(err)
	}

	return nil
}

// Reset stops the countdown and restores the initial state with default
// lengths, then silences and rewinds the alert.
func (e *Engine) Reset() error {
	e.running = false
	e.phase = Session

	for _, s := range e.setters {
		s.reset()
	}

	e.remaining = e.setters[Session].units()

	if err := e.alert.Pause(); err != nil {
		return errAlertReset.Wrap(err)
	}

	if err := e.alert.SeekTo(0); err != nil {
		return errAlertReset.Wrap(err)
	}

	return nil
}
