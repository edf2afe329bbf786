package clock

const (
	MinMinutes = 1
	MaxMinutes = 60

	DefaultSessionMinutes = 25
	DefaultBreakMinutes   = 5
)

// Setter holds the configured length of one phase in whole minutes. It is
// bound to the Engine that created it and refuses edits while that engine is
// running.
type Setter struct {
	engine   *Engine
	phase    Phase
	minutes  int
	fallback int
}

func newSetter(e *Engine, phase Phase, minutes int) *Setter {
	return &Setter{
		engine:   e,
		phase:    phase,
		minutes:  minutes,
		fallback: minutes,
	}
}

// Phase returns the phase whose length this setter controls.
func (s *Setter) Phase() Phase {
	return s.phase
}

// Minutes returns the configured length.
func (s *Setter) Minutes() int {
	return s.minutes
}

// Default returns the length restored by a reset.
func (s *Setter) Default() int {
	return s.fallback
}

// Increment lengthens the phase by one minute. It reports whether anything
// changed; calls at the upper bound or while the engine runs are ignored.
func (s *Setter) Increment() bool {
	return s.adjust(1)
}

// Decrement shortens the phase by one minute. It reports whether anything
// changed; calls at the lower bound or while the engine runs are ignored.
func (s *Setter) Decrement() bool {
	return s.adjust(-1)
}

func (s *Setter) adjust(delta int) bool {
	next := s.minutes + delta

	if s.engine.running || next < MinMinutes || next > MaxMinutes {
		return false
	}

	s.minutes = next

	// only the active phase is reflected on the countdown
	if s.engine.phase == s.phase {
		s.engine.remaining = s.units()
	}

	return true
}

func (s *Setter) reset() {
	s.minutes = s.fallback
}

// units returns the configured length in eighths of a second.
func (s *Setter) units() int64 {
	return int64(s.minutes) * 60 * unitsPerSecond
}
