package clock

// Phase is the kind of interval being timed.
type Phase int

const (
	Session Phase = iota
	Break
)

func (p Phase) String() string {
	if p == Break {
		return "Break"
	}

	return "Session"
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Session {
		return Break
	}

	return Session
}
