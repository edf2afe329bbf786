package clock

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// FormatRemaining renders d as MM:SS after rounding it up to the next whole
// second. Negative durations render as 00:00.
func FormatRemaining(d time.Duration) string {
	m, s := timeutil.SecsToMinsAndSecs(timeutil.CeilSeconds(d))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// Format renders the engine's remaining time as MM:SS.
func (e *Engine) Format() string {
	return FormatRemaining(e.Remaining())
}
