package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/clock"
)

var _ clock.Alert = (*Bell)(nil)

type fakeMixer struct {
	played  []beep.Streamer
	clears  int
	locked  bool
	unlocks int
}

func (m *fakeMixer) Play(s ...beep.Streamer) { m.played = append(m.played, s...) }

func (m *fakeMixer) Clear() { m.clears++ }

func (m *fakeMixer) Lock() { m.locked = true }

func (m *fakeMixer) Unlock() {
	m.locked = false
	m.unlocks++
}

func newTestBell(t *testing.T) (*Bell, *fakeMixer) {
	t.Helper()

	m := &fakeMixer{}

	b, err := newBell(m)
	require.NoError(t, err)

	return b, m
}

func TestBellDuration(t *testing.T) {
	b, _ := newTestBell(t)

	assert.InDelta(t, bellLength.Seconds(), b.Duration().Seconds(), 0.001)
	assert.True(t, b.ctrl.Paused, "bell must start silent")
}

func TestBellDecays(t *testing.T) {
	b, _ := newTestBell(t)

	samples := make([][2]float64, b.stream.Len())

	n, _ := b.stream.Stream(samples)
	require.Equal(t, len(samples), n)

	peak := func(from, to int) float64 {
		var p float64
		for _, s := range samples[from:to] {
			p = max(p, s[0], -s[0])
		}

		return p
	}

	window := sampleRate.N(50 * time.Millisecond)

	assert.Greater(t, peak(0, window), peak(n-window, n))
	assert.LessOrEqual(t, peak(0, n), 1.0)
}

func TestBellPlay(t *testing.T) {
	b, m := newTestBell(t)

	require.NoError(t, b.SeekTo(time.Second))
	require.NoError(t, b.Play())

	assert.Equal(t, 1, m.clears)
	assert.Len(t, m.played, 1)
	assert.False(t, b.ctrl.Paused)
	assert.Zero(t, b.Position())
	assert.False(t, m.locked)
}

func TestBellPauseAndRewind(t *testing.T) {
	b, m := newTestBell(t)

	require.NoError(t, b.Play())

	samples := make([][2]float64, 512)
	b.ctrl.Stream(samples)

	assert.NotZero(t, b.Position())

	require.NoError(t, b.Pause())
	assert.True(t, b.ctrl.Paused)

	require.NoError(t, b.SeekTo(0))
	assert.Zero(t, b.Position())
	assert.False(t, m.locked)
}

func TestBellSeekClamps(t *testing.T) {
	b, _ := newTestBell(t)

	require.NoError(t, b.SeekTo(time.Hour))
	assert.Equal(t, b.Duration(), b.Position())

	require.NoError(t, b.SeekTo(-time.Second))
	assert.Zero(t, b.Position())
}
