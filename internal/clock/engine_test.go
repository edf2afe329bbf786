package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAlert struct {
	calls   []string
	seeks   []time.Duration
	playErr error
	seekErr error
}

func (a *recordingAlert) Play() error {
	a.calls = append(a.calls, "play")
	return a.playErr
}

func (a *recordingAlert) Pause() error {
	a.calls = append(a.calls, "pause")
	return nil
}

func (a *recordingAlert) SeekTo(position time.Duration) error {
	a.calls = append(a.calls, "seek")
	a.seeks = append(a.seeks, position)

	return a.seekErr
}

func (a *recordingAlert) plays() int {
	var n int

	for _, c := range a.calls {
		if c == "play" {
			n++
		}
	}

	return n
}

var initialState = State{
	Phase:          Session,
	Running:        false,
	Remaining:      1500 * time.Second,
	SessionMinutes: 25,
	BreakMinutes:   5,
}

func TestNew(t *testing.T) {
	e := New(nil)

	if diff := cmp.Diff(initialState, e.Snapshot()); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "25:00", e.Format())
	assert.Equal(t, 1500.0, e.RemainingSeconds())
}

func TestStartStopToggle(t *testing.T) {
	e := New(nil)

	e.Start()
	assert.True(t, e.Running())

	e.Start()
	assert.True(t, e.Running(), "start while running must be a no-op")

	e.Stop()
	assert.False(t, e.Running())

	e.Toggle()
	assert.True(t, e.Running())

	e.Toggle()
	assert.False(t, e.Running())

	assert.Equal(t, Session, e.Phase())
	assert.Equal(t, 1500*time.Second, e.Remaining())
}

func TestTickDecrementsMonotonically(t *testing.T) {
	e := New(nil)
	e.Start()

	prev := e.Remaining()

	for i := 0; i < 100; i++ {
		require.NoError(t, e.Tick(Resolution))

		got := e.Remaining()
		assert.Equal(t, prev-Resolution, got)

		prev = got
	}

	assert.Equal(t, Session, e.Phase())
	assert.True(t, e.Running())
	assert.Equal(t, 1487.5, e.RemainingSeconds())
}

func TestTickWhileStopped(t *testing.T) {
	e := New(nil)

	require.NoError(t, e.Tick(Resolution))

	assert.Equal(t, 1500*time.Second, e.Remaining())
}

func TestTickIgnoresSubResolutionSteps(t *testing.T) {
	e := New(nil)
	e.Start()

	require.NoError(t, e.Tick(100*time.Millisecond))
	require.NoError(t, e.Tick(0))
	require.NoError(t, e.Tick(-time.Second))

	assert.Equal(t, 1500*time.Second, e.Remaining())

	require.NoError(t, e.Tick(300*time.Millisecond))

	assert.Equal(t, 1500*time.Second-2*Resolution, e.Remaining())
}

func TestSessionDepletion(t *testing.T) {
	alert := &recordingAlert{}

	e := New(alert)
	e.Start()

	ticks := int(1500 * time.Second / Resolution)

	for i := 0; i < ticks-1; i++ {
		require.NoError(t, e.Tick(Resolution))
	}

	assert.Equal(t, Session, e.Phase())
	assert.Equal(t, Resolution, e.Remaining())
	assert.Equal(t, "00:01", e.Format())
	assert.Zero(t, alert.plays())

	require.NoError(t, e.Tick(Resolution))

	assert.Equal(t, Break, e.Phase())
	assert.Equal(t, 300*time.Second, e.Remaining())
	assert.True(t, e.Running())
	assert.Equal(t, 1, alert.plays())
}

func TestBreakDepletionReturnsToSession(t *testing.T) {
	alert := &recordingAlert{}

	e := New(alert)
	e.Start()

	require.NoError(t, e.Tick(25*time.Minute))
	require.Equal(t, Break, e.Phase())

	require.NoError(t, e.Tick(5*time.Minute))

	assert.Equal(t, Session, e.Phase())
	assert.Equal(t, 25*time.Minute, e.Remaining())
	assert.Equal(t, 2, alert.plays())
}

func TestTickFloorsAtZero(t *testing.T) {
	e := New(nil)
	e.Start()

	require.NoError(t, e.Tick(2*time.Hour))

	assert.Equal(t, Break, e.Phase())
	assert.Equal(t, 5*time.Minute, e.Remaining(), "overshoot must not carry over")
}

func TestDepletionReadsCurrentInactiveLength(t *testing.T) {
	e := New(nil)

	// edit the inactive phase while paused
	for i := 0; i < 3; i++ {
		require.True(t, e.Break().Increment())
	}

	assert.Equal(t, 1500*time.Second, e.Remaining())

	e.Start()
	require.NoError(t, e.Tick(25*time.Minute))

	assert.Equal(t, Break, e.Phase())
	assert.Equal(t, 8*time.Minute, e.Remaining())
}

func TestAlertFailureKeepsStateConsistent(t *testing.T) {
	cause := errors.New("no audio device")
	alert := &recordingAlert{playErr: cause}

	e := New(alert)
	e.Start()

	err := e.Tick(25 * time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errAlertPlay)
	assert.Contains(t, err.Error(), "Session phase")

	assert.Equal(t, Break, e.Phase())
	assert.Equal(t, 5*time.Minute, e.Remaining())
	assert.True(t, e.Running())
}

func TestReset(t *testing.T) {
	alert := &recordingAlert{}

	e := New(alert)
	e.Session().Decrement()
	e.Break().Increment()
	e.Start()
	require.NoError(t, e.Tick(24*time.Minute))
	require.NoError(t, e.Tick(time.Minute))

	require.Equal(t, Break, e.Phase())

	alert.calls = nil

	require.NoError(t, e.Reset())

	if diff := cmp.Diff(initialState, e.Snapshot()); diff != "" {
		t.Errorf("Reset() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"pause", "seek"}, alert.calls)
	assert.Equal(t, []time.Duration{0}, alert.seeks)
}

func TestResetAlertFailure(t *testing.T) {
	cause := errors.New("seek failed")
	alert := &recordingAlert{seekErr: cause}

	e := New(alert)
	e.Start()
	require.NoError(t, e.Tick(time.Minute))

	err := e.Reset()
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errAlertReset)

	if diff := cmp.Diff(initialState, e.Snapshot()); diff != "" {
		t.Errorf("Reset() mismatch (-want +got):\n%s", diff)
	}
}

func TestProgress(t *testing.T) {
	e := New(nil)
	assert.Equal(t, 0.0, e.Progress())

	e.Start()
	require.NoError(t, e.Tick(12*time.Minute+30*time.Second))

	assert.InDelta(t, 0.5, e.Progress(), 1e-9)
}

func TestDuration(t *testing.T) {
	e := New(nil)

	assert.Equal(t, 25*time.Minute, e.Duration(Session))
	assert.Equal(t, 5*time.Minute, e.Duration(Break))
	assert.Same(t, e.Session(), e.Setter(Session))
	assert.Same(t, e.Break(), e.Setter(Break))
}
