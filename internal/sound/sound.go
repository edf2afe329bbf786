// Package sound provides the bell that marks the end of a phase
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate beep.SampleRate = 44100

	bellLength    = 1500 * time.Millisecond
	bufferSize    = 10
	fundamental   = 880.0
	overtoneRatio = 2.76
)

// mixer is the subset of the speaker package used by a Bell.
type mixer interface {
	Play(s ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type speakerMixer struct{}

func (speakerMixer) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerMixer) Clear() { speaker.Clear() }

func (speakerMixer) Lock() { speaker.Lock() }

func (speakerMixer) Unlock() { speaker.Unlock() }

// Bell is a short synthesised bell strike. Play does not wait for the sound
// to finish.
type Bell struct {
	mixer  mixer
	format beep.Format
	stream beep.StreamSeeker
	ctrl   *beep.Ctrl
}

// NewBell initialises the speaker and prepares the bell sound.
func NewBell() (*Bell, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/bufferSize))
	if err != nil {
		return nil, errSpeakerInit.Wrap(err)
	}

	return newBell(speakerMixer{})
}

func newBell(m mixer) (*Bell, error) {
	format := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	strike, err := synthesise(format.SampleRate, format.SampleRate.N(bellLength))
	if err != nil {
		return nil, errSynthesise.Wrap(err)
	}

	buf := beep.NewBuffer(format)
	buf.Append(strike)

	stream := buf.Streamer(0, buf.Len())

	return &Bell{
		mixer:  m,
		format: format,
		stream: stream,
		ctrl: &beep.Ctrl{
			Streamer: stream,
			Paused:   true,
		},
	}, nil
}

// synthesise mixes a fundamental with one inharmonic overtone and applies an
// exponential decay over n samples.
func synthesise(sr beep.SampleRate, n int) (beep.Streamer, error) {
	base, err := generators.SineTone(sr, fundamental)
	if err != nil {
		return nil, err
	}

	overtone, err := generators.SineTone(sr, fundamental*overtoneRatio)
	if err != nil {
		return nil, err
	}

	quiet := &effects.Volume{
		Streamer: overtone,
		Base:     2,
		Volume:   -2,
	}

	mixed := &effects.Volume{
		Streamer: beep.Mix(base, quiet),
		Base:     2,
		Volume:   -1,
	}

	return decay(beep.Take(n, mixed), n), nil
}

func decay(s beep.Streamer, n int) beep.Streamer {
	var pos int

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		read, ok := s.Stream(samples)

		for i := range samples[:read] {
			gain := math.Exp(-5 * float64(pos) / float64(n))
			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}

		return read, ok
	})
}

// Duration returns the length of the bell sound.
func (b *Bell) Duration() time.Duration {
	return b.format.SampleRate.D(b.stream.Len())
}

// Position returns the current playback position.
func (b *Bell) Position() time.Duration {
	b.mixer.Lock()
	defer b.mixer.Unlock()

	return b.format.SampleRate.D(b.stream.Position())
}

// Play rewinds the bell and starts it on the speaker.
func (b *Bell) Play() error {
	b.mixer.Clear()

	b.mixer.Lock()
	err := b.stream.Seek(0)
	b.ctrl.Paused = false
	b.mixer.Unlock()

	if err != nil {
		return errSeek.Wrap(err)
	}

	b.mixer.Play(b.ctrl)

	return nil
}

// Pause halts the bell at its current position.
func (b *Bell) Pause() error {
	b.mixer.Lock()
	b.ctrl.Paused = true
	b.mixer.Unlock()

	return nil
}

// SeekTo moves the playback position. Positions beyond the end are clamped.
func (b *Bell) SeekTo(position time.Duration) error {
	p := min(max(b.format.SampleRate.N(position), 0), b.stream.Len())

	b.mixer.Lock()
	defer b.mixer.Unlock()

	if err := b.stream.Seek(p); err != nil {
		return errSeek.Wrap(err)
	}

	return nil
}

// Close releases the speaker.
func (b *Bell) Close() {
	b.mixer.Clear()

	if _, ok := b.mixer.(speakerMixer); ok {
		speaker.Close()
	}
}
