// Package audio plays synthesized sound effects for game events.
// All sounds are generated oscillators, no asset files involved.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sink plays a short effect per game event. It implements
// game.EventSink, so it can be fanned in next to the UI via MultiSink.
// A zero or uninitialized Sink is silent and safe to use.
type Sink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSink creates a sound sink. Call Init before use; events arriving
// earlier are dropped silently.
func NewSink() *Sink {
	return &Sink{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Failing to open audio
// (headless host, no device) is reported but leaves the sink usable as
// a no-op.
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences the sink. The speaker itself stays open; beep has no
// close, clearing the mixer is enough to stop output.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	s.initialized = false
}

// play adds a one-shot streamer to the mixer if audio is up.
func (s *Sink) play(streamer beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Add(streamer)
}

// Boosted plays a short rising chirp.
func (s *Sink) Boosted() {
	s.play(beep.Take(sampleRate.N(time.Millisecond*80), newChirp(520, 880, 80*time.Millisecond)))
}

// Crashed plays a harsh descending buzz.
func (s *Sink) Crashed(x, y float64) {
	s.play(beep.Take(sampleRate.N(time.Millisecond*350), newBuzz(110)))
}

// Restarted plays a two-note start cue.
func (s *Sink) Restarted() {
	s.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*70), newChirp(440, 440, 70*time.Millisecond)),
		beep.Take(sampleRate.N(time.Millisecond*90), newChirp(660, 660, 90*time.Millisecond)),
	))
}

// ScoreChanged is intentionally silent; a blip per point would be
// grating at one point per second.
func (s *Sink) ScoreChanged(score int) {}

// chirp is a sine oscillator sweeping linearly between two frequencies
// with a fade-out envelope.
type chirp struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newChirp(from, to float64, d time.Duration) *chirp {
	return &chirp{from: from, to: to, total: sampleRate.N(d)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(c.pos) / float64(c.total)
		if progress > 1 {
			progress = 1
		}
		freq := c.from + (c.to-c.from)*progress

		envelope := 1.0 - progress
		sample := 0.25 * envelope * math.Sin(2*math.Pi*c.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		c.phase += freq / float64(sampleRate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// buzz is a harmonically rich low tone with an exponential decay.
type buzz struct {
	freq float64
	pos  int
}

func newBuzz(freq float64) *buzz {
	return &buzz{freq: freq}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(sampleRate)

		sample := 0.3 * math.Sin(2*math.Pi*b.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*b.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*b.freq*3*t)

		sample *= math.Exp(-t * 6)

		samples[i][0] = sample
		samples[i][1] = sample
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }
