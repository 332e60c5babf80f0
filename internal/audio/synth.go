// Package audio implements the game's sound output. Every cue is
// synthesized on the fly so the game ships without asset files.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Synth plays cues through the system speaker. All cues share one mixer;
// StopAll clears it.
type Synth struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	opened bool
}

// NewSynth creates a synth. It stays silent until Open succeeds.
func NewSynth(cfg config.AudioSettings) *Synth {
	sr := cfg.SampleRate
	if sr <= 0 {
		sr = 44100
	}
	return &Synth{
		sr:     beep.SampleRate(sr),
		volume: core.ClampF(cfg.Volume, 0, 1),
		mixer:  &beep.Mixer{},
	}
}

// Open initializes the speaker and starts streaming the mixer.
func (s *Synth) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if err := speaker.Init(s.sr, s.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.opened = true
	return nil
}

// Close stops every sound and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.opened = false
}

// Play starts a cue. Looping cues repeat until StopAll.
func (s *Synth) Play(c core.Cue, loop bool) {
	st := s.stream(c, loop)
	if st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// StopAll silences every cue, looping or not.
func (s *Synth) StopAll() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Length returns how long c plays once.
func (s *Synth) Length(c core.Cue) time.Duration {
	return Length(c)
}

// Active returns the number of cues still in the mixer.
func (s *Synth) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

func (s *Synth) stream(c core.Cue, loop bool) beep.Streamer {
	r, ok := recipes[c]
	if !ok {
		return nil
	}

	var st beep.Streamer
	if c == core.CueClick && !loop {
		// A click is a plain sine blip.
		sine, err := generators.SineTone(s.sr, r.notes[0].freq)
		if err != nil {
			return nil
		}
		st = beep.Take(s.sr.N(r.length()), sine)
		st = &effects.Gain{Streamer: st, Gain: r.gain - 1}
	} else {
		st = newMelody(r, s.sr, loop)
	}
	return volume(st, s.volume)
}

// volume applies the master volume in [0, 1] on a log2 scale.
func volume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol), Silent: false}
}
