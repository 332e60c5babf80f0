package audio

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Note frequencies in Hz.
const (
	rest = 0.0
	a3   = 220.00
	c4   = 261.63
	d4   = 293.66
	e4   = 329.63
	f4   = 349.23
	g4   = 392.00
	a4   = 440.00
	b4   = 493.88
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	g5   = 783.99
)

type note struct {
	freq float64
	dur  time.Duration
}

// recipe describes how a cue sounds.
type recipe struct {
	notes []note
	wave  waveType
	gain  float64
}

func (r recipe) length() time.Duration {
	var d time.Duration
	for _, n := range r.notes {
		d += n.dur
	}
	return d
}

func seq(dur time.Duration, freqs ...float64) []note {
	notes := make([]note, len(freqs))
	for i, f := range freqs {
		notes[i] = note{freq: f, dur: dur}
	}
	return notes
}

var recipes = map[core.Cue]recipe{
	core.CueMenuMusic: {
		notes: seq(250*time.Millisecond, c4, e4, g4, c5, g4, e4, d4, g4),
		wave:  waveTriangle,
		gain:  0.25,
	},
	core.CueClassicMusic: {
		notes: seq(200*time.Millisecond, e4, g4, a4, g4, e4, d4, c4, rest, c4, e4, g4, c5, b4, g4, a4, rest),
		wave:  waveSquare,
		gain:  0.12,
	},
	core.CueShootingMusic: {
		notes: seq(150*time.Millisecond, a3, c4, e4, a3, c4, e4, d4, f4, a3, c4, e4, g4, f4, e4, d4, c4),
		wave:  waveSquare,
		gain:  0.12,
	},
	// The game waits for this cue to finish before showing the game-over screen.
	core.CueDeath: {
		notes: seq(300*time.Millisecond, g4, e4, c4, a3),
		wave:  waveTriangle,
		gain:  0.4,
	},
	core.CueShoot: {
		notes: []note{{1200, 40 * time.Millisecond}, {900, 40 * time.Millisecond}},
		wave:  waveNoise,
		gain:  0.2,
	},
	core.CueJump: {
		notes: seq(60*time.Millisecond, c5, e5),
		wave:  waveSine,
		gain:  0.3,
	},
	core.CueHit: {
		notes: []note{{e5, 50 * time.Millisecond}, {g5, 100 * time.Millisecond}},
		wave:  waveSquare,
		gain:  0.2,
	},
	core.CueGameOver: {
		notes: seq(500*time.Millisecond, a3, c4, e4, d4, c4, a3, e4, rest),
		wave:  waveTriangle,
		gain:  0.25,
	},
	core.CueClick: {
		notes: []note{{d5, 30 * time.Millisecond}},
		wave:  waveSine,
		gain:  0.3,
	},
}

// Length returns how long a cue plays once. Unknown cues have zero length.
func Length(c core.Cue) time.Duration {
	return recipes[c].length()
}
