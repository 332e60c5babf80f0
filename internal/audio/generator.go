package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveTriangle
	waveNoise
)

// fade is the attack and release time applied to every note, in seconds.
const fade = 0.005

// melody streams a recipe note by note. A looping melody never ends.
type melody struct {
	r    recipe
	sr   beep.SampleRate
	loop bool

	idx   int     // current note
	pos   int     // sample within the current note
	n     int     // samples in the current note
	phase float64 // oscillator phase in [0, 1)
	rng   *rand.Rand
}

func newMelody(r recipe, sr beep.SampleRate, loop bool) *melody {
	m := &melody{r: r, sr: sr, loop: loop, rng: rand.New(rand.NewSource(1))}
	m.enter(0)
	return m
}

func (m *melody) enter(i int) {
	m.idx = i
	m.pos = 0
	m.n = 0
	if i < len(m.r.notes) {
		m.n = m.sr.N(m.r.notes[i].dur)
	}
}

// advance skips finished notes. It reports false once a one-shot melody is
// exhausted.
func (m *melody) advance() bool {
	for m.pos >= m.n {
		next := m.idx + 1
		if next >= len(m.r.notes) {
			if !m.loop || m.r.length() == 0 {
				return false
			}
			next = 0
		}
		m.enter(next)
	}
	return true
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if !m.advance() {
			return i, i > 0
		}
		v := m.sample()
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
	}
	return len(samples), true
}

func (m *melody) sample() float64 {
	nt := m.r.notes[m.idx]
	if nt.freq == rest {
		return 0
	}

	var v float64
	switch m.r.wave {
	case waveSine:
		v = math.Sin(2 * math.Pi * m.phase)
	case waveSquare:
		v = 1
		if m.phase >= 0.5 {
			v = -1
		}
	case waveTriangle:
		v = 4*math.Abs(m.phase-0.5) - 1
	case waveNoise:
		v = m.rng.Float64()*2 - 1
	}
	m.phase += nt.freq / float64(m.sr)
	m.phase -= math.Floor(m.phase)

	t := float64(m.pos) / float64(m.sr)
	left := float64(m.n-m.pos) / float64(m.sr)
	env := math.Min(1, math.Min(t, left)/fade)
	return v * env * m.r.gain
}

func (m *melody) Err() error {
	return nil
}
