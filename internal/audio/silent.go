package audio

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Silent is a player that makes no sound but reports real cue lengths, so
// timed gates behave the same with and without audio.
type Silent struct{}

func (Silent) Play(core.Cue, bool) {}

func (Silent) StopAll() {}

// Length returns how long c would play.
func (Silent) Length(c core.Cue) time.Duration {
	return Length(c)
}
