package core

import "time"

// Cue identifies a sound the game can trigger.
type Cue int

const (
	CueMenuMusic Cue = iota
	CueClassicMusic
	CueShootingMusic
	CueDeath
	CueShoot
	CueJump
	CueHit
	CueGameOver
	CueClick
)

// String returns the cue's name.
func (c Cue) String() string {
	switch c {
	case CueMenuMusic:
		return "menu-music"
	case CueClassicMusic:
		return "classic-music"
	case CueShootingMusic:
		return "shooting-music"
	case CueDeath:
		return "death"
	case CueShoot:
		return "shoot"
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	case CueGameOver:
		return "game-over"
	case CueClick:
		return "click"
	default:
		return "unknown"
	}
}

// AudioPlayer is the fire-and-forget sound capability used by the game.
// Play must not block the tick.
type AudioPlayer interface {
	Play(c Cue, loop bool)
	StopAll()
	Length(c Cue) time.Duration
}
