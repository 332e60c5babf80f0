package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Cause names what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CausePipe
	CauseFloor
	CauseStar
)

// String returns the cause name used in logs and the run log.
func (c Cause) String() string {
	switch c {
	case CausePipe:
		return "pipe"
	case CauseFloor:
		return "floor"
	case CauseStar:
		return "star"
	default:
		return "none"
	}
}

// HitsPipe reports whether bird overlaps the pipe horizontally while being
// above the top segment's lower edge or below the bottom segment's upper edge.
func HitsPipe(bird core.Rect, p *Pipe) bool {
	if !bird.OverlapsX(core.NewRect(p.X, 0, p.Width, 0)) {
		return false
	}
	return bird.Y < p.TopHeight || bird.Bottom() > p.BottomY()
}

// HitsFloor reports whether bird touches or passes the floor line.
// There is no ceiling: flying off the top is not lethal.
func HitsFloor(bird core.Rect, windowH, floorH float64) bool {
	return bird.Bottom() >= windowH-floorH
}

// HitsStar reports whether r overlaps a live star. Stars that were already
// shot are inert.
func HitsStar(r core.Rect, s *Star) bool {
	return !s.Hit && r.Intersects(s.Rect())
}
