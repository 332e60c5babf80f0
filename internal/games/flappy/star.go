package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Star is the shooting-mode enemy. A star hit by a bullet stays on screen
// for a short flash and is then removed; while flashing it is inert.
type Star struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Hit   bool
	HitAt time.Duration
}

// NewStar creates a star at the given position.
func NewStar(t *Tuning, x, y float64) *Star {
	return &Star{X: x, Y: y, W: t.StarSize, H: t.StarSize, Speed: t.StarSpeed}
}

// Move scrolls the star left.
func (s *Star) Move() {
	s.X -= s.Speed
}

// MarkHit records the moment the star was shot. Repeated calls keep the
// first timestamp.
func (s *Star) MarkHit(now time.Duration) {
	if s.Hit {
		return
	}
	s.Hit = true
	s.HitAt = now
}

// Expired reports whether a hit star has outlived its flash.
func (s *Star) Expired(now, flash time.Duration) bool {
	return s.Hit && now-s.HitAt > flash
}

// Rect returns the star's bounding box.
func (s *Star) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// OffScreen reports whether the star has fully left the screen on the left.
func (s *Star) OffScreen() bool {
	return s.X < -s.W
}

// Points returns the five-pointed star outline inscribed in the bounding
// box, alternating outer and inner vertices starting at the top.
func (s *Star) Points() []core.Point {
	c := s.Rect().Center()
	outer := s.W / 2
	inner := outer / 2
	pts := make([]core.Point, 0, 10)
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, core.Point{
			X: c.X + r*math.Cos(angle),
			Y: c.Y + r*math.Sin(angle),
		})
	}
	return pts
}
