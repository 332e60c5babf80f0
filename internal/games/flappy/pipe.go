package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Pipe is a vertical obstacle pair with a gap. The top segment spans
// [0, TopHeight) and the bottom segment sits right above the floor.
//
// BottomHeight is derived: after every Move it equals
// WindowH - Gap - TopHeight - FloorHeight.
type Pipe struct {
	X            float64
	Width        float64
	Speed        float64
	Gap          float64
	TopHeight    float64
	BottomHeight float64

	Moving   bool    // Top height drifts up and down
	Clamping bool    // Gap narrows and widens
	DriftDir float64 // +1 drifts down, -1 drifts up
	ClampDir float64 // +1 narrows, -1 widens

	windowH float64
	floorH  float64
	tuning  *Tuning
}

// NewPipe creates a pipe at x with the given top height.
func NewPipe(t *Tuning, x, top, floorH float64, moving, clamping bool) *Pipe {
	p := &Pipe{
		X:         x,
		Width:     t.PipeWidth,
		Speed:     t.PipeSpeed,
		Gap:       t.PipeGap,
		TopHeight: top,
		Moving:    moving,
		Clamping:  clamping,
		DriftDir:  1,
		ClampDir:  1,
		windowH:   t.WindowH,
		floorH:    floorH,
		tuning:    t,
	}
	p.syncBottom()
	return p
}

// Move scrolls the pipe left and applies clamp, then drift.
// Drift and clamp keep separate directions so one reversing never flips the other.
// Drift is checked against the gap after clamping so the bottom segment keeps
// its margin.
func (p *Pipe) Move() {
	p.X -= p.Speed

	if p.Clamping {
		step := p.tuning.ClampSpeed * p.ClampDir
		if !p.gapFits(p.Gap - step) {
			p.ClampDir = -p.ClampDir
			step = -step
		}
		// Both ways can be blocked near the floor; the gap holds for a tick.
		if p.gapFits(p.Gap - step) {
			p.Gap -= step
		}
	}

	if p.Moving {
		step := p.tuning.DriftSpeed * p.DriftDir
		next := p.TopHeight + step
		if next < p.tuning.PipeMargin || next > p.maxTop() {
			p.DriftDir = -p.DriftDir
			step = -step
		}
		p.TopHeight += step
	}

	p.syncBottom()
}

// gapFits reports whether gap is within the clamp range and still leaves the
// bottom segment its margin at the current top height.
func (p *Pipe) gapFits(gap float64) bool {
	if gap < p.tuning.MinGap || gap > p.tuning.MaxGap {
		return false
	}
	return p.TopHeight <= p.windowH-gap-p.floorH-p.tuning.PipeMargin
}

// maxTop is the largest top height that keeps the bottom segment clear of
// the floor by the margin.
func (p *Pipe) maxTop() float64 {
	return p.windowH - p.Gap - p.floorH - p.tuning.PipeMargin
}

func (p *Pipe) syncBottom() {
	p.BottomHeight = p.windowH - p.Gap - p.TopHeight - p.floorH
	if math.Abs(p.TopHeight+p.Gap+p.BottomHeight+p.floorH-p.windowH) > 1e-9 {
		panic(fmt.Sprintf("flappy: pipe heights do not add up: top=%v gap=%v bottom=%v floor=%v",
			p.TopHeight, p.Gap, p.BottomHeight, p.floorH))
	}
}

// TopRect returns the upper segment.
func (p *Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.TopHeight)
}

// BottomRect returns the lower segment.
func (p *Pipe) BottomRect() core.Rect {
	return core.NewRect(p.X, p.BottomY(), p.Width, p.BottomHeight)
}

// BottomY is the Y coordinate where the bottom segment starts.
func (p *Pipe) BottomY() float64 {
	return p.windowH - p.floorH - p.BottomHeight
}

// OffScreen reports whether the pipe has fully left the screen on the left.
func (p *Pipe) OffScreen() bool {
	return p.X < -p.Width
}
