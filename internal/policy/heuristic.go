package policy

import "github.com/vovakirdan/flappy-arcade/internal/games/flappy"

// Heuristic flaps when the bird, still falling, is about to drop below the
// lowest safe height of the next gap. Without a pipe ahead it holds the
// middle of the screen.
type Heuristic struct {
	Gap    float64 // Gap assumed for the next pipe
	BirdH  float64
	Margin float64 // Clearance kept above the bottom segment
	Cruise float64 // Target height with no pipe ahead
}

// NewHeuristic creates a heuristic sized for t.
func NewHeuristic(t *flappy.Tuning) *Heuristic {
	return &Heuristic{
		Gap:    t.MinGap,
		BirdH:  t.BirdH,
		Margin: 20,
		Cruise: t.WindowH / 2,
	}
}

// Predict returns 1 to jump.
func (h *Heuristic) Predict(obs []float64) int {
	checkShape(obs, flappy.ObservationSize)
	y, vel, top := obs[0], obs[1], obs[4]

	floor := h.Cruise
	if top > 0 {
		floor = top + h.Gap - h.BirdH - h.Margin
	}
	if vel >= 0 && y+vel >= floor {
		return 1
	}
	return 0
}
