// Package policy provides autopilots for the classic mode. Each one maps the
// five-value observation built by the game to a jump (1) or no-op (0).
package policy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// New builds the policy selected in settings.
func New(s config.PolicySettings, t *flappy.Tuning) (flappy.Policy, error) {
	switch s.Kind {
	case config.PolicyHeuristic, "":
		return NewHeuristic(t), nil
	case config.PolicyMLP:
		m, err := LoadMLP(s.Weights)
		if err != nil {
			return nil, err
		}
		if m.Inputs() != flappy.ObservationSize {
			return nil, fmt.Errorf("policy: %s expects %d inputs, the game provides %d",
				s.Weights, m.Inputs(), flappy.ObservationSize)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("policy: unknown kind %q", s.Kind)
	}
}

func checkShape(obs []float64, want int) {
	if len(obs) != want {
		panic(fmt.Sprintf("policy: observation has %d values, want %d", len(obs), want))
	}
}
