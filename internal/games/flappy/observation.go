package flappy

import "fmt"

// ObservationSize is the length of the vector handed to a Policy.
const ObservationSize = 5

// Policy decides whether the bird should flap. Predict must return 1 to jump
// or 0 to do nothing, and must be deterministic for a given observation.
type Policy interface {
	Predict(obs []float64) int
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(obs []float64) int

// Predict calls f(obs).
func (f PolicyFunc) Predict(obs []float64) int {
	return f(obs)
}

// consultPolicy feeds the observation of s to p and applies the action.
// It returns true when the bird jumped.
func consultPolicy(p Policy, s *Session) bool {
	switch action := p.Predict(s.Observation()); action {
	case 1:
		s.Jump()
		return true
	case 0:
		return false
	default:
		panic(fmt.Sprintf("flappy: policy returned action %d, want 0 or 1", action))
	}
}
