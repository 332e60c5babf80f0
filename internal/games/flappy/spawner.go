package flappy

// RandSource is the randomness the spawner draws from. *rand.Rand satisfies
// it; tests script it.
type RandSource interface {
	Intn(n int) int
}

// Spawner creates pipes and stars at the right edge when the previous one
// has travelled far enough.
type Spawner struct {
	rng    RandSource
	tuning *Tuning
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(t *Tuning, rng RandSource) *Spawner {
	return &Spawner{rng: rng, tuning: t}
}

// randint returns a uniform integer in [lo, hi].
func (s *Spawner) randint(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Due reports whether a new obstacle should spawn given the X of the most
// recently spawned one. ok is false when there is none.
func (s *Spawner) Due(lastX float64, ok bool) bool {
	return !ok || lastX < s.tuning.WindowW-s.tuning.SpawnSpacing
}

// NewPipe creates a pipe at the right edge. Difficulty flags are decided
// from score at spawn time and never change afterwards.
func (s *Spawner) NewPipe(score int, floorH float64) *Pipe {
	top := s.randint(s.tuning.PipeTopMin, s.tuning.PipeTopMax)
	moving := score >= s.tuning.MovingScore
	clamping := score >= s.tuning.ClampingScore
	return NewPipe(s.tuning, s.tuning.WindowW, float64(top), floorH, moving, clamping)
}

// NewStar creates a star at the right edge at a random height above the floor.
func (s *Spawner) NewStar(floorH float64) *Star {
	lo := int(s.tuning.StarTopMin)
	hi := int(s.tuning.WindowH - floorH - s.tuning.StarBottomPad)
	y := s.randint(lo, hi)
	return NewStar(s.tuning, s.tuning.WindowW, float64(y))
}

// SpawnPipe appends a pipe if one is due.
func (s *Spawner) SpawnPipe(pipes []*Pipe, score int, floorH float64) []*Pipe {
	if n := len(pipes); s.Due(lastPipeX(pipes), n > 0) {
		pipes = append(pipes, s.NewPipe(score, floorH))
	}
	return pipes
}

// SpawnStar appends a star if one is due.
func (s *Spawner) SpawnStar(stars []*Star, floorH float64) []*Star {
	if n := len(stars); s.Due(lastStarX(stars), n > 0) {
		stars = append(stars, s.NewStar(floorH))
	}
	return stars
}

func lastPipeX(pipes []*Pipe) float64 {
	if len(pipes) == 0 {
		return 0
	}
	return pipes[len(pipes)-1].X
}

func lastStarX(stars []*Star) float64 {
	if len(stars) == 0 {
		return 0
	}
	return stars[len(stars)-1].X
}
