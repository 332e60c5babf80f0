package flappy

import "time"

// Mode selects the game variant.
type Mode int

const (
	ModeUnset Mode = iota
	ModeClassic
	ModeShooting
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeShooting:
		return "shooting"
	default:
		return "unset"
	}
}

// StepResult summarises what happened during one simulation tick.
type StepResult struct {
	Cause   Cause // Non-None when the run ended this tick
	Hits    int   // Stars destroyed by bullets
	Evicted int   // Obstacles that left the screen
}

// Session is the state of one run. A fresh session is created for every
// start or replay; nothing carries over between runs.
type Session struct {
	Mode        Mode
	Bird        *Bird
	Pipes       []*Pipe
	Stars       []*Star
	Score       int
	FloorHeight float64
	Started     bool
	GameOver    bool
	AIEnabled   bool
	AIUsed      bool // AI was enabled at some point during the run
	DeathAt     time.Duration
	Cause       Cause
	Ticks       int // Started ticks simulated

	tuning  *Tuning
	spawner *Spawner
}

// NewSession creates a fresh run in mode.
func NewSession(t *Tuning, mode Mode, rng RandSource) *Session {
	return &Session{
		Mode:        mode,
		Bird:        NewBird(t),
		FloorHeight: t.FloorHeight(mode),
		tuning:      t,
		spawner:     NewSpawner(t, rng),
	}
}

// Start begins the run. Calling it again has no effect.
func (s *Session) Start() {
	s.Started = true
}

// Jump makes the bird flap, starting the run on the first flap.
func (s *Session) Jump() {
	if s.GameOver {
		return
	}
	s.Start()
	s.Bird.Jump()
}

// Shoot fires a bullet. Only shooting mode has bullets.
func (s *Session) Shoot() bool {
	if s.GameOver || s.Mode != ModeShooting {
		return false
	}
	s.Bird.Shoot()
	return true
}

// SetAI enables or disables policy control.
func (s *Session) SetAI(on bool) {
	s.AIEnabled = on
	if on {
		s.AIUsed = true
	}
}

// Step advances the run by one tick. A finished run is never mutated.
func (s *Session) Step(now time.Duration) StepResult {
	var res StepResult
	if s.GameOver {
		return res
	}

	if s.Started {
		s.Bird.Move()
		switch s.Mode {
		case ModeClassic:
			s.Pipes = s.spawner.SpawnPipe(s.Pipes, s.Score, s.FloorHeight)
		case ModeShooting:
			s.Stars = s.spawner.SpawnStar(s.Stars, s.FloorHeight)
		}
	}
	s.Bird.MoveBullets(s.tuning.WindowW)
	if !s.Started {
		return res
	}
	s.Ticks++

	switch s.Mode {
	case ModeClassic:
		s.stepClassic(&res)
	case ModeShooting:
		s.stepShooting(now, &res)
	}

	if res.Cause != CauseNone {
		s.end(res.Cause, now)
	}
	return res
}

func (s *Session) stepClassic(res *StepResult) {
	bird := s.Bird.Rect()
	for _, p := range s.Pipes {
		p.Move()
		if res.Cause == CauseNone && HitsPipe(bird, p) {
			res.Cause = CausePipe
		}
	}
	if res.Cause == CauseNone && HitsFloor(bird, s.tuning.WindowH, s.FloorHeight) {
		res.Cause = CauseFloor
	}

	// Pipes leave in spawn order, so only the front can be off screen.
	for len(s.Pipes) > 0 && s.Pipes[0].OffScreen() {
		s.Pipes = s.Pipes[1:]
		s.Score++
		res.Evicted++
	}
}

func (s *Session) stepShooting(now time.Duration, res *StepResult) {
	kept := s.Stars[:0]
	for _, st := range s.Stars {
		st.Move()
		if !st.Expired(now, s.tuning.HitFlash) {
			kept = append(kept, st)
		}
	}
	clear(s.Stars[len(kept):])
	s.Stars = kept

	bird := s.Bird.Rect()
	if HitsFloor(bird, s.tuning.WindowH, s.FloorHeight) {
		res.Cause = CauseFloor
	}
	for _, st := range s.Stars {
		if res.Cause == CauseNone && HitsStar(bird, st) {
			res.Cause = CauseStar
		}
	}

	// A bullet is consumed by the first live star it touches.
	bullets := s.Bird.Bullets[:0]
	for _, b := range s.Bird.Bullets {
		spent := false
		for _, st := range s.Stars {
			if HitsStar(b.Rect(), st) {
				st.MarkHit(now)
				s.Score++
				res.Hits++
				spent = true
				break
			}
		}
		if !spent {
			bullets = append(bullets, b)
		}
	}
	s.Bird.Bullets = bullets

	for len(s.Stars) > 0 && s.Stars[0].OffScreen() {
		s.Stars = s.Stars[1:]
		res.Evicted++
	}
}

func (s *Session) end(cause Cause, now time.Duration) {
	s.GameOver = true
	s.AIEnabled = false
	s.Cause = cause
	s.DeathAt = now
}

// Observation builds the fixed five-value input for a policy:
// bird Y, bird velocity, front obstacle X, bird Y minus the front pipe's
// top height, and the front pipe's top height. Obstacle fields are zero
// without a front pipe.
func (s *Session) Observation() []float64 {
	obs := make([]float64, ObservationSize)
	obs[0] = s.Bird.Y
	obs[1] = s.Bird.Velocity
	if s.Mode == ModeClassic && len(s.Pipes) > 0 {
		p := s.Pipes[0]
		obs[2] = p.X
		obs[3] = s.Bird.Y - p.TopHeight
		obs[4] = p.TopHeight
	}
	return obs
}
