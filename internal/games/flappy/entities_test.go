package flappy

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// scriptedRand returns queued values in order and then repeats the last one.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[len(r.vals)-1]
	if r.i < len(r.vals) {
		v = r.vals[r.i]
		r.i++
	}
	if v >= n {
		panic("scriptedRand: value out of range")
	}
	return v
}

func tuning() *Tuning {
	t := DefaultTuning()
	return &t
}

func TestBirdMoveAppliesGravity(t *testing.T) {
	b := NewBird(tuning())

	b.Move()
	if b.Velocity != 0.5 {
		t.Errorf("Velocity after first move = %v, want 0.5", b.Velocity)
	}
	if b.Y != 300.5 {
		t.Errorf("Y after first move = %v, want 300.5", b.Y)
	}

	for range 10 {
		prev := b.Velocity
		b.Move()
		if b.Velocity != prev+b.Gravity {
			t.Fatalf("Velocity = %v, want %v", b.Velocity, prev+b.Gravity)
		}
	}
}

func TestBirdJumpOverridesVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
	}{
		{"falling fast", 12},
		{"at rest", 0},
		{"already rising", -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBird(tuning())
			b.Velocity = tt.velocity
			b.Jump()
			if b.Velocity != -8 {
				t.Errorf("Velocity after jump = %v, want -8", b.Velocity)
			}
			b.Move()
			if b.Velocity != -7.5 {
				t.Errorf("Velocity after jump and move = %v, want -7.5", b.Velocity)
			}
		})
	}
}

func TestBirdShootSpawnsAtRightCentre(t *testing.T) {
	b := NewBird(tuning())
	b.Shoot()

	if len(b.Bullets) != 1 {
		t.Fatalf("len(Bullets) = %d, want 1", len(b.Bullets))
	}
	got := b.Bullets[0]
	if got.X != 100 || got.Y != 319 {
		t.Errorf("bullet at (%v, %v), want (100, 319)", got.X, got.Y)
	}
	if got.W != 10 || got.H != 5 || got.Speed != 10 {
		t.Errorf("bullet = %+v, want 10x5 at speed 10", got)
	}
}

func TestBirdMoveBulletsDropsPastEdge(t *testing.T) {
	b := NewBird(tuning())
	b.Bullets = []Bullet{
		{X: 385, Speed: 10},
		{X: 395, Speed: 10},
		{X: 100, Speed: 10},
	}

	b.MoveBullets(400)

	if len(b.Bullets) != 2 {
		t.Fatalf("len(Bullets) = %d, want 2", len(b.Bullets))
	}
	if b.Bullets[0].X != 395 || b.Bullets[1].X != 110 {
		t.Errorf("bullets at %v and %v, want 395 and 110", b.Bullets[0].X, b.Bullets[1].X)
	}
}

func assertPipeInvariant(t *testing.T, p *Pipe, floor float64) {
	t.Helper()
	sum := p.TopHeight + p.Gap + p.BottomHeight + floor
	if math.Abs(sum-600) > 1e-9 {
		t.Fatalf("top %v + gap %v + bottom %v + floor %v = %v, want 600",
			p.TopHeight, p.Gap, p.BottomHeight, floor, sum)
	}
}

func TestPipeInvariantHolds(t *testing.T) {
	tests := []struct {
		name     string
		top      float64
		moving   bool
		clamping bool
	}{
		{"static", 120, false, false},
		{"moving low", 50, true, false},
		{"moving high", 300, true, false},
		{"clamping", 200, false, true},
		{"moving and clamping", 50, true, true},
		{"moving and clamping high", 300, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipe(tuning(), 400, tt.top, 50, tt.moving, tt.clamping)
			assertPipeInvariant(t, p, 50)
			for range 1000 {
				p.Move()
				assertPipeInvariant(t, p, 50)
				if p.Gap < 150 || p.Gap > 200 {
					t.Fatalf("Gap = %v, want within [150, 200]", p.Gap)
				}
				if p.TopHeight < 50 {
					t.Fatalf("TopHeight = %v, want >= 50", p.TopHeight)
				}
				if p.BottomHeight < 50 {
					t.Fatalf("BottomHeight = %v, want >= 50", p.BottomHeight)
				}
			}
		})
	}
}

func TestPipeKeepsMarginsFromEverySpawnHeight(t *testing.T) {
	for top := 50; top <= 300; top++ {
		p := NewPipe(tuning(), 400, float64(top), 50, true, true)
		for i := range 5000 {
			p.Move()
			if p.TopHeight < 50 || p.BottomHeight < 50 {
				t.Fatalf("spawn top %d, move %d: top=%v gap=%v bottom=%v, want both segments >= 50",
					top, i+1, p.TopHeight, p.Gap, p.BottomHeight)
			}
			if p.Gap < 150 || p.Gap > 200 {
				t.Fatalf("spawn top %d, move %d: Gap = %v, want within [150, 200]", top, i+1, p.Gap)
			}
		}
	}
}

func TestPipeWideningYieldsToFloorMargin(t *testing.T) {
	p := NewPipe(tuning(), 400, 330, 50, false, true)
	p.Gap = 170
	p.ClampDir = -1
	p.syncBottom()

	p.Move()

	if p.Gap != 169 {
		t.Errorf("Gap = %v, want 169 (widening would leave bottom under 50)", p.Gap)
	}
	if p.ClampDir != 1 {
		t.Errorf("ClampDir = %v, want 1", p.ClampDir)
	}
	if p.BottomHeight != 51 {
		t.Errorf("BottomHeight = %v, want 51", p.BottomHeight)
	}
}

func TestPipeStaticKeepsShape(t *testing.T) {
	p := NewPipe(tuning(), 400, 120, 50, false, false)
	p.Move()

	if p.X != 395 {
		t.Errorf("X = %v, want 395", p.X)
	}
	if p.TopHeight != 120 || p.Gap != 200 || p.BottomHeight != 230 {
		t.Errorf("pipe = top %v gap %v bottom %v, want 120/200/230", p.TopHeight, p.Gap, p.BottomHeight)
	}
	if p.BottomY() != 320 {
		t.Errorf("BottomY = %v, want 320", p.BottomY())
	}
}

func TestPipeDriftReversesAtMargin(t *testing.T) {
	p := NewPipe(tuning(), 400, 300, 50, true, false)
	p.Move()

	if p.DriftDir != -1 {
		t.Errorf("DriftDir = %v, want -1", p.DriftDir)
	}
	if p.TopHeight != 298 {
		t.Errorf("TopHeight = %v, want 298", p.TopHeight)
	}
}

func TestPipeDirectionsAreIndependent(t *testing.T) {
	p := NewPipe(tuning(), 400, 100, 50, true, true)

	// Fifty moves narrow the gap to 150; the next one bounces it.
	for range 51 {
		p.Move()
	}

	if p.ClampDir != -1 {
		t.Errorf("ClampDir = %v, want -1", p.ClampDir)
	}
	if p.Gap != 151 {
		t.Errorf("Gap = %v, want 151", p.Gap)
	}
	if p.DriftDir != 1 {
		t.Errorf("DriftDir = %v, want 1 (unaffected by clamping)", p.DriftDir)
	}
	if p.TopHeight != 202 {
		t.Errorf("TopHeight = %v, want 202", p.TopHeight)
	}
}

func TestStarHitAndExpiry(t *testing.T) {
	s := NewStar(tuning(), 400, 100)
	flash := 100 * time.Millisecond

	s.MarkHit(time.Second)
	s.MarkHit(2 * time.Second)
	if s.HitAt != time.Second {
		t.Errorf("HitAt = %v, want first hit time", s.HitAt)
	}

	if s.Expired(time.Second+flash, flash) {
		t.Error("star expired at exactly the flash duration")
	}
	if !s.Expired(time.Second+flash+time.Millisecond, flash) {
		t.Error("star did not expire after the flash")
	}
}

func TestStarPoints(t *testing.T) {
	s := NewStar(tuning(), 0, 0)
	pts := s.Points()

	if len(pts) != 10 {
		t.Fatalf("len(Points) = %d, want 10", len(pts))
	}
	// First vertex is the top tip.
	if math.Abs(pts[0].X-25) > 1e-9 || math.Abs(pts[0].Y) > 1e-9 {
		t.Errorf("top tip = %+v, want (25, 0)", pts[0])
	}
	box := s.Rect()
	for i, p := range pts {
		if p.X < box.X || p.X > box.Right() || p.Y < box.Y || p.Y > box.Bottom() {
			t.Errorf("vertex %d = %+v outside the bounding box", i, p)
		}
	}
}

func TestSpawnerDifficultyThresholds(t *testing.T) {
	tests := []struct {
		score    int
		moving   bool
		clamping bool
	}{
		{0, false, false},
		{9, false, false},
		{10, true, false},
		{19, true, false},
		{20, true, true},
		{35, true, true},
	}

	for _, tt := range tests {
		sp := NewSpawner(tuning(), &scriptedRand{vals: []int{0}})
		p := sp.NewPipe(tt.score, 50)
		if p.Moving != tt.moving || p.Clamping != tt.clamping {
			t.Errorf("score %d: moving=%v clamping=%v, want %v/%v",
				tt.score, p.Moving, p.Clamping, tt.moving, tt.clamping)
		}
	}
}

func TestSpawnerPlacement(t *testing.T) {
	rng := &scriptedRand{vals: []int{0, 250, 120}}
	sp := NewSpawner(tuning(), rng)

	want := []float64{50, 300, 170}
	for i, w := range want {
		p := sp.NewPipe(0, 50)
		if p.TopHeight != w {
			t.Errorf("pipe %d: TopHeight = %v, want %v", i, p.TopHeight, w)
		}
		if p.X != 400 {
			t.Errorf("pipe %d: X = %v, want 400", i, p.X)
		}
	}

	// Stars in shooting mode land in [50, 600-80-100].
	rng = &scriptedRand{vals: []int{0, 370}}
	sp = NewSpawner(tuning(), rng)
	if y := sp.NewStar(80).Y; y != 50 {
		t.Errorf("lowest star Y = %v, want 50", y)
	}
	if y := sp.NewStar(80).Y; y != 420 {
		t.Errorf("highest star Y = %v, want 420", y)
	}
}

func TestSpawnerDue(t *testing.T) {
	sp := NewSpawner(tuning(), &scriptedRand{vals: []int{0}})

	tests := []struct {
		lastX float64
		ok    bool
		want  bool
	}{
		{0, false, true},
		{400, true, false},
		{200, true, false},
		{199, true, true},
	}
	for _, tt := range tests {
		if got := sp.Due(tt.lastX, tt.ok); got != tt.want {
			t.Errorf("Due(%v, %v) = %v, want %v", tt.lastX, tt.ok, got, tt.want)
		}
	}
}

func TestCollisions(t *testing.T) {
	tu := tuning()
	pipe := NewPipe(tu, 80, 150, 50, false, false) // gap spans y 150..350

	tests := []struct {
		name string
		bird core.Rect
		want bool
	}{
		{"inside gap", core.NewRect(50, 200, 50, 38), false},
		{"clips top segment", core.NewRect(50, 149, 50, 38), true},
		{"clips bottom segment", core.NewRect(50, 313, 50, 38), true},
		{"touching bottom edge", core.NewRect(50, 312, 50, 38), false},
		{"left of pipe", core.NewRect(20, 10, 50, 38), false},
		{"right of pipe", core.NewRect(130, 10, 50, 38), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitsPipe(tt.bird, pipe); got != tt.want {
				t.Errorf("HitsPipe = %v, want %v", got, tt.want)
			}
		})
	}

	if HitsFloor(core.NewRect(50, 511, 50, 38), 600, 50) {
		t.Error("bird above the floor reported as floor hit")
	}
	if !HitsFloor(core.NewRect(50, 512, 50, 38), 600, 50) {
		t.Error("bird touching the floor not reported")
	}
	if HitsFloor(core.NewRect(50, -500, 50, 38), 600, 50) {
		t.Error("ceiling should not be lethal")
	}

	star := NewStar(tu, 100, 100)
	if !HitsStar(core.NewRect(120, 120, 10, 5), star) {
		t.Error("overlapping rect missed the star")
	}
	star.MarkHit(0)
	if HitsStar(core.NewRect(120, 120, 10, 5), star) {
		t.Error("hit star should be inert")
	}
}
