package flappy

import "time"

// Tuning holds the simulation constants. Values are compiled in; tests build
// their own copies to exercise edge cases.
type Tuning struct {
	WindowW float64
	WindowH float64

	FloorClassic  float64 // Floor height in classic mode
	FloorShooting float64 // Floor height in shooting mode

	BirdX       float64
	BirdY       float64
	BirdW       float64
	BirdH       float64
	Gravity     float64 // Added to velocity every tick
	JumpImpulse float64 // Velocity after a jump (negative = up)

	BulletSpeed float64
	BulletW     float64
	BulletH     float64

	PipeWidth  float64
	PipeSpeed  float64
	PipeGap    float64 // Gap at spawn time
	PipeMargin float64 // Minimum clearance of each segment from the edges
	PipeTopMin int     // Spawn range of the top segment height
	PipeTopMax int
	DriftSpeed float64 // Top-height change per tick on moving pipes
	ClampSpeed float64 // Gap change per tick on clamping pipes
	MinGap     float64
	MaxGap     float64

	StarSize      float64
	StarSpeed     float64
	StarTopMin    float64 // Smallest spawn Y for stars
	StarBottomPad float64 // Distance kept between a fresh star and the floor
	HitFlash      time.Duration

	SpawnSpacing  float64 // Minimum horizontal distance between spawns
	MovingScore   int     // Score from which new pipes drift
	ClampingScore int     // Score from which new pipes clamp
}

// DefaultTuning returns the constants the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		WindowW: 400,
		WindowH: 600,

		FloorClassic:  50,
		FloorShooting: 80,

		BirdX:       50,
		BirdY:       300,
		BirdW:       50,
		BirdH:       38,
		Gravity:     0.5,
		JumpImpulse: -8,

		BulletSpeed: 10,
		BulletW:     10,
		BulletH:     5,

		PipeWidth:  50,
		PipeSpeed:  5,
		PipeGap:    200,
		PipeMargin: 50,
		PipeTopMin: 50,
		PipeTopMax: 300,
		DriftSpeed: 2,
		ClampSpeed: 1,
		MinGap:     150,
		MaxGap:     200,

		StarSize:      50,
		StarSpeed:     5,
		StarTopMin:    50,
		StarBottomPad: 100,
		HitFlash:      100 * time.Millisecond,

		SpawnSpacing:  200,
		MovingScore:   10,
		ClampingScore: 20,
	}
}

// FloorHeight returns the floor height used by a mode.
func (t *Tuning) FloorHeight(m Mode) float64 {
	if m == ModeShooting {
		return t.FloorShooting
	}
	return t.FloorClassic
}
