package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use the screen size to scale the world; the simulation itself
// always runs in fixed world units.
type RuntimeConfig struct {
	ScreenW  int   // Output width in frontend units (cells or pixels)
	ScreenH  int   // Output height in frontend units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the wall time of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Clock reports elapsed time since an arbitrary fixed origin.
// The game reads it for timed gates (hit flash, death sound).
type Clock interface {
	Now() time.Duration
}

// WallClock is a Clock backed by the monotonic system clock.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock whose origin is the moment of the call.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.start)
}

// TickClock derives time from a tick counter. Headless runs use it so that
// timed gates advance with the simulation rather than the wall clock.
type TickClock struct {
	Ticks    int64
	TickRate int
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.Ticks++
}

// Now returns the simulated time elapsed.
func (c *TickClock) Now() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(c.Ticks) * time.Second / time.Duration(rate)
}
