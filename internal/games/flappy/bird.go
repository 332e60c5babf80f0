package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Bullet is a projectile fired by the bird in shooting mode.
type Bullet struct {
	X, Y  float64
	Speed float64
	W, H  float64
}

// Move advances the bullet to the right.
func (b *Bullet) Move() {
	b.X += b.Speed
}

// Rect returns the bullet's collision rectangle.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Bird is the player entity. X is fixed; Y and Velocity integrate under
// gravity. The bird owns the bullets it fired.
type Bird struct {
	X, Y        float64
	Velocity    float64
	Gravity     float64
	JumpImpulse float64
	Width       float64
	Height      float64
	Bullets     []Bullet

	bullet Bullet // template for Shoot
}

// NewBird creates a bird at its start position with zero velocity.
func NewBird(t *Tuning) *Bird {
	return &Bird{
		X:           t.BirdX,
		Y:           t.BirdY,
		Gravity:     t.Gravity,
		JumpImpulse: t.JumpImpulse,
		Width:       t.BirdW,
		Height:      t.BirdH,
		bullet:      Bullet{Speed: t.BulletSpeed, W: t.BulletW, H: t.BulletH},
	}
}

// Jump sets the velocity to the jump impulse regardless of the current value.
func (b *Bird) Jump() {
	b.Velocity = b.JumpImpulse
}

// Move applies gravity then integrates position. Boundaries are not enforced
// here; collision checks after the move decide the outcome.
func (b *Bird) Move() {
	b.Velocity += b.Gravity
	b.Y += b.Velocity
}

// Shoot fires a bullet from the bird's right-centre edge.
func (b *Bird) Shoot() {
	shot := b.bullet
	shot.X = b.X + b.Width
	shot.Y = b.Y + float64(int(b.Height)/2)
	b.Bullets = append(b.Bullets, shot)
}

// MoveBullets advances every bullet and drops the ones past maxX.
func (b *Bird) MoveBullets(maxX float64) {
	kept := b.Bullets[:0]
	for i := range b.Bullets {
		b.Bullets[i].Move()
		if b.Bullets[i].X <= maxX {
			kept = append(kept, b.Bullets[i])
		}
	}
	b.Bullets = kept
}

// Rect returns the bird's collision rectangle.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}
