package physics

import (
	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/vmath"
)

// Ball is a launched projectile. Coordinates are arena pixels with y growing
// downward; VY is the upward speed component.
type Ball struct {
	X, Y   float64
	R      float64
	VX, VY float64
	AY     float64
	Color  core.RGB

	// T is the elapsed flight time in seconds
	T    float64
	Live bool

	// hit is the sticky flag behind HitTest/AfterShot
	hit bool
}

// NewBall creates a resting ball at the spawn point
func NewBall(color core.RGB) *Ball {
	return &Ball{
		X:     constants.BallSpawnX,
		Y:     constants.BallSpawnY,
		R:     constants.BallRadius,
		AY:    constants.BallGravity,
		Color: color,
		Live:  true,
	}
}

// SetSpeed sets the launch velocity; called once, before the first Move
func (b *Ball) SetSpeed(speed, angle float64) {
	b.VX, b.VY = vmath.Polar(speed, angle)
}

// Move advances the ball one step. Order: position, gravity, vertical
// reflection, horizontal reflection, lifetime. Returns true on the step the
// ball retires.
func (b *Ball) Move(dt float64) bool {
	if !b.Live {
		return false
	}

	b.X += b.VX * dt
	b.Y -= b.VY * dt
	b.VY -= b.AY * dt

	if b.Y-b.R <= constants.BallBandTop || b.Y+b.R >= constants.BallBandBottom {
		b.VY = -b.VY
	}
	if b.X-b.R <= constants.BallBandLeft || b.X+b.R >= constants.BallBandRight {
		b.VX = -b.VX
	}

	b.T += dt
	if b.T >= constants.BallLifetime {
		b.retire()
		return true
	}
	return false
}

// retire collapses the ball to a zero circle at the origin
func (b *Ball) retire() {
	b.X, b.Y, b.R = 0, 0, 0
	b.Live = false
}

// HitTest sets the sticky hit flag when the ball overlaps the given circle and
// returns the flag. The flag stays set until AfterShot.
func (b *Ball) HitTest(xt, yt, rt float64) bool {
	if vmath.CirclesOverlap(b.X, b.Y, b.R, xt, yt, rt) {
		b.hit = true
	}
	return b.hit
}

// AfterShot clears the sticky hit flag and returns its new value
func (b *Ball) AfterShot() bool {
	b.hit = false
	return b.hit
}

// Coord returns center and radius
func (b *Ball) Coord() (x, y, r float64) {
	return b.X, b.Y, b.R
}

// Probe reports whether the ball overlaps target id this frame. It reads no
// state besides positions, so repeated calls in one frame agree.
func (b *Ball) Probe(id int, t *Target) Collision {
	if !b.Live {
		return Collision{}
	}
	xt, yt, rt := t.Coord()
	if vmath.CirclesOverlap(b.X, b.Y, b.R, xt, yt, rt) {
		return Collision{Outcome: Hit, TargetID: id}
	}
	return Collision{}
}
