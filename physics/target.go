package physics

import (
	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/vmath"
)

// Target is a circle oscillating vertically inside the target band
type Target struct {
	X, Y, R float64
	VY      float64
	Color   core.RGB

	// Points is the score awarded for a hit
	Points int
	Live   bool
}

// NewTarget creates a target at a random position
func NewTarget(rng *vmath.FastRand) *Target {
	t := &Target{}
	t.Respawn(rng)
	return t
}

// Respawn reinitializes the target in place with fresh random attributes
func (t *Target) Respawn(rng *vmath.FastRand) {
	t.R = float64(rng.IntRange(constants.TargetMinRadius, constants.TargetMaxRadius))
	t.Y = float64(rng.IntRange(constants.TargetMinY, constants.TargetMaxY))
	t.X = float64(rng.IntRange(constants.TargetMinX, constants.TargetMaxX))
	t.VY = float64(rng.IntRange(constants.TargetMinVY, constants.TargetMaxVY))
	t.Color = core.RGBRed
	t.Points = constants.HitReward
	t.Live = true
}

// Move advances the target vertically, reflecting at the band edges.
// Speeds beyond the limit snap to the bleed speed rather than clamping.
func (t *Target) Move(dt float64) {
	t.Y += t.VY * dt
	if t.Y-t.R <= constants.TargetBandTop || t.Y+t.R >= constants.TargetBandBottom {
		t.VY = -t.VY
	}
	if t.VY < -constants.TargetSpeedLimit {
		t.VY = -constants.TargetBleedSpeed
	}
	if t.VY > constants.TargetSpeedLimit {
		t.VY = constants.TargetBleedSpeed
	}
}

// Coord returns center and radius
func (t *Target) Coord() (x, y, r float64) {
	return t.X, t.Y, t.R
}
