package physics

import (
	"time"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/vmath"
)

// Gun converts pointer position into a launch angle and button hold time
// into launch power
type Gun struct {
	X, Y float64

	// K is the power coefficient, reset to base after every shot
	K int

	charging    bool
	chargeStart time.Time
	chargeEnd   time.Time

	clock core.Clock
}

// NewGun creates the launcher at its fixed position
func NewGun(clock core.Clock) *Gun {
	return &Gun{
		X:     constants.GunX,
		Y:     constants.GunY,
		K:     constants.GunBasePower,
		clock: clock,
	}
}

// Targeting returns the launch angle towards the cursor
func (g *Gun) Targeting(x, y float64) float64 {
	return vmath.LaunchAngle(x-g.X, g.Y-y)
}

// StartCharge begins a charge; repeated calls while charging are no-ops
func (g *Gun) StartCharge() {
	if g.charging {
		return
	}
	g.charging = true
	g.chargeStart = g.clock.Now()
}

// EndCharge stops charging and restores base power. Call after ReadPower.
func (g *Gun) EndCharge() {
	g.charging = false
	g.K = constants.GunBasePower
}

// ReadPower multiplies K by the number of whole charge units held and
// returns it, capped at GunMaxPower. A release without a charge holds for zero.
func (g *Gun) ReadPower() int {
	g.chargeEnd = g.clock.Now()
	g.K = power(g.K, g.held(g.chargeEnd))
	return g.K
}

// Charging reports whether a charge is in progress
func (g *Gun) Charging() bool {
	return g.charging
}

// ChargeLevel returns the fraction of max power a release now would yield
func (g *Gun) ChargeLevel() float64 {
	if !g.charging {
		return 0
	}
	return float64(power(g.K, g.held(g.clock.Now()))) / constants.GunMaxPower
}

func (g *Gun) held(now time.Time) time.Duration {
	if !g.charging {
		return 0
	}
	return now.Sub(g.chargeStart)
}

// power applies k * (held / unit) with the cap checked before multiplying
func power(k int, held time.Duration) int {
	units := int64(held / constants.GunChargeUnit)
	if units <= 0 {
		return 0
	}
	if k > 0 && units > int64(constants.GunMaxPower/k) {
		return constants.GunMaxPower
	}
	return min(k*int(units), constants.GunMaxPower)
}
