package constants

// Arena surface in pixels, y grows downward
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Arena background rectangle
const (
	FieldX      = 50
	FieldY      = 100
	FieldWidth  = 650
	FieldHeight = 400
)

// Marker rectangle drawn over the field, left edge near the spawn point
const (
	MarkerX    = 50
	MarkerY    = 440
	MarkerSize = 20
)

// Play-band boundaries for projectile reflection
const (
	BallBandTop    = 100
	BallBandBottom = 500
	BallBandLeft   = 50
	BallBandRight  = 700
)

// Play-band boundaries for target oscillation
const (
	TargetBandTop    = 100
	TargetBandBottom = 400
)
