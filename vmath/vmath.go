package vmath

import "math"

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CirclesOverlap reports whether two circles touch or intersect
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) <= r1+r2
}

// Polar converts a speed and angle into velocity components
func Polar(speed, angle float64) (vx, vy float64) {
	return speed * math.Cos(angle), speed * math.Sin(angle)
}

// LaunchAngle returns atan(dy/dx) for a cursor offset from the origin, with dy
// measured upward. Vertical alignment (dx == 0) resolves to +π/2 when the
// cursor is level or above and -π/2 when below. The result is in [-π/2, π/2].
func LaunchAngle(dx, dy float64) float64 {
	if dx == 0 {
		if dy < 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}
	return math.Atan(dy / dx)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
