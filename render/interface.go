package render

import "github.com/lixenwraith/cannonball/core"

// Rect is an axis-aligned rectangle in arena pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the half-open rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Canvas receives one frame of draw calls in arena pixel coordinates.
// Present ends the frame; Clear prepares the surface for the next one.
//
//go:generate go tool mockgen -destination=./mocks/canvas_mock.go -package=mocks . Canvas
type Canvas interface {
	FillRect(r Rect, c core.RGB)
	FillCircle(x, y, radius float64, c core.RGB)
	DrawText(x, y float64, text string, fg, bg core.RGB)
	Present()
	Clear(c core.RGB)
}
