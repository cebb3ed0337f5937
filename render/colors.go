package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/vmath"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB; ColorDefault maps to black
func TcellToRGB(c tcell.Color) core.RGB {
	if c == tcell.ColorDefault {
		return core.RGBBlack
	}
	r, g, b := c.RGB()
	return core.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Charge meter endpoints
var (
	meterLow  = colorful.Color{R: 0, G: 1, B: 0}
	meterHigh = colorful.Color{R: 1, G: 0, B: 0}
)

// MeterColor blends the charge meter from green (empty) to red (full) in HCL
// space so the midpoint stays bright
func MeterColor(level float64) core.RGB {
	level = vmath.Clamp(level, 0, 1)
	c := meterLow.BlendHcl(meterHigh, level).Clamped()
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}
}
