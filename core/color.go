package core

import "image/color"

// RGB stores explicit 8-bit color channels, decoupled from any host library
type RGB struct {
	R, G, B uint8
}

// Named colors
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBWhite   = RGB{255, 255, 255}
	RGBRed     = RGB{255, 0, 0}
	RGBBlue    = RGB{0, 0, 255}
	RGBYellow  = RGB{255, 255, 0}
	RGBGreen   = RGB{0, 255, 0}
	RGBMagenta = RGB{255, 0, 255}
	RGBCyan    = RGB{0, 255, 255}
	RGBTeal    = RGB{0, 128, 128}
	RGBOlive   = RGB{128, 128, 0}
)

// BallPalette is the set of colors a new ball is drawn from
var BallPalette = []RGB{
	RGBBlue, RGBYellow, RGBGreen, RGBMagenta, RGBCyan, RGBTeal, RGBOlive,
}

// RGBA converts to an opaque image/color value
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
