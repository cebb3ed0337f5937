package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/render"
)

// Canvas draws arena calls onto an ebiten image at one pixel per arena unit
type Canvas struct {
	dst *ebiten.Image
}

func (c *Canvas) FillRect(r render.Rect, col core.RGB) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(), false)
}

func (c *Canvas) FillCircle(x, y, radius float64, col core.RGB) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), col.RGBA(), true)
}

// DrawText uses the built-in debug font; fg and bg are fixed by the font
func (c *Canvas) DrawText(x, y float64, text string, _, _ core.RGB) {
	ebitenutil.DebugPrintAt(c.dst, text, int(x), int(y))
}

// Present is a no-op: ebiten shows the screen after Draw returns
func (c *Canvas) Present() {}

// Clear is a no-op: ebiten clears the screen before every Draw
func (c *Canvas) Clear(core.RGB) {}
