package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cannonball/core"
)

// TerminalCanvas rasterizes arena draw calls onto a tcell screen. A cell is
// painted when its center falls inside the shape; shapes smaller than a cell
// paint the cell under their center so nothing drawn is ever invisible.
type TerminalCanvas struct {
	screen tcell.Screen
	view   Viewport
}

// NewTerminalCanvas creates a canvas sized to the current screen
func NewTerminalCanvas(screen tcell.Screen) *TerminalCanvas {
	tc := &TerminalCanvas{screen: screen}
	tc.Resize()
	return tc
}

// Resize re-reads the screen size
func (tc *TerminalCanvas) Resize() {
	w, h := tc.screen.Size()
	tc.view = NewViewport(w, h)
}

// Viewport returns the current arena-to-cell mapping
func (tc *TerminalCanvas) Viewport() Viewport {
	return tc.view
}

func (tc *TerminalCanvas) paint(col, row int, c core.RGB) {
	if !tc.view.InBounds(col, row) {
		return
	}
	tc.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(RGBToTcell(c)))
}

func (tc *TerminalCanvas) FillRect(r Rect, c core.RGB) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	colLo, colHi := span(r.X, r.X+r.W, tc.view.CellW, tc.view.Cols)
	rowLo, rowHi := span(r.Y, r.Y+r.H, tc.view.CellH, tc.view.Rows)

	painted := false
	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			x, y := tc.view.ToArena(col, row)
			if r.Contains(x, y) {
				tc.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := tc.view.ToCell(r.X+r.W/2, r.Y+r.H/2)
		tc.paint(col, row, c)
	}
}

func (tc *TerminalCanvas) FillCircle(cx, cy, radius float64, c core.RGB) {
	if radius <= 0 {
		return
	}
	colLo, colHi := span(cx-radius, cx+radius, tc.view.CellW, tc.view.Cols)
	rowLo, rowHi := span(cy-radius, cy+radius, tc.view.CellH, tc.view.Rows)

	r2 := radius * radius
	painted := false
	for row := rowLo; row < rowHi; row++ {
		for col := colLo; col < colHi; col++ {
			x, y := tc.view.ToArena(col, row)
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r2 {
				tc.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := tc.view.ToCell(cx, cy)
		tc.paint(col, row, c)
	}
}

// DrawText writes text starting at the cell containing (x, y), advancing by
// display width so wide runes do not overlap
func (tc *TerminalCanvas) DrawText(x, y float64, text string, fg, bg core.RGB) {
	col, row := tc.view.ToCell(x, y)
	if row < 0 || row >= tc.view.Rows {
		return
	}
	style := tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg))
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= tc.view.Cols {
			break
		}
		if col >= 0 {
			tc.screen.SetContent(col, row, r, nil, style)
		}
		col += w
	}
}

func (tc *TerminalCanvas) Present() {
	tc.screen.Show()
}

func (tc *TerminalCanvas) Clear(c core.RGB) {
	tc.screen.Fill(' ', tcell.StyleDefault.Background(RGBToTcell(c)))
}
