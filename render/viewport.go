package render

import (
	"math"

	"github.com/lixenwraith/cannonball/constants"
)

// Viewport maps the fixed arena onto a grid of terminal cells
type Viewport struct {
	Cols, Rows   int
	CellW, CellH float64
}

// NewViewport stretches the arena over cols x rows cells
func NewViewport(cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Viewport{
		Cols:  cols,
		Rows:  rows,
		CellW: float64(constants.ArenaWidth) / float64(cols),
		CellH: float64(constants.ArenaHeight) / float64(rows),
	}
}

// ToCell returns the cell containing an arena point; may be off-grid
func (v Viewport) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / v.CellW)), int(math.Floor(y / v.CellH))
}

// ToArena returns the arena point at the center of a cell
func (v Viewport) ToArena(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellW, (float64(row) + 0.5) * v.CellH
}

// InBounds reports whether a cell is on-grid
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// span returns the cell range [lo, hi) overlapping [a, b) along one axis
func span(a, b, cell float64, limit int) (lo, hi int) {
	lo = max(int(math.Floor(a/cell)), 0)
	hi = min(int(math.Ceil(b/cell)), limit)
	return lo, hi
}
