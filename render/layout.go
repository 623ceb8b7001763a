package render

import (
	"math"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Layout maps board coordinates onto terminal cells
// Terminal cells are about twice as tall as wide, so the board spans two columns per row
type Layout struct {
	X, Y int // top-left cell of the board frame
	Cols int // inner width in cells
	Rows int // inner height in cells
}

// NewLayout fits the square board into a w x h terminal, reserving one status row
func NewLayout(w, h int) Layout {
	rows := h - 3 // frame top, frame bottom, status line
	cols := w - 2
	if cols > rows*2 {
		cols = rows * 2
	} else {
		rows = cols / 2
	}
	rows = max(rows, 1)
	cols = max(cols, 2)

	return Layout{
		X:    max((w-cols-2)/2, 0),
		Y:    0,
		Cols: cols,
		Rows: rows,
	}
}

// Cell converts a board position to screen coordinates inside the frame
func (l Layout) Cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / parameter.BoardSize * float64(l.Cols)))
	cy := int(math.Floor(y / parameter.BoardSize * float64(l.Rows)))
	cx = min(max(cx, 0), l.Cols-1)
	cy = min(max(cy, 0), l.Rows-1)
	return l.X + 1 + cx, l.Y + 1 + cy
}

// Center returns the screen cell of the board centre
func (l Layout) Center() (int, int) {
	return l.Cell(parameter.CenterX, parameter.CenterY)
}

// StatusRow is the screen row under the frame
func (l Layout) StatusRow() int {
	return l.Y + l.Rows + 2
}
