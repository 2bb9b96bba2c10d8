package terminal

// Viewport maps world coordinates onto a grid of terminal cells. The bottom
// row is kept for the status line.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// NewViewport fits a world of the given size onto a cols x rows terminal
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
}

// PlayRows is the number of rows used for the playfield
func (v Viewport) PlayRows() int {
	if v.Rows <= 1 {
		return v.Rows
	}
	return v.Rows - 1
}

// ToCell returns the cell containing world point (x, y). ok is false when
// the point falls outside the playfield.
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	if v.Cols <= 0 || v.PlayRows() <= 0 || x < 0 || y < 0 || x >= v.WorldW || y >= v.WorldH {
		return 0, 0, false
	}
	col = int(x / v.WorldW * float64(v.Cols))
	row = int(y / v.WorldH * float64(v.PlayRows()))
	return col, row, true
}

// ToWorld returns the world point at the center of a cell
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	cw := v.WorldW / float64(v.Cols)
	ch := v.WorldH / float64(v.PlayRows())
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}
