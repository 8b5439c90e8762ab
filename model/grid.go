package model

// Grid is a rectangular array of color indices, stored as an ordered
// sequence of rows. Rows are not required to have equal length; only the
// first row's length is trusted for the grid's width.
type Grid [][]int

// Size returns the grid dimensions in cell units as (width, height).
// An empty or nil grid has size (0, 0). Width is the length of the first
// row; shorter rows further down are tolerated and read as zero-filled.
func (g Grid) Size() (width, height int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g[0]), len(g)
}

// At returns the color index of the cell at column x, row y. Reads outside
// the stored rows (or past the end of a short row) return 0 rather than
// failing, so callers can iterate the nominal width safely.
func (g Grid) At(x, y int) int {
	if y < 0 || y >= len(g) {
		return 0
	}
	row := g[y]
	if x < 0 || x >= len(row) {
		return 0
	}
	return row[x]
}

// IsEmpty returns true if the grid has no rows.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}
