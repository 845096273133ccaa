package core

import "fmt"

// Cell values stored in the grid.
const (
	CellOpen uint8 = 0
	CellWall uint8 = 1
)

// Mark bits layered on top of cells during a solve.
const (
	MarkNone     uint8 = 0
	MarkVisited  uint8 = 1 << 0
	MarkFrontier uint8 = 1 << 1
	MarkPath     uint8 = 1 << 2
)

// Point addresses a grid cell by row and column.
type Point struct {
	Row, Col int
}

// Grid stores cell (wall/open) and mark (visited/frontier/path) state for a
// fixed rectangular maze in row-major order. Cells and marks are independent
// layers over the same index space.
type Grid struct {
	Rows, Cols int
	cells      []uint8
	marks      []uint8
}

// NewGrid allocates a grid with the given dimensions. Dimension validation is
// the caller's job (see app.Config.Normalize); this only rejects non-positive
// sizes.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", rows, cols))
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]uint8, rows*cols),
		marks: make([]uint8, rows*cols),
	}
}

// Index returns the linear slice index for (row, col). It panics on
// out-of-bounds coordinates: those are programming errors, not conditions to
// recover from.
func (g *Grid) Index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: grid index (%d,%d) out of bounds %dx%d", row, col, g.Rows, g.Cols))
	}
	return row*g.Cols + col
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Cell returns the cell value at (row, col).
func (g *Grid) Cell(row, col int) uint8 { return g.cells[g.Index(row, col)] }

// SetCell stores a cell value at (row, col).
func (g *Grid) SetCell(row, col int, v uint8) { g.cells[g.Index(row, col)] = v }

// Open reports whether the cell at (row, col) is a passage.
func (g *Grid) Open(row, col int) bool { return g.cells[g.Index(row, col)] == CellOpen }

// Mark returns the mark bits at (row, col).
func (g *Grid) Mark(row, col int) uint8 { return g.marks[g.Index(row, col)] }

// OrMark sets the given mark bits at (row, col), leaving other bits intact.
func (g *Grid) OrMark(row, col int, bits uint8) { g.marks[g.Index(row, col)] |= bits }

// ClearMark clears the given mark bits at (row, col).
func (g *Grid) ClearMark(row, col int, bits uint8) { g.marks[g.Index(row, col)] &^= bits }

// ResetCells fills every cell with the given value. Called at the start of
// every generation pass.
func (g *Grid) ResetCells(v uint8) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// ResetMarks clears every mark. Called at the start of every solve.
func (g *Grid) ResetMarks() {
	for i := range g.marks {
		g.marks[i] = MarkNone
	}
}

// Cells exposes the backing cell slice so renderers can read values directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Marks exposes the backing mark slice.
func (g *Grid) Marks() []uint8 { return g.marks }
