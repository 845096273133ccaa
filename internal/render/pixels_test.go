package render

import (
	"testing"

	"mazeviz/internal/core"
)

func TestFillRGBA(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.ResetCells(core.CellWall)
	g.SetCell(1, 1, core.CellOpen)
	g.SetCell(1, 2, core.CellOpen)
	g.OrMark(1, 2, core.MarkVisited)

	start := core.Point{Row: 1, Col: 1}
	end := core.Point{Row: 2, Col: 2}
	buf := make([]byte, 4*g.Rows*g.Cols)
	FillRGBA(buf, g, start, end, DefaultPalette)

	check := func(row, col, paletteIdx int) {
		t.Helper()
		want := DefaultPalette[paletteIdx]
		base := (row*g.Cols + col) * 4
		if buf[base] != want.R || buf[base+1] != want.G || buf[base+2] != want.B || buf[base+3] != want.A {
			t.Fatalf("pixel (%d,%d) = %v, want %v", row, col, buf[base:base+4], want)
		}
	}

	check(0, 0, paletteWall)
	check(1, 1, paletteEndpoint) // start overrides open
	check(2, 2, paletteEndpoint) // end overrides wall
	check(1, 2, paletteVisited)

	g.OrMark(1, 2, core.MarkPath)
	FillRGBA(buf, g, start, end, DefaultPalette)
	check(1, 2, palettePath) // path wins over visited
}
