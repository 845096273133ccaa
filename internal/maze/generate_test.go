package maze

import (
	"slices"
	"testing"

	"mazeviz/internal/core"
)

func openCells(g *core.Grid) []core.Point {
	var out []core.Point
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Open(r, c) {
				out = append(out, core.Point{Row: r, Col: c})
			}
		}
	}
	return out
}

// floodCount returns how many open cells are reachable from (1,1) through
// distance-1 open-cell steps.
func floodCount(g *core.Grid) int {
	seen := make([]bool, g.Rows*g.Cols)
	stack := []core.Point{{Row: 1, Col: 1}}
	seen[g.Index(1, 1)] = true
	count := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, d := range [4]core.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			nr, nc := cur.Row+d.Row, cur.Col+d.Col
			if !g.InBounds(nr, nc) || !g.Open(nr, nc) || seen[g.Index(nr, nc)] {
				continue
			}
			seen[g.Index(nr, nc)] = true
			stack = append(stack, core.Point{Row: nr, Col: nc})
		}
	}
	return count
}

func TestSpanningTree(t *testing.T) {
	sizes := [][2]int{{11, 11}, {21, 31}, {11, 41}}
	for _, sz := range sizes {
		rows, cols := sz[0], sz[1]
		g := core.NewGrid(rows, cols)
		Generate(g, core.NewRNG(7))

		rooms := (rows / 2) * (cols / 2)
		open := openCells(g)

		// A spanning tree over the rooms carves rooms-1 wall cells, so the
		// open set holds rooms + (rooms-1) cells.
		if len(open) != 2*rooms-1 {
			t.Fatalf("%dx%d: %d open cells, want %d", rows, cols, len(open), 2*rooms-1)
		}
		if got := floodCount(g); got != len(open) {
			t.Fatalf("%dx%d: flood fill reached %d of %d open cells", rows, cols, got, len(open))
		}

		// Acyclic: in the open-cell adjacency graph, edges must equal
		// nodes-1. Count each edge once via right/down neighbors.
		edges := 0
		for _, p := range open {
			if g.InBounds(p.Row, p.Col+1) && g.Open(p.Row, p.Col+1) {
				edges++
			}
			if g.InBounds(p.Row+1, p.Col) && g.Open(p.Row+1, p.Col) {
				edges++
			}
		}
		if edges != len(open)-1 {
			t.Fatalf("%dx%d: %d edges over %d open cells, want %d", rows, cols, edges, len(open), len(open)-1)
		}
	}
}

func TestAllRoomsOpenAndBorderWalled(t *testing.T) {
	g := core.NewGrid(11, 11)
	Generate(g, core.NewRNG(3))

	for r := 1; r < g.Rows; r += 2 {
		for c := 1; c < g.Cols; c += 2 {
			if !g.Open(r, c) {
				t.Fatalf("room cell (%d,%d) is not open", r, c)
			}
		}
	}
	for r := 0; r < g.Rows; r++ {
		if g.Open(r, 0) || g.Open(r, g.Cols-1) {
			t.Fatalf("border cell open in row %d", r)
		}
	}
	for c := 0; c < g.Cols; c++ {
		if g.Open(0, c) || g.Open(g.Rows-1, c) {
			t.Fatalf("border cell open in column %d", c)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := core.NewGrid(21, 21)
	b := core.NewGrid(21, 21)
	Generate(a, core.NewRNG(42))
	Generate(b, core.NewRNG(42))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must carve the same maze")
	}

	c := core.NewGrid(21, 21)
	Generate(c, core.NewRNG(43))
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical mazes")
	}
}

func TestRecarveResetsCells(t *testing.T) {
	g := core.NewGrid(11, 11)
	Generate(g, core.NewRNG(1))
	first := append([]uint8(nil), g.Cells()...)

	// Re-carving must start from all-wall; passages never accumulate.
	Generate(g, core.NewRNG(2))
	rooms := (g.Rows / 2) * (g.Cols / 2)
	if got := len(openCells(g)); got != 2*rooms-1 {
		t.Fatalf("re-carve left %d open cells, want %d", got, 2*rooms-1)
	}

	Generate(g, core.NewRNG(1))
	if !slices.Equal(first, g.Cells()) {
		t.Fatal("re-carving with the original seed must reproduce the original maze")
	}
}

func TestGenerateLeavesMarksAlone(t *testing.T) {
	g := core.NewGrid(11, 11)
	g.OrMark(1, 1, core.MarkPath)
	Generate(g, core.NewRNG(5))
	if g.Mark(1, 1) != core.MarkPath {
		t.Fatal("generation must not touch solve-time marks")
	}
}
