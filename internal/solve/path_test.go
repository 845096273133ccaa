package solve

import (
	"testing"

	"mazeviz/internal/core"
	"mazeviz/internal/maze"
)

func TestMarkPathMarksEveryPathCell(t *testing.T) {
	g := serpentineFixture(t)
	start := core.Point{Row: 1, Col: 1}
	end := core.Point{Row: 9, Col: 9}

	res := Run(g, start, end, BFS, Options{})
	path := MarkPath(g, res, end, nil)

	for _, p := range path {
		if g.Mark(p.Row, p.Col)&core.MarkPath == 0 {
			t.Fatalf("path cell %v missing the path mark", p)
		}
	}
	marked := 0
	for _, m := range g.Marks() {
		if m&core.MarkPath != 0 {
			marked++
		}
	}
	if marked != len(path) {
		t.Fatalf("%d cells marked, %d cells on the path", marked, len(path))
	}
}

func TestMarkPathStepCallback(t *testing.T) {
	g := serpentineFixture(t)
	start := core.Point{Row: 1, Col: 1}
	end := core.Point{Row: 9, Col: 9}

	res := Run(g, start, end, BFS, Options{})
	steps := 0
	path := MarkPath(g, res, end, func() { steps++ })
	if steps != len(path) {
		t.Fatalf("callback fired %d times for a %d-cell path", steps, len(path))
	}
}

func TestMarkPathTerminationBound(t *testing.T) {
	g := core.NewGrid(31, 31)
	start := core.Point{Row: 1, Col: 1}
	end := core.Point{Row: 29, Col: 29}
	for seed := int64(1); seed <= 10; seed++ {
		maze.Generate(g, core.NewRNG(seed))
		res := Run(g, start, end, DFS, Options{RNG: core.NewRNG(seed)})
		path := MarkPath(g, res, end, nil)
		if len(path) == 0 {
			t.Fatalf("seed %d: end unreachable in a perfect maze", seed)
		}
		if len(path) > g.Rows*g.Cols {
			t.Fatalf("seed %d: path of %d cells exceeds the %d-cell bound", seed, len(path), g.Rows*g.Cols)
		}
	}
}
