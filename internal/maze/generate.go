// Package maze carves perfect mazes into a core.Grid.
package maze

import "mazeviz/internal/core"

// Room cells sit at odd-odd coordinates; the generator carves the even-coded
// wall cells between them. dirs holds the distance-2 steps to the four
// neighboring rooms.
var dirs = [4]core.Point{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

// Generate carves a perfect maze into g using a randomized iterative
// backtracker. All cells are reset to wall first, so re-carving the same grid
// never accumulates passages across runs. After it returns, the open cells
// form a spanning tree over the odd-odd room cells: connected, acyclic,
// exactly one simple path between any two open cells.
func Generate(g *core.Grid, rng *core.RNG) {
	g.ResetCells(core.CellWall)
	for r := 1; r < g.Rows; r += 2 {
		for c := 1; c < g.Cols; c += 2 {
			g.SetCell(r, c, core.CellOpen)
		}
	}

	// Visited set scoped to this generation pass; distinct from the solve-time
	// mark bits, which stay untouched here.
	visited := make([]bool, g.Rows*g.Cols)

	stack := make([]core.Point, 0, (g.Rows/2)*(g.Cols/2))
	stack = append(stack, core.Point{Row: 1, Col: 1})
	visited[g.Index(1, 1)] = true

	var choices [4]core.Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		n := 0
		for _, d := range dirs {
			nr, nc := cur.Row+d.Row, cur.Col+d.Col
			if nr <= 0 || nr >= g.Rows-1 || nc <= 0 || nc >= g.Cols-1 {
				continue
			}
			if !visited[g.Index(nr, nc)] {
				choices[n] = core.Point{Row: nr, Col: nc}
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := choices[rng.IntN(n)]
		// Open the wall cell midway between cur and next.
		g.SetCell((cur.Row+next.Row)/2, (cur.Col+next.Col)/2, core.CellOpen)
		visited[g.Index(next.Row, next.Col)] = true
		stack = append(stack, next)
	}
}
