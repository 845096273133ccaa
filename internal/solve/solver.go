package solve

import (
	"time"

	"mazeviz/internal/core"
)

// Parent sentinels. A cell's parent starts unset and is assigned exactly once
// at discovery; the start cell carries the root sentinel.
const (
	parentUnset = -1
	parentRoot  = -2
)

// steps holds the distance-1 neighbor offsets in up, down, left, right order.
// BFS always visits them in this order; only DFS shuffles.
var steps = [4]core.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Result holds the outcome of one solve: parent links over the grid's index
// space and the cells in first-visit order, for replaying the exploration.
type Result struct {
	Parent []int
	Order  []core.Point
}

// Reached reports whether the search discovered p.
func (r *Result) Reached(g *core.Grid, p core.Point) bool {
	return r.Parent[g.Index(p.Row, p.Col)] != parentUnset
}

// Options configures a solve. OnVisit, when non-nil, is called after each
// newly visited cell; pacing (animation delays) is entirely the callback's
// business. RNG drives DFS direction shuffling and defaults to a wall-clock
// seed when nil.
type Options struct {
	RNG     *core.RNG
	OnVisit func()
}

// Run explores g from start toward end under the given strategy. It clears
// all marks first, then maintains the frontier/visited mark bits as it goes,
// stopping when end is popped or the frontier drains. When end is unreachable
// the engine still terminates cleanly, leaving its parent unset.
//
// Each cell's parent is assigned at the moment it is first discovered and
// never overwritten afterward, even if the cell is reachable through another
// neighbor before being popped. The parent links therefore form a tree rooted
// at start, which is what makes path reconstruction valid.
func Run(g *core.Grid, start, end core.Point, s Strategy, opts Options) *Result {
	rng := opts.RNG
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}

	g.ResetMarks()
	res := &Result{Parent: make([]int, g.Rows*g.Cols)}
	for i := range res.Parent {
		res.Parent[i] = parentUnset
	}

	f := newFrontier(s.FIFO, g.Rows*g.Cols)
	res.Parent[g.Index(start.Row, start.Col)] = parentRoot
	g.OrMark(start.Row, start.Col, core.MarkFrontier)
	f.push(start)

	order := [4]int{0, 1, 2, 3}
	for !f.empty() {
		cur := f.pop()
		g.ClearMark(cur.Row, cur.Col, core.MarkFrontier)
		if g.Mark(cur.Row, cur.Col)&core.MarkVisited == 0 {
			g.OrMark(cur.Row, cur.Col, core.MarkVisited)
			res.Order = append(res.Order, cur)
			if opts.OnVisit != nil {
				opts.OnVisit()
			}
		}
		if cur == end {
			break
		}
		if s.ShuffleDirs {
			rng.Shuffle(4, func(i, j int) { order[i], order[j] = order[j], order[i] })
		}
		for _, k := range order {
			nr, nc := cur.Row+steps[k].Row, cur.Col+steps[k].Col
			if !g.InBounds(nr, nc) || !g.Open(nr, nc) {
				continue
			}
			idx := g.Index(nr, nc)
			if res.Parent[idx] != parentUnset {
				continue
			}
			res.Parent[idx] = g.Index(cur.Row, cur.Col)
			f.push(core.Point{Row: nr, Col: nc})
			g.OrMark(nr, nc, core.MarkFrontier)
		}
	}
	return res
}
