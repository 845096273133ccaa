package solve

import "mazeviz/internal/core"

// MarkPath walks the parent links backward from end, marking each cell on the
// way with the path bit and calling onStep after each mark. It returns the
// path ordered start to end, or nil when end was never discovered (no marks
// are applied in that case).
//
// The walk always terminates: parent links form a tree rooted at start, so
// every step strictly shortens the remaining distance to the root sentinel.
func MarkPath(g *core.Grid, res *Result, end core.Point, onStep func()) []core.Point {
	cur := g.Index(end.Row, end.Col)
	if res.Parent[cur] == parentUnset {
		return nil
	}
	var path []core.Point
	for cur != parentRoot {
		row, col := cur/g.Cols, cur%g.Cols
		g.OrMark(row, col, core.MarkPath)
		path = append(path, core.Point{Row: row, Col: col})
		if onStep != nil {
			onStep()
		}
		cur = res.Parent[cur]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
