package solve

import "mazeviz/internal/core"

// frontier holds discovered-but-not-yet-visited cells. FIFO order yields BFS,
// LIFO yields DFS; one slice-backed container covers both disciplines.
type frontier struct {
	items []core.Point
	fifo  bool
}

func newFrontier(fifo bool, capHint int) *frontier {
	return &frontier{items: make([]core.Point, 0, capHint), fifo: fifo}
}

func (f *frontier) push(p core.Point) {
	f.items = append(f.items, p)
}

func (f *frontier) pop() core.Point {
	if f.fifo {
		p := f.items[0]
		f.items = f.items[1:]
		return p
	}
	p := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return p
}

func (f *frontier) empty() bool { return len(f.items) == 0 }
