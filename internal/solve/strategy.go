// Package solve explores a carved maze grid and reconstructs solution paths.
package solve

import "sort"

// Strategy describes how the search engine orders its work. The two
// registered strategies differ only in frontier discipline and in whether the
// neighbor visit order is randomized per step.
type Strategy struct {
	Name        string
	FIFO        bool // pop oldest first (queue) instead of newest (stack)
	ShuffleDirs bool // randomize the 4-direction visit order each step
}

// BFS pops oldest-first and visits neighbors in a fixed order, so the first
// visit to any cell is along a shortest path from the start.
var BFS = Strategy{Name: "bfs", FIFO: true}

// DFS pops newest-first and shuffles the neighbor order, so the exploration
// shape varies run to run. It carries no shortest-path guarantee.
var DFS = Strategy{Name: "dfs", ShuffleDirs: true}

var strategies = map[string]Strategy{}

// Register adds a strategy under its name.
func Register(s Strategy) {
	if s.Name == "" {
		return
	}
	strategies[s.Name] = s
}

// Lookup resolves a strategy by name.
func Lookup(name string) (Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	out := make([]string, 0, len(strategies))
	for name := range strategies {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Toggle returns the other of the two built-in strategies.
func Toggle(s Strategy) Strategy {
	if s.Name == BFS.Name {
		return DFS
	}
	return BFS
}

func init() {
	Register(BFS)
	Register(DFS)
}
