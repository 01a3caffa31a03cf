package bfs

import "github.com/katalvlaran/gridbfs/gridgraph"

// Tracker is the visitation set over one grid's coordinates, stored densely
// in row-major order. Each coordinate is marked at most once.
type Tracker struct {
	grid    *gridgraph.Grid
	visited []bool
	count   int
}

// NewTracker returns a tracker with every cell of g unvisited.
func NewTracker(g *gridgraph.Grid) *Tracker {
	return &Tracker{grid: g, visited: make([]bool, g.Size())}
}

// IsVisited reports whether c has been marked. Out-of-bounds cells are never visited.
func (t *Tracker) IsVisited(c gridgraph.Coordinate) bool {
	if !t.grid.InBounds(c) {
		return false
	}
	return t.visited[t.grid.Index(c)]
}

// MarkVisited marks c and reports whether this call changed its state.
// Marking an already-visited or out-of-bounds cell is a no-op returning false.
func (t *Tracker) MarkVisited(c gridgraph.Coordinate) bool {
	if !t.grid.InBounds(c) {
		return false
	}
	i := t.grid.Index(c)
	if t.visited[i] {
		return false
	}
	t.visited[i] = true
	t.count++
	return true
}

// Count returns the number of marked cells.
func (t *Tracker) Count() int {
	return t.count
}
