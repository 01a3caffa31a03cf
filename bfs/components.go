package bfs

import "github.com/katalvlaran/gridbfs/gridgraph"

// Components partitions the passable cells of g into 4-connected regions.
// Regions are discovered in row-major order of their first cell; each is
// listed in the BFS order Traverse would produce from that cell.
//
// One Tracker is shared across the per-region walks so every cell is
// expanded exactly once overall.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func Components(g *gridgraph.Grid) ([][]gridgraph.Coordinate, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	seen := NewTracker(g)
	var comps [][]gridgraph.Coordinate

	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if ok, _ := g.IsPassable(c); !ok || seen.IsVisited(c) {
			continue
		}
		w := NewWalker(g, c)
		w.begin(seen, 0)
		if err := w.loop(); err != nil {
			return nil, err
		}
		w.state = Done
		comps = append(comps, w.res.Order)
	}
	return comps, nil
}
