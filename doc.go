// Package gridbfs is a small toolkit for breadth-first reachability on
// fixed-size 2D grids of passable and blocked cells.
//
// What is gridbfs?
//
//	A pure-Go module that brings together:
//		• gridgraph/ — immutable Grid and Coordinate types with bounds-checked queries
//		• bfs/       — the traversal engine: FIFO frontier, visited set, walker states,
//		               lazy Walk iterator and connected-region labelling
//		• builder/   — deterministic open and random-obstacle grid generators
//		• gridio/    — YAML grid documents
//		• render/    — traces and styled maps for terminals
//		• cmd/gridbfs — the command-line front end
//
// Determinism
//
//	Neighbors are always expanded up, down, left, right. Traversing the
//	same grid from the same start yields the same visit order every time.
//
// Quick ASCII example (S = start, # = blocked):
//
//	S # .
//	. . #
//
//	visit order: (0, 0) → (1, 0) → (1, 1)
//
//	go install github.com/katalvlaran/gridbfs/cmd/gridbfs@latest
package gridbfs
