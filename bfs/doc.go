// Package bfs provides breadth-first traversal over a gridgraph.Grid,
// returning every cell reachable from a start cell in visit order.
//
// What
//
//   - Explore passable cells in non-decreasing distance from a start cell,
//     moving only up, down, left and right (4-connectivity).
//   - Returns a Result whose Order is the dequeue sequence; Order[0] is the start.
//   - Exposes its building blocks: Queue (FIFO frontier sized to the grid),
//     Tracker (dense visited set), Walker (NotStarted → Running → Done).
//   - Supports functional hooks at three stages:
//   - OnEnqueue (after a cell is marked and pushed)
//   - OnDequeue (immediately after popping)
//   - OnVisit   (after recording; may abort with an error)
//   - Walk yields the same sequence lazily as an iter.Seq.
//   - Components partitions all passable cells into connected regions.
//
// Determinism
//
//	Neighbors are generated in the fixed order up, down, left, right
//	(see Directions). The same (grid, start) always yields the same Order.
//
// Invariants
//
//	A cell is marked visited in the same step that pushes it onto the queue,
//	never on dequeue. Therefore no cell is queued twice, the queue never
//	holds more than R×C cells, and every traversal terminates.
//
// Concurrency
//
//	A Grid is read-only and may be shared by concurrent traversals. Each
//	Walker owns its Queue and Tracker; a single Walker is not safe for
//	concurrent use.
//
// Complexity (R×C grid)
//
//   - Time:   O(R·C)   (each cell enqueued at most once, 4 neighbor checks each)
//   - Memory: O(R·C)   (queue, visited flags, result)
//
// Usage
//
//	res, err := bfs.Traverse(g, gridgraph.At(0, 0))
//	if err != nil {
//	    // ErrGridNil, ErrInvalidStart (possibly with gridgraph.ErrOutOfBounds), or a hook error
//	}
//
//	res, err = bfs.Traverse(g, start,
//	    bfs.WithOnEnqueue(func(c gridgraph.Coordinate) { /* ... */ }),
//	    bfs.WithOnDequeue(func(c gridgraph.Coordinate) { /* ... */ }),
//	    bfs.WithOnVisit(func(c gridgraph.Coordinate) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGridNil       if the grid pointer is nil.
//   - ErrInvalidStart  if the start is out of bounds or blocked; nothing is traversed.
//   - ErrEmptyQueue    only from direct misuse of Queue.Pop.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
