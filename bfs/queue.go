package bfs

import "github.com/katalvlaran/gridbfs/gridgraph"

// Queue is the BFS frontier: a FIFO of discovered-but-unexpanded cells.
// Its backing slice is allocated once with the grid's cell count; since
// every cell is pushed at most once, it never grows.
type Queue struct {
	items []gridgraph.Coordinate
	head  int
}

// NewQueue returns an empty queue able to hold capacity cells without reallocating.
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{items: make([]gridgraph.Coordinate, 0, capacity)}
}

// Push appends c at the tail. The caller must not push a cell twice.
func (q *Queue) Push(c gridgraph.Coordinate) {
	q.items = append(q.items, c)
}

// Pop removes and returns the head, or ErrEmptyQueue.
func (q *Queue) Pop() (gridgraph.Coordinate, error) {
	if q.IsEmpty() {
		return gridgraph.Coordinate{}, ErrEmptyQueue
	}
	c := q.items[q.head]
	q.head++
	return c, nil
}

// IsEmpty reports whether no cells are pending.
func (q *Queue) IsEmpty() bool {
	return q.head >= len(q.items)
}

// Len returns the number of pending cells.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Pushed returns the total number of cells ever pushed.
func (q *Queue) Pushed() int {
	return len(q.items)
}
