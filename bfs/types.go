// Package bfs provides tunable options, traversal states and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"slices"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrInvalidStart is returned when the start coordinate is out of bounds
	// or blocked. No traversal is performed.
	ErrInvalidStart = errors.New("bfs: invalid start")

	// ErrEmptyQueue is returned by Queue.Pop on an empty queue. The engine's
	// loop condition prevents it; seeing it means the queue was misused.
	ErrEmptyQueue = errors.New("bfs: pop from empty queue")
)

// State is the lifecycle of a Walker.
type State int

const (
	// NotStarted: constructed, or start validation failed.
	NotStarted State = iota
	// Running: the queue is being drained.
	Running
	// Done: the queue is empty (or a hook aborted); terminal.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Direction is a single neighbor offset.
type Direction struct {
	Name       string
	DRow, DCol int
}

// directions fixes neighbor generation order: up, down, left, right.
// Visitation order depends on it.
var directions = [...]Direction{
	{Name: "up", DRow: -1, DCol: 0},
	{Name: "down", DRow: 1, DCol: 0},
	{Name: "left", DRow: 0, DCol: -1},
	{Name: "right", DRow: 0, DCol: 1},
}

// Directions returns a copy of the neighbor offsets in expansion order.
func Directions() []Direction {
	out := directions
	return out[:]
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds the callbacks invoked during a traversal.
type Options struct {
	// OnEnqueue is called right after a cell is marked visited and pushed.
	OnEnqueue func(c gridgraph.Coordinate)

	// OnDequeue is called immediately after a cell is popped, before it is visited.
	OnDequeue func(c gridgraph.Coordinate)

	// OnVisit is called once the cell is appended to the result. If it returns
	// an error, BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Coordinate) error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Coordinate) {},
		OnDequeue: func(gridgraph.Coordinate) {},
		OnVisit:   func(gridgraph.Coordinate) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Coordinate) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Start: the start coordinate (always Order[0]).
//   - Order: every reachable cell, in dequeue order.
//
// A Result is never modified after the traversal that produced it returns.
type Result struct {
	Start gridgraph.Coordinate
	Order []gridgraph.Coordinate
}

// Len returns the number of visited cells.
func (r *Result) Len() int {
	return len(r.Order)
}

// Contains reports whether c was visited. Complexity: O(n).
func (r *Result) Contains(c gridgraph.Coordinate) bool {
	return slices.Contains(r.Order, c)
}

// Coordinates returns a copy of Order.
func (r *Result) Coordinates() []gridgraph.Coordinate {
	return slices.Clone(r.Order)
}
