package bfs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// Walker encapsulates the state of one traversal. The grid is borrowed
// read-only; the queue and tracker belong to the walker alone.
type Walker struct {
	grid  *gridgraph.Grid
	start gridgraph.Coordinate
	opts  Options
	state State
	queue *Queue
	seen  *Tracker
	res   *Result
	err   error
}

// NewWalker prepares a traversal of g from start. Nothing is validated or
// allocated until Run.
func NewWalker(g *gridgraph.Grid, start gridgraph.Coordinate, opts ...Option) *Walker {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Walker{grid: g, start: start, opts: o, state: NotStarted}
}

// Traverse runs breadth-first search on g from start, applying any number of
// functional Options. Returns ErrGridNil for a nil grid, ErrInvalidStart
// (also matching gridgraph.ErrOutOfBounds when applicable) for a bad start,
// or a wrapped hook error. On error the result is nil.
func Traverse(g *gridgraph.Grid, start gridgraph.Coordinate, opts ...Option) (*Result, error) {
	return NewWalker(g, start, opts...).Run()
}

// State returns the walker's lifecycle state.
func (w *Walker) State() State {
	return w.state
}

// Run executes the traversal. Calling Run again returns the outcome of the
// first call without traversing twice.
func (w *Walker) Run() (*Result, error) {
	switch {
	case w.err != nil:
		return nil, w.err
	case w.state == Done:
		return w.res, nil
	}
	if err := validateStart(w.grid, w.start); err != nil {
		w.err = err
		return nil, err
	}

	w.begin(NewTracker(w.grid), w.grid.PassableCount())
	if err := w.loop(); err != nil {
		w.state = Done
		w.err = err
		w.res = nil
		return nil, err
	}
	w.state = Done

	return w.res, nil
}

// validateStart checks that start is in bounds and passable.
func validateStart(g *gridgraph.Grid, start gridgraph.Coordinate) error {
	if g == nil {
		return ErrGridNil
	}
	ok, err := g.IsPassable(start)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	if !ok {
		return fmt.Errorf("%w: %v is blocked", ErrInvalidStart, start)
	}
	return nil
}

// begin allocates the per-run state and seeds the queue with the start cell.
// Only passable cells are ever pushed, so capacity = PassableCount() avoids
// any reallocation of the queue or the result.
func (w *Walker) begin(seen *Tracker, capacity int) {
	w.queue = NewQueue(capacity)
	w.seen = seen
	w.res = &Result{
		Start: w.start,
		Order: make([]gridgraph.Coordinate, 0, capacity),
	}
	w.state = Running
	w.discover(w.start)
}

// loop drains the queue: pop, visit, expand.
func (w *Walker) loop() error {
	for !w.queue.IsEmpty() {
		cur, err := w.queue.Pop()
		if err != nil {
			return err
		}
		w.opts.OnDequeue(cur)
		if err := w.visit(cur); err != nil {
			return err
		}
		for _, d := range directions {
			w.discover(cur.Add(d.DRow, d.DCol))
		}
	}
	return nil
}

// visit records c in Order and calls OnVisit.
func (w *Walker) visit(c gridgraph.Coordinate) error {
	w.res.Order = append(w.res.Order, c)
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// discover enqueues c if it is in bounds, passable and not yet seen.
// Marking and pushing happen together here and nowhere else, so a cell
// can never sit in the queue twice.
func (w *Walker) discover(c gridgraph.Coordinate) {
	if !w.grid.InBounds(c) {
		return
	}
	if ok, _ := w.grid.IsPassable(c); !ok {
		return
	}
	if !w.seen.MarkVisited(c) {
		return
	}
	w.queue.Push(c)
	w.opts.OnEnqueue(c)
}

// errStopWalk aborts the traversal behind Walk when the consumer stops early.
var errStopWalk = errors.New("bfs: walk stopped")

// Walk validates start eagerly and returns the visit sequence as an iterator.
// The traversal runs as the sequence is consumed; breaking out of the range
// loop stops it. Each range over the sequence starts a fresh traversal.
func Walk(g *gridgraph.Grid, start gridgraph.Coordinate) (iter.Seq[gridgraph.Coordinate], error) {
	if err := validateStart(g, start); err != nil {
		return nil, err
	}
	return func(yield func(gridgraph.Coordinate) bool) {
		_, _ = Traverse(g, start, WithOnVisit(func(c gridgraph.Coordinate) error {
			if !yield(c) {
				return errStopWalk
			}
			return nil
		}))
	}, nil
}
