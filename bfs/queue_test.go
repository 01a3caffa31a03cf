package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
)

// TestQueue_FIFO verifies head-first removal and length bookkeeping.
func TestQueue_FIFO(t *testing.T) {
	q := bfs.NewQueue(3)
	assert.True(t, q.IsEmpty())

	q.Push(gridgraph.At(0, 0))
	q.Push(gridgraph.At(0, 1))
	q.Push(gridgraph.At(1, 0))
	assert.Equal(t, 3, q.Len())

	for _, want := range []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}} {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 3, q.Pushed())
}

// TestQueue_PopEmpty checks the defensive ErrEmptyQueue signal.
func TestQueue_PopEmpty(t *testing.T) {
	q := bfs.NewQueue(0)
	_, err := q.Pop()
	assert.ErrorIs(t, err, bfs.ErrEmptyQueue)

	q.Push(gridgraph.At(2, 2))
	_, err = q.Pop()
	require.NoError(t, err)
	_, err = q.Pop()
	assert.ErrorIs(t, err, bfs.ErrEmptyQueue)
}

// TestQueue_NegativeCapacity treats a negative capacity as zero.
func TestQueue_NegativeCapacity(t *testing.T) {
	q := bfs.NewQueue(-5)
	q.Push(gridgraph.At(0, 0))
	c, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.At(0, 0), c)
}
