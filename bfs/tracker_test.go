package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
)

// TestTracker_MarkIdempotent verifies marking twice is a harmless no-op.
func TestTracker_MarkIdempotent(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	tr := bfs.NewTracker(g)

	c := gridgraph.At(1, 0)
	assert.False(t, tr.IsVisited(c))
	assert.True(t, tr.MarkVisited(c), "first mark changes state")
	assert.False(t, tr.MarkVisited(c), "second mark is a no-op")
	assert.True(t, tr.IsVisited(c))
	assert.Equal(t, 1, tr.Count())

	assert.False(t, tr.IsVisited(gridgraph.At(0, 0)))
}

// TestTracker_OutOfBounds ensures out-of-range cells never corrupt state.
func TestTracker_OutOfBounds(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{1, 1}})
	require.NoError(t, err)
	tr := bfs.NewTracker(g)

	for _, c := range []gridgraph.Coordinate{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: -1}} {
		assert.False(t, tr.MarkVisited(c), "MarkVisited(%v)", c)
		assert.False(t, tr.IsVisited(c), "IsVisited(%v)", c)
	}
	assert.Equal(t, 0, tr.Count())
	// nothing in bounds got flagged either
	assert.False(t, tr.IsVisited(gridgraph.At(0, 0)))
	assert.False(t, tr.IsVisited(gridgraph.At(0, 1)))
}
