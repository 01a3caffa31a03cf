package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/gridgraph"
	"github.com/katalvlaran/gridbfs/render"
)

func scenario(t *testing.T) (*gridgraph.Grid, *bfs.Result) {
	t.Helper()
	g, err := gridgraph.From2D([][]int{
		{1, 0, 1, 1, 1},
		{1, 1, 0, 0, 1},
		{0, 1, 1, 0, 1},
		{1, 0, 1, 1, 1},
		{1, 1, 0, 1, 1},
	})
	require.NoError(t, err)
	res, err := bfs.Traverse(g, gridgraph.At(0, 0))
	require.NoError(t, err)
	return g, res
}

// TestTraceResult checks the classic one-line trace format.
func TestTraceResult(t *testing.T) {
	g, err := gridgraph.From2D([][]int{{1, 1}, {0, 1}})
	require.NoError(t, err)
	res, err := bfs.Traverse(g, gridgraph.At(0, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf).TraceResult(res))
	assert.Equal(t,
		"BFS Traversal starting from (0, 0):\n(0, 0) -> (0, 1) -> (1, 1) -> End of BFS\n",
		buf.String())
}

// TestTrace_Walk streams a lazy sequence.
func TestTrace_Walk(t *testing.T) {
	g, _ := scenario(t)
	seq, err := bfs.Walk(g, gridgraph.At(4, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf).Trace(gridgraph.At(4, 1), seq))
	assert.Equal(t,
		"BFS Traversal starting from (4, 1):\n(4, 1) -> (4, 0) -> (3, 0) -> End of BFS\n",
		buf.String())
}

// TestMap draws the visited component of the reference grid.
func TestMap(t *testing.T) {
	g, res := scenario(t)
	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf).Map(g, res))
	assert.Equal(t, ""+
		"S#ooo\n"+
		"oo##o\n"+
		"#oo#o\n"+
		".#ooo\n"+
		"..#oo\n", buf.String())
}

// TestComponents labels both regions of the reference grid.
func TestComponents(t *testing.T) {
	g, _ := scenario(t)
	comps, err := bfs.Components(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf).Components(g, comps))
	assert.Equal(t, ""+
		"a#aaa\n"+
		"aa##a\n"+
		"#aa#a\n"+
		"b#aaa\n"+
		"bb#aa\n", buf.String())
}

// TestRegionLabel covers the alphabet and the overflow symbol.
func TestRegionLabel(t *testing.T) {
	assert.Equal(t, 'a', render.RegionLabel(0))
	assert.Equal(t, 'z', render.RegionLabel(25))
	assert.Equal(t, '*', render.RegionLabel(26))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestTrace_WriteError propagates writer failures.
func TestTrace_WriteError(t *testing.T) {
	_, res := scenario(t)
	assert.Error(t, render.NewPrinter(failWriter{}).TraceResult(res))
}
