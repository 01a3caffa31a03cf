package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridbfs/bfs"
	"github.com/katalvlaran/gridbfs/builder"
	"github.com/katalvlaran/gridbfs/gridgraph"
)

// benchGrid builds a deterministic n×n grid with ~30% blocked cells and a clear origin.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	g, err := builder.Random(n, n, builder.WithSeed(42), builder.WithDensity(0.3), builder.WithClearCell(gridgraph.At(0, 0)))
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	return g
}

// BenchmarkTraverse_Open measures a full sweep of an open 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkTraverse_Open(b *testing.B) {
	g, err := builder.Open(1000, 1000)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Traverse(g, gridgraph.At(500, 500))
	}
}

// BenchmarkTraverse_Random measures traversal on a 1000×1000 grid with obstacles.
func BenchmarkTraverse_Random(b *testing.B) {
	g := benchGrid(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Traverse(g, gridgraph.At(0, 0))
	}
}

// BenchmarkComponents measures region labelling on the same random grid.
func BenchmarkComponents(b *testing.B) {
	g := benchGrid(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
