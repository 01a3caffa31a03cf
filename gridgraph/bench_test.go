package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridbfs/gridgraph"
)

// BenchmarkNewGrid measures construction of a 1000×1000 grid with values in [0,1].
// Complexity: O(W×H)
func BenchmarkNewGrid(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = rng.Intn(2)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.From2D(values); err != nil {
			b.Fatal(err)
		}
	}
}
