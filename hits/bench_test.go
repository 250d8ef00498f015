package hits_test

import (
	"errors"
	"testing"

	"github.com/movegraph/movegraph/core"
	"github.com/movegraph/movegraph/gen"
	"github.com/movegraph/movegraph/hits"
)

// benchmarkHITS runs full-convergence HITS on a seeded random directed
// graph of n vertices.
func benchmarkHITS(b *testing.B, n int, p float64) {
	g, err := gen.RandomSparse(n, p, 100, 1, core.WithDirected(true))
	if err != nil {
		b.Fatalf("generating graph: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := hits.HITS(g, nil); err != nil && !errors.Is(err, hits.ErrNotConverged) {
			b.Fatalf("HITS failed: %v", err)
		}
	}
}

// BenchmarkHITS_Small scores a 100-vertex directed graph.
func BenchmarkHITS_Small(b *testing.B) {
	benchmarkHITS(b, 100, 0.1)
}

// BenchmarkHITS_Medium scores a 1000-vertex directed graph.
func BenchmarkHITS_Medium(b *testing.B) {
	benchmarkHITS(b, 1000, 0.02)
}
