package kcore_test

import (
	"testing"

	"github.com/movegraph/movegraph/gen"
	"github.com/movegraph/movegraph/kcore"
)

// benchmarkCoreNumbers peels a seeded random sparse graph of n vertices.
// It resets the timer after generation so only the peel is measured.
func benchmarkCoreNumbers(b *testing.B, n int, p float64) {
	g, err := gen.RandomSparse(n, p, 100, 1)
	if err != nil {
		b.Fatalf("generating graph: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kcore.CoreNumbers(g); err != nil {
			b.Fatalf("CoreNumbers failed: %v", err)
		}
	}
}

// BenchmarkCoreNumbers_Small peels a 100-vertex sparse graph.
func BenchmarkCoreNumbers_Small(b *testing.B) {
	benchmarkCoreNumbers(b, 100, 0.1)
}

// BenchmarkCoreNumbers_Medium peels a 1000-vertex sparse graph.
func BenchmarkCoreNumbers_Medium(b *testing.B) {
	benchmarkCoreNumbers(b, 1000, 0.02)
}

// BenchmarkCoreNumbers_Dense peels a 300-vertex dense graph.
func BenchmarkCoreNumbers_Dense(b *testing.B) {
	benchmarkCoreNumbers(b, 300, 0.5)
}
