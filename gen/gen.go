// Package gen builds small deterministic synthetic graphs for tests and
// benchmarks: rings, cliques, stars, and seeded random sparse graphs.
//
// Vertex IDs are zero-padded ("n000", "n001", ...) so lexicographic order
// matches construction order and downstream enumeration stays stable.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/movegraph/movegraph/core"
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewVertices indicates n is below the shape's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("gen: probability must be in [0, 1]")

	// ErrBadWeight indicates a non-positive weight parameter.
	ErrBadWeight = errors.New("gen: weight must be positive")
)

const minCycleNodes = 3

// id formats the deterministic vertex ID for index i.
func id(i int) string { return fmt.Sprintf("n%03d", i) }

// Cycle builds the n-vertex ring C_n with uniform edge weight.
// Requires n ≥ 3 and weight > 0.
func Cycle(n int, weight float64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("gen: Cycle n=%d: %w", n, ErrTooFewVertices)
	}
	if weight <= 0 {
		return nil, ErrBadWeight
	}

	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddEdge(id(i), id((i+1)%n), weight); err != nil {
			return nil, fmt.Errorf("gen: Cycle edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n with uniform edge weight.
// Requires n ≥ 2 and weight > 0. Directed graphs get both orientations.
func Complete(n int, weight float64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("gen: Complete n=%d: %w", n, ErrTooFewVertices)
	}
	if weight <= 0 {
		return nil, ErrBadWeight
	}

	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !g.Directed() && i > j {
				continue
			}
			if err := g.AddEdge(id(i), id(j), weight); err != nil {
				return nil, fmt.Errorf("gen: Complete edge %d→%d: %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Star builds a star with one hub (index 0) and n-1 leaves.
// Requires n ≥ 2 and weight > 0.
func Star(n int, weight float64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("gen: Star n=%d: %w", n, ErrTooFewVertices)
	}
	if weight <= 0 {
		return nil, ErrBadWeight
	}

	g := core.NewGraph(opts...)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(id(0), id(i), weight); err != nil {
			return nil, fmt.Errorf("gen: Star edge %d: %w", i, err)
		}
	}

	return g, nil
}

// RandomSparse builds an n-vertex graph where each vertex pair gains an
// edge with probability p; weights are uniform in (0, maxWeight]. A fixed
// seed yields an identical graph on every run.
func RandomSparse(n int, p float64, maxWeight float64, seed int64, opts ...core.GraphOption) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("gen: RandomSparse n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, ErrBadProbability
	}
	if maxWeight <= 0 {
		return nil, ErrBadWeight
	}

	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddVertex(id(i)); err != nil {
			return nil, fmt.Errorf("gen: RandomSparse vertex %d: %w", i, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			w := rng.Float64() * maxWeight
			if w == 0 {
				w = maxWeight
			}
			if err := g.AddEdge(id(i), id(j), w); err != nil {
				return nil, fmt.Errorf("gen: RandomSparse edge %d→%d: %w", i, j, err)
			}
			if g.Directed() && rng.Float64() < p {
				if err := g.AddEdge(id(j), id(i), rng.Float64()*maxWeight); err != nil {
					return nil, fmt.Errorf("gen: RandomSparse edge %d→%d: %w", j, i, err)
				}
			}
		}
	}

	return g, nil
}
