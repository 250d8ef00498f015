// Package ktruss implements a weighted k-truss filter.
//
// The k-truss of a graph keeps the edges supported by enough triangles.
// In the weighted variant an edge {u, v} gains one unit of support for
// every common neighbor z whose two wing edges are jointly cheap enough:
// w(z,u) + w(z,v) ≤ budget. Edges with support ≥ k−2 survive; everything
// else (and any vertex left without edges) is dropped.
//
// On travel-time networks this isolates road-segment clusters that are
// mutually reachable through short detours, a stricter notion of cohesion
// than k-core degree sums.
//
// Complexity: O(Σ deg(z)²) for support counting, O(E) for filtering.
package ktruss

import (
	"errors"

	"github.com/movegraph/movegraph/core"
)

// Sentinel errors for the truss filter.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("ktruss: graph is nil")

	// ErrBadK indicates a truss parameter below 2.
	ErrBadK = errors.New("ktruss: k must be at least 2")

	// ErrBadBudget indicates a negative wing-weight budget.
	ErrBadBudget = errors.New("ktruss: weight budget must be non-negative")
)

// Truss returns the weighted k-truss of g as a new undirected graph.
//
// An edge survives when at least k−2 triangles support it within the wing
// budget. Directed input is collapsed to undirected (reciprocal weights
// averaged) first. Surviving edges keep their original weights; vertices
// without surviving edges are not included.
func Truss(g *core.Graph, k int, budget float64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 2 {
		return nil, ErrBadK
	}
	if budget < 0 {
		return nil, ErrBadBudget
	}

	if g.Directed() {
		g = g.ToUndirected()
	}

	// Support per undirected edge, keyed by ordered (min, max) pair.
	type pair struct{ u, v string }
	key := func(a, b string) pair {
		if a < b {
			return pair{a, b}
		}

		return pair{b, a}
	}

	support := make(map[pair]int)
	for _, e := range g.Edges() {
		support[key(e.From, e.To)] = 0
	}

	// Count, for every wing vertex z, the neighbor pairs (u, v) that close
	// a triangle with combined wing weight within the budget.
	for _, z := range g.Vertices() {
		nbrs := g.Neighbors(z)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				u, v := nbrs[i], nbrs[j]
				if !g.HasEdge(u, v) {
					continue
				}
				wu, _ := g.Weight(z, u)
				wv, _ := g.Weight(z, v)
				if wu+wv <= budget {
					support[key(u, v)]++
				}
			}
		}
	}

	truss := core.NewGraph()
	for _, e := range g.Edges() {
		if support[key(e.From, e.To)] >= k-2 {
			_ = truss.AddEdge(e.From, e.To, e.Weight) // validated by g already
		}
	}

	return truss, nil
}
