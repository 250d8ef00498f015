package centrality

import (
	"math"

	"github.com/movegraph/movegraph/core"
)

// PageRank computes weighted PageRank scores for every vertex of g.
//
// Transition probability from u to v is proportional to w(u→v) among u's
// outgoing weights; vertices with no outgoing weight (dangling) spread
// their mass uniformly. Scores sum to 1. Pass nil opts for
// DefaultPageRankOptions.
//
// If the iteration cap is reached before convergence, the best-effort map
// is returned with ErrNotConverged. An empty graph yields an empty map.
//
// Complexity: O(MaxIter · (V + E))
func PageRank(g *core.Graph, opts *PageRankOptions) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultPageRankOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Damping <= 0 || cfg.Damping >= 1 {
		return nil, ErrBadDamping
	}
	if cfg.Tolerance <= 0 {
		return nil, ErrBadTolerance
	}
	if cfg.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}, nil
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Pre-resolve weight-proportional transitions over the sorted arena.
	type arc struct {
		from, to int
		prob     float64
	}
	var arcs []arc
	outWeight := make([]float64, n)
	for i, id := range ids {
		outWeight[i] = g.WeightedOutDegree(id)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if outWeight[u] > 0 {
			arcs = append(arcs, arc{u, v, e.Weight / outWeight[u]})
		}
		if !g.Directed() && outWeight[v] > 0 {
			arcs = append(arcs, arc{v, u, e.Weight / outWeight[v]})
		}
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}

	base := (1 - cfg.Damping) / float64(n)
	converged := false
	for iter := 0; iter < cfg.MaxIter; iter++ {
		dangling := 0.0
		for i := range rank {
			if outWeight[i] == 0 {
				dangling += rank[i]
			}
		}

		share := cfg.Damping * dangling / float64(n)
		for i := range next {
			next[i] = base + share
		}
		for _, a := range arcs {
			next[a.to] += cfg.Damping * rank[a.from] * a.prob
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank
		if delta < cfg.Tolerance {
			converged = true
			break
		}
	}

	scores := make(map[string]float64, n)
	for i, id := range ids {
		scores[id] = rank[i]
	}

	if !converged {
		return scores, ErrNotConverged
	}

	return scores, nil
}
