package hits

import (
	"math"

	"github.com/movegraph/movegraph/core"
)

// HITS computes hub and authority scores for every vertex of g.
//
// Returns two maps keyed by vertex ID, each L2-normalized so that the sum
// of squared scores equals 1. Pass nil opts for DefaultOptions.
//
// An empty graph yields two empty maps and no error. If the iteration cap
// is reached before convergence, the best-effort maps are returned with
// ErrNotConverged; all other errors return nil maps.
//
// Complexity: O(MaxIter · (V + E))
func HITS(g *core.Graph, opts *Options) (map[string]float64, map[string]float64, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Tolerance <= 0 {
		return nil, nil, ErrBadTolerance
	}
	if cfg.MaxIter < 1 {
		return nil, nil, ErrBadMaxIter
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}, map[string]float64{}, nil
	}

	// Dense index-based vectors over the sorted ID arena keep the update
	// loops allocation-free and the iteration order reproducible.
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	type arc struct {
		from, to int
		weight   float64
	}
	var arcs []arc
	for _, e := range g.Edges() {
		arcs = append(arcs, arc{index[e.From], index[e.To], e.Weight})
		if !g.Directed() {
			arcs = append(arcs, arc{index[e.To], index[e.From], e.Weight})
		}
	}

	hub := make([]float64, n)
	auth := make([]float64, n)
	last := make([]float64, n)
	for i := range hub {
		hub[i] = 1.0 / float64(n)
	}

	converged := false
	for iter := 0; iter < cfg.MaxIter; iter++ {
		copy(last, hub)

		for i := range auth {
			auth[i] = 0
		}
		for _, a := range arcs {
			auth[a.to] += a.weight * last[a.from]
		}

		for i := range hub {
			hub[i] = 0
		}
		for _, a := range arcs {
			hub[a.from] += a.weight * auth[a.to]
		}

		normalizeL2(auth)
		normalizeL2(hub)

		delta := 0.0
		for i := range hub {
			delta += math.Abs(hub[i] - last[i])
		}
		if delta < cfg.Tolerance {
			converged = true
			break
		}
	}

	hubs := make(map[string]float64, n)
	auths := make(map[string]float64, n)
	for i, id := range ids {
		hubs[id] = hub[i]
		auths[id] = auth[i]
	}

	if !converged {
		return hubs, auths, ErrNotConverged
	}

	return hubs, auths, nil
}

// normalizeL2 scales v so that Σ v[i]² == 1. A zero vector (a graph with
// no edges) is replaced by the uniform unit vector so the normalization
// contract holds for every result.
func normalizeL2(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		u := 1.0 / math.Sqrt(float64(len(v)))
		for i := range v {
			v[i] = u
		}

		return
	}

	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}
