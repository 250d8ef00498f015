package community

import (
	"errors"
	"math"

	"github.com/movegraph/movegraph/core"
	"github.com/movegraph/movegraph/kclique"
	"github.com/movegraph/movegraph/kcore"
)

// Sentinel errors for partition drivers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("community: graph is nil")

	// ErrNoEdges indicates a modularity request on an edgeless graph.
	ErrNoEdges = errors.New("community: graph has no edges")
)

// KCoreLevels partitions the graph into density levels by iterated main
// k-core extraction: level 0 is the main (maximum) weighted core, level 1
// the main core of what remains, and so on. Every vertex receives exactly
// one level.
//
// Complexity: O(L · (V + E) log V) for L levels.
func KCoreLevels(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels := make(map[string]int, g.VertexCount())
	work := g.Clone()
	level := 0

	for work.VertexCount() > 0 {
		main, err := kcore.MainCore(work)
		if err != nil {
			return nil, err
		}
		for _, id := range main.Vertices() {
			labels[id] = level
			work.RemoveVertex(id)
		}
		level++
	}

	return labels, nil
}

// CliquePercolationLabels partitions the graph by repeated weighted
// clique percolation. Each round uses the geometric mean of the remaining
// edge weights as the similarity threshold; every non-singleton community
// found is assigned the next label and removed. When no community spans
// an edge anymore, all leftover vertices share the final label.
//
// Directed input is collapsed to undirected (reciprocal weights averaged)
// up front. k is the clique size parameter forwarded to kclique.
func CliquePercolationLabels(g *core.Graph, k int) (map[string]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	work := g.Clone()
	if work.Directed() {
		work = work.ToUndirected()
	}

	labels := make(map[string]int, work.VertexCount())
	next := 0

	for work.VertexCount() > 0 {
		threshold, ok := geometricMeanWeight(work)
		if !ok {
			break // no edges left
		}

		communities, err := kclique.Communities(work, threshold, k)
		if err != nil {
			return nil, err
		}

		found := false
		for _, c := range communities {
			if len(c) < 2 {
				continue
			}
			assigned := false
			for _, id := range c {
				if !work.HasVertex(id) {
					continue // claimed by an earlier overlapping community
				}
				labels[id] = next
				work.RemoveVertex(id)
				assigned = true
			}
			if assigned {
				next++
				found = true
			}
		}
		if !found {
			break
		}
	}

	// Leftovers share the final label.
	for _, id := range work.Vertices() {
		labels[id] = next
	}

	return labels, nil
}

// Modularity scores a vertex labeling on an undirected weighted graph:
// Q = Σ_c (L_c/m − (D_c/2m)²) with L_c the intra-community weight, D_c
// the summed weighted degree of the community, and m the total edge
// weight. Directed input is collapsed to undirected first. Vertices
// missing from labels form an implicit extra community per vertex.
func Modularity(g *core.Graph, labels map[string]int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	if g.Directed() {
		g = g.ToUndirected()
	}

	m := g.TotalWeight()
	if m == 0 {
		return 0, ErrNoEdges
	}

	// Community label per vertex; unlabeled vertices get unique negatives.
	extra := make(map[string]int)
	nextFree := 0
	label := func(id string) int {
		if l, ok := labels[id]; ok {
			return l
		}
		if l, ok := extra[id]; ok {
			return l
		}
		nextFree--
		extra[id] = nextFree

		return nextFree
	}

	intra := make(map[int]float64)
	degree := make(map[int]float64)
	for _, id := range g.Vertices() {
		degree[label(id)] += g.WeightedDegree(id)
	}
	for _, e := range g.Edges() {
		lf, lt := label(e.From), label(e.To)
		if lf == lt {
			intra[lf] += e.Weight
		}
	}

	q := 0.0
	for c, d := range degree {
		q += intra[c]/m - math.Pow(d/(2*m), 2)
	}

	return q, nil
}

// geometricMeanWeight returns the geometric mean of all edge weights and
// whether any edge exists. A zero-weight edge forces the mean to 0.
func geometricMeanWeight(g *core.Graph) (float64, bool) {
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, false
	}

	logSum := 0.0
	for _, e := range edges {
		if e.Weight == 0 {
			return 0, true
		}
		logSum += math.Log(e.Weight)
	}

	return math.Exp(logSum / float64(len(edges))), true
}
