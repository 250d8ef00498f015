package kcore

import (
	"container/heap"
	"errors"

	"github.com/movegraph/movegraph/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("kcore: graph is nil")

// CoreNumbers computes the weighted core number of every vertex.
//
// Returns a map from vertex ID to its real-valued core number. Isolated
// vertices get 0. An empty graph yields an empty map. The result is
// deterministic: degree ties during peeling are broken by lexicographic
// vertex ID.
//
// Complexity: O((V + E) log V)
func CoreNumbers(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	cores := make(map[string]float64, len(vertices))
	if len(vertices) == 0 {
		return cores, nil
	}

	// Fold directed edge pairs into a single incident weight per neighbor,
	// so removal updates are symmetric regardless of orientation.
	incident := make(map[string]map[string]float64, len(vertices))
	degrees := make(map[string]float64, len(vertices))
	for _, u := range vertices {
		nbrs := g.Neighbors(u)
		bucket := make(map[string]float64, len(nbrs))
		deg := 0.0
		for _, v := range nbrs {
			w := 0.0
			if out, ok := g.Weight(u, v); ok {
				w += out
			}
			if g.Directed() {
				if in, ok := g.Weight(v, u); ok {
					w += in
				}
			}
			bucket[v] = w
			deg += w
		}
		incident[u] = bucket
		degrees[u] = deg
	}

	// Lazy min-heap peeling: stale entries (degree changed since push, or
	// vertex already peeled) are discarded on pop.
	pq := make(peelPQ, 0, len(vertices))
	for _, u := range vertices {
		pq = append(pq, &peelItem{id: u, deg: degrees[u]})
	}
	heap.Init(&pq)

	removed := make(map[string]bool, len(vertices))
	threshold := 0.0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*peelItem)
		u := item.id
		if removed[u] || item.deg != degrees[u] {
			continue
		}

		// The threshold is monotone: it only ever ratchets upward.
		if degrees[u] > threshold {
			threshold = degrees[u]
		}
		cores[u] = threshold
		removed[u] = true

		for v, w := range incident[u] {
			if removed[v] {
				continue
			}
			degrees[v] -= w
			if degrees[v] < 0 {
				degrees[v] = 0 // guard against float drift
			}
			delete(incident[v], u)
			heap.Push(&pq, &peelItem{id: v, deg: degrees[v]})
		}
	}

	return cores, nil
}

// Subgraph returns the maximal subgraph in which every vertex has weighted
// degree at least k, as a new graph with the input's directedness. The
// result may be empty when no vertex qualifies.
//
// Complexity: O((V + E) log V) (dominated by CoreNumbers).
func Subgraph(g *core.Graph, k float64) (*core.Graph, error) {
	cores, err := CoreNumbers(g)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(cores))
	for id, c := range cores {
		if c >= k {
			keep[id] = true
		}
	}

	sub := core.NewGraph(core.WithDirected(g.Directed()))
	for id := range keep {
		_ = sub.AddVertex(id) // IDs come from g, never empty
	}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			_ = sub.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return sub, nil
}

// MainCore returns the subgraph induced by the vertices attaining the
// maximum core number, mirroring the "main core" convention of classic
// core decomposition. An empty graph yields an empty subgraph.
func MainCore(g *core.Graph) (*core.Graph, error) {
	cores, err := CoreNumbers(g)
	if err != nil {
		return nil, err
	}

	maxCore := 0.0
	for _, c := range cores {
		if c > maxCore {
			maxCore = c
		}
	}

	return Subgraph(g, maxCore)
}

// peelItem is a (vertex, degree) pair ordered by ascending degree with
// lexicographic ID as the deterministic tie-break.
type peelItem struct {
	id  string
	deg float64
}

// peelPQ is a min-heap of *peelItem using the lazy-decrease-key pattern:
// degree updates push fresh entries and stale ones are skipped on pop.
type peelPQ []*peelItem

func (pq peelPQ) Len() int { return len(pq) }

func (pq peelPQ) Less(i, j int) bool {
	if pq[i].deg != pq[j].deg {
		return pq[i].deg < pq[j].deg
	}

	return pq[i].id < pq[j].id
}

func (pq peelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *peelPQ) Push(x interface{}) { *pq = append(*pq, x.(*peelItem)) }

func (pq *peelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
