package centrality

import (
	"container/heap"
	"math"

	"github.com/movegraph/movegraph/core"
)

// wgraph is an index-based adjacency snapshot over the sorted vertex
// arena, taken once per computation so the Dijkstra stages run without
// map lookups or locking.
type wgraph struct {
	ids   []string
	index map[string]int
	adj   [][]halfEdge
}

type halfEdge struct {
	to int
	w  float64
}

// snapshot builds the adjacency arena. With reverse=true directed edges
// are flipped (used for incoming-distance closeness); undirected graphs
// are unaffected by the flag.
func snapshot(g *core.Graph, reverse bool) *wgraph {
	ids := g.Vertices()
	w := &wgraph{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		adj:   make([][]halfEdge, len(ids)),
	}
	for i, id := range ids {
		w.index[id] = i
	}

	for i, id := range ids {
		var nbrs []string
		if g.Directed() && reverse {
			nbrs = g.InNeighbors(id)
		} else {
			nbrs = g.OutNeighbors(id)
		}
		for _, n := range nbrs {
			var wt float64
			var ok bool
			if g.Directed() && reverse {
				wt, ok = g.Weight(n, id)
			} else {
				wt, ok = g.Weight(id, n)
			}
			if !ok {
				continue
			}
			w.adj[i] = append(w.adj[i], halfEdge{to: w.index[n], w: wt})
		}
	}

	return w
}

// dijkstra computes shortest distances from source s using the
// lazy-decrease-key min-heap pattern. When sigma and order are non-nil it
// additionally tracks shortest-path counts and predecessor lists and
// appends settled vertices to order (Brandes' forward stage).
func (w *wgraph) dijkstra(s int, sigma []float64, preds [][]int, order *[]int) []float64 {
	n := len(w.ids)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[s] = 0
	if sigma != nil {
		for i := range sigma {
			sigma[i] = 0
			preds[i] = preds[i][:0]
		}
		sigma[s] = 1
	}

	visited := make([]bool, n)
	pq := distPQ{{node: s, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if order != nil {
			*order = append(*order, u)
		}

		for _, e := range w.adj[u] {
			nd := dist[u] + e.w
			switch {
			case nd < dist[e.to]:
				dist[e.to] = nd
				heap.Push(&pq, distItem{node: e.to, dist: nd})
				if sigma != nil {
					sigma[e.to] = sigma[u]
					preds[e.to] = append(preds[e.to][:0], u)
				}
			case sigma != nil && nd == dist[e.to] && !visited[e.to]:
				sigma[e.to] += sigma[u]
				preds[e.to] = append(preds[e.to], u)
			}
		}
	}

	return dist
}

// Closeness returns the closeness centrality of every vertex: the inverse
// mean shortest-path distance of the paths arriving at it, scaled by the
// reachable fraction so small components do not dominate. Directed graphs
// use incoming distances. Vertices reachable from nothing score 0.
// Complexity: O(V · (V + E) log V)
func Closeness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	w := snapshot(g, true)
	n := len(w.ids)
	scores := make(map[string]float64, n)

	for i, id := range w.ids {
		dist := w.dijkstra(i, nil, nil, nil)

		reachable := 0
		total := 0.0
		for j, d := range dist {
			if j == i || math.IsInf(d, 1) {
				continue
			}
			reachable++
			total += d
		}

		if reachable == 0 || total == 0 {
			scores[id] = 0
			continue
		}

		c := float64(reachable) / total
		if n > 1 {
			c *= float64(reachable) / float64(n-1)
		}
		scores[id] = c
	}

	return scores, nil
}

// Betweenness returns Brandes' shortest-path betweenness for every vertex
// (unnormalized pair counts; undirected pairs counted once). Endpoints are
// excluded.
// Complexity: O(V · (V + E) log V)
func Betweenness(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	w := snapshot(g, false)
	n := len(w.ids)
	bc := make([]float64, n)

	sigma := make([]float64, n)
	preds := make([][]int, n)
	delta := make([]float64, n)

	for s := 0; s < n; s++ {
		order := make([]int, 0, n)
		w.dijkstra(s, sigma, preds, &order)

		for i := range delta {
			delta[i] = 0
		}
		// Dependency accumulation in reverse settlement order.
		for i := len(order) - 1; i >= 0; i-- {
			v := order[i]
			for _, p := range preds[v] {
				delta[p] += sigma[p] / sigma[v] * (1 + delta[v])
			}
			if v != s {
				bc[v] += delta[v]
			}
		}
	}

	if !g.Directed() {
		for i := range bc {
			bc[i] /= 2
		}
	}

	scores := make(map[string]float64, n)
	for i, id := range w.ids {
		scores[id] = bc[i]
	}

	return scores, nil
}

// distItem is a (vertex index, tentative distance) heap entry.
type distItem struct {
	node int
	dist float64
}

// distPQ is a min-heap of distItem using lazy decrease-key: shorter
// distances push fresh entries and stale ones are skipped on pop.
type distPQ []distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
