package core

// Clone returns a deep copy of the graph structure. Vertex Metadata maps
// are shared between the original and the clone (shallow copy), matching
// the cheap-copy semantics algorithm drivers expect when peeling vertices.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed: g.directed,
		vertices: make(map[string]*Vertex, len(g.vertices)),
		adj:      make(map[string]map[string]float64, len(g.adj)),
		in:       make(map[string]map[string]float64, len(g.in)),
	}
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
	}
	for from, nbrs := range g.adj {
		bucket := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			bucket[to] = w
		}
		c.adj[from] = bucket
	}
	for to, srcs := range g.in {
		bucket := make(map[string]float64, len(srcs))
		for from, w := range srcs {
			bucket[from] = w
		}
		c.in[to] = bucket
	}

	return c
}

// ToUndirected collapses a directed graph into an undirected one.
//
// The weight of the undirected edge {u, v} is the mean of the directed
// weights present: (w(u→v) + w(v→u)) / 2 when both directions exist,
// otherwise the single directed weight unchanged. Calling ToUndirected on
// an undirected graph returns a plain clone.
// Complexity: O(V + E)
func (g *Graph) ToUndirected() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u := NewGraph()
	for id := range g.vertices {
		u.ensureVertex(id)
		u.vertices[id].Metadata = g.vertices[id].Metadata
	}

	if !g.directed {
		for from, nbrs := range g.adj {
			for to, w := range nbrs {
				if from < to {
					u.adj[from][to] = w
					u.adj[to][from] = w
					u.in[from][to] = w
					u.in[to][from] = w
				}
			}
		}

		return u
	}

	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			if from > to {
				continue // handled from the lexicographically smaller side
			}
			mean := w
			if back, ok := g.adj[to][from]; ok {
				mean = (w + back) / 2
			}
			u.adj[from][to] = mean
			u.adj[to][from] = mean
			u.in[from][to] = mean
			u.in[to][from] = mean
		}
	}
	// Edges that only exist in the descending orientation (to < from with
	// no reciprocal) were skipped above; add them now.
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			if from < to {
				continue
			}
			if _, ok := g.adj[to][from]; ok {
				continue // reciprocal pair already averaged
			}
			u.adj[from][to] = w
			u.adj[to][from] = w
			u.in[from][to] = w
			u.in[to][from] = w
		}
	}

	return u
}
