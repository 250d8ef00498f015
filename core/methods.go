package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID when id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id and its adjacency buckets. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.adj[id] = make(map[string]float64)
	g.in[id] = make(map[string]float64)
}

// HasVertex reports whether the graph contains a vertex with the given ID.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex (with metadata) for id, if present.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]

	return v, ok
}

// RemoveVertex deletes the vertex with the given ID along with all
// incident edges. Removing a missing vertex is a no-op.
// Complexity: O(V) worst case (incident-edge cleanup).
func (g *Graph) RemoveVertex(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return
	}

	// Drop edges pointing at id from the forward index.
	for from := range g.in[id] {
		delete(g.adj[from], id)
	}
	// Drop reverse entries for edges leaving id.
	for to := range g.adj[id] {
		delete(g.in[to], id)
	}
	// For undirected graphs the mirror entries live in adj on both sides.
	if !g.directed {
		for to := range g.adj[id] {
			delete(g.adj[to], id)
		}
	}

	delete(g.vertices, id)
	delete(g.adj, id)
	delete(g.in, id)
}

// AddEdge creates (or overwrites) the edge from → to with the given weight.
// Missing endpoint vertices are added automatically.
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is empty
//   - ErrSelfLoop       if from == to
//   - ErrNegativeWeight if weight < 0
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.adj[from][to] = weight
	g.in[to][from] = weight
	if !g.directed {
		g.adj[to][from] = weight
		g.in[from][to] = weight
	}

	return nil
}

// RemoveEdge deletes the edge between from and to. For undirected graphs
// the mirror entry is removed as well. Missing edges are a no-op.
func (g *Graph) RemoveEdge(from, to string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.adj[from], to)
	delete(g.in[to], from)
	if !g.directed {
		delete(g.adj[to], from)
		delete(g.in[from], to)
	}
}

// HasEdge reports whether an edge from → to exists
// (either orientation for undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of the edge from → to and whether it exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adj[from][to]

	return w, ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The sorted order is the stable enumeration surface every algorithm
// package relies on for reproducible output.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Undirected edges count once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	if !g.directed {
		n /= 2
	}

	return n
}

// Edges returns all edges sorted by (From, To). For undirected graphs each
// edge appears once with From < To.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0)
	for from, nbrs := range g.adj {
		for to, w := range nbrs {
			if !g.directed && from > to {
				continue // mirror entry; report each undirected edge once
			}
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// OutNeighbors returns the IDs reachable by one edge leaving id, sorted.
// For undirected graphs this equals Neighbors.
func (g *Graph) OutNeighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adj[id])
}

// InNeighbors returns the IDs with an edge into id, sorted.
// For undirected graphs this equals Neighbors.
func (g *Graph) InNeighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.in[id])
}

// Neighbors returns the union of in- and out-neighbors of id, sorted.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.directed {
		return sortedKeys(g.adj[id])
	}

	seen := make(map[string]struct{}, len(g.adj[id])+len(g.in[id]))
	for to := range g.adj[id] {
		seen[to] = struct{}{}
	}
	for from := range g.in[id] {
		seen[from] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for n := range seen {
		ids = append(ids, n)
	}
	sort.Strings(ids)

	return ids
}

// WeightedOutDegree returns the sum of weights on edges leaving id.
func (g *Graph) WeightedOutDegree(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sumWeights(g.adj[id])
}

// WeightedInDegree returns the sum of weights on edges entering id.
func (g *Graph) WeightedInDegree(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sumWeights(g.in[id])
}

// WeightedDegree returns the sum of weights over all edges incident to id:
// each undirected edge counts once; for directed graphs in- and out-edges
// both contribute. Vertices with no edges have degree 0.
func (g *Graph) WeightedDegree(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.directed {
		return sumWeights(g.adj[id])
	}

	return sumWeights(g.adj[id]) + sumWeights(g.in[id])
}

// TotalWeight returns the sum of all edge weights
// (each undirected edge counted once).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0.0
	for _, nbrs := range g.adj {
		total += sumWeights(nbrs)
	}
	if !g.directed {
		total /= 2
	}

	return total
}

func sortedKeys(m map[string]float64) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func sumWeights(m map[string]float64) float64 {
	s := 0.0
	for _, w := range m {
		s += w
	}

	return s
}
