package centrality

import "github.com/movegraph/movegraph/core"

// InDegree returns the weighted in-degree of every vertex. For undirected
// graphs this equals the weighted degree.
// Complexity: O(V + E)
func InDegree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		out[id] = g.WeightedInDegree(id)
	}

	return out, nil
}

// OutDegree returns the weighted out-degree of every vertex. For
// undirected graphs this equals the weighted degree.
// Complexity: O(V + E)
func OutDegree(g *core.Graph) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	out := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		out[id] = g.WeightedOutDegree(id)
	}

	return out, nil
}
