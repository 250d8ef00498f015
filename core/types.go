package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an attempt to add an edge with negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies the vertex within its Graph. Metadata stores
// arbitrary key-value data (zone names, centroid coordinates); it is
// shared, not deep-copied, by Clone.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge represents a weighted connection between two vertices.
//
// For directed graphs the pair (From, To) is ordered; for undirected
// graphs Edges() reports each edge once with From < To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; the default is undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory weighted graph.
//
// At most one edge exists per ordered vertex pair; AddEdge on an existing
// pair overwrites the weight. Undirected graphs mirror each edge in both
// adjacency directions internally.
type Graph struct {
	mu       sync.RWMutex
	directed bool

	vertices map[string]*Vertex
	// adj[from][to] = weight; mirrored for undirected graphs.
	adj map[string]map[string]float64
	// in[to][from] = weight; reverse index, only maintained when directed.
	in map[string]map[string]float64
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string]map[string]float64),
		in:       make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was constructed as directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
