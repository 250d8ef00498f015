// Package core defines the weighted Graph primitive shared by every
// movegraph algorithm package.
//
// A Graph is a set of vertices keyed by opaque string IDs (Uber Movement
// zone IDs in practice) and a set of edges with non-negative float64
// weights (mean travel times or haversine distances). Graphs are either
// directed (temporal networks) or undirected (spatial networks); the mode
// is fixed at construction.
//
// Determinism is a hard requirement: Vertices, Neighbors, and Edges always
// enumerate in lexicographic ID order, so that metric computations and
// clique enumeration are reproducible run to run.
//
// Invariants enforced at mutation time:
//
//   - edge weights are non-negative (ErrNegativeWeight)
//   - self-loops are rejected (ErrSelfLoop)
//   - vertex IDs are non-empty (ErrEmptyVertexID)
//
// A single sync.RWMutex guards the internal maps so graphs can be shared
// read-only across goroutines; the algorithm packages themselves are
// single-threaded by design.
package core
