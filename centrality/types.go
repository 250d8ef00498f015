package centrality

import "errors"

// Sentinel errors for centrality computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrBadDamping indicates a PageRank damping factor outside (0, 1).
	ErrBadDamping = errors.New("centrality: damping factor must be in (0, 1)")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("centrality: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("centrality: max iterations must be at least 1")

	// ErrNotConverged indicates PageRank hit the iteration cap before the
	// score change fell below the tolerance. The returned map holds the
	// best estimate at cutoff and remains usable.
	ErrNotConverged = errors.New("centrality: power iteration did not converge")
)

// PageRankOptions configures the PageRank power iteration.
//
// Damping - probability of following an edge instead of teleporting.
// Tolerance - convergence threshold on the L1 change between iterations.
// MaxIter - hard cap on iterations.
type PageRankOptions struct {
	Damping   float64
	Tolerance float64
	MaxIter   int
}

// DefaultPageRankOptions returns the standard configuration:
// Damping 0.85, Tolerance 1e-6, MaxIter 100.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:   0.85,
		Tolerance: 1e-6,
		MaxIter:   100,
	}
}
