package hits

import "errors"

// Sentinel errors returned by HITS.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("hits: graph is nil")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("hits: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("hits: max iterations must be at least 1")

	// ErrNotConverged indicates the power iteration hit the iteration cap
	// before the score change fell below the tolerance. The returned maps
	// hold the best estimate at cutoff and remain usable.
	ErrNotConverged = errors.New("hits: power iteration did not converge")
)

// Options configures the HITS power iteration.
//
// Tolerance - convergence threshold on the L1 change of the hub vector
// between iterations. MaxIter - hard cap on iterations; reaching it yields
// ErrNotConverged alongside the best-effort result.
type Options struct {
	Tolerance float64
	MaxIter   int
}

// DefaultOptions returns the standard configuration:
// Tolerance 1e-8, MaxIter 200.
func DefaultOptions() Options {
	return Options{
		Tolerance: 1e-8,
		MaxIter:   200,
	}
}
