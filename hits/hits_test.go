package hits_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movegraph/movegraph/core"
	"github.com/movegraph/movegraph/hits"
)

// sumSquares returns Σ v² over a score map.
func sumSquares(scores map[string]float64) float64 {
	s := 0.0
	for _, v := range scores {
		s += v * v
	}

	return s
}

// TestHITS_Validation covers fail-fast input checks.
func TestHITS_Validation(t *testing.T) {
	_, _, err := hits.HITS(nil, nil)
	assert.ErrorIs(t, err, hits.ErrNilGraph)

	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))

	opts := hits.DefaultOptions()
	opts.Tolerance = 0
	_, _, err = hits.HITS(g, &opts)
	assert.ErrorIs(t, err, hits.ErrBadTolerance)

	opts = hits.DefaultOptions()
	opts.MaxIter = 0
	_, _, err = hits.HITS(g, &opts)
	assert.ErrorIs(t, err, hits.ErrBadMaxIter)
}

// TestHITS_EmptyGraph verifies an empty graph yields empty maps, no error.
func TestHITS_EmptyGraph(t *testing.T) {
	hubs, auths, err := hits.HITS(core.NewGraph(core.WithDirected(true)), nil)
	require.NoError(t, err)
	assert.Empty(t, hubs)
	assert.Empty(t, auths)
}

// TestHITS_L2Normalized verifies both score vectors satisfy Σ score² ≈ 1.
func TestHITS_L2Normalized(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "A", 4))

	hubs, auths, err := hits.HITS(g, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sumSquares(hubs), 1e-6)
	assert.InDelta(t, 1.0, sumSquares(auths), 1e-6)
}

// TestHITS_SymmetricCycle verifies that on a directed 4-cycle with uniform
// weights every vertex gets equal hub and authority scores.
func TestHITS_SymmetricCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 1))

	hubs, auths, err := hits.HITS(g, nil)
	require.NoError(t, err)

	want := 1.0 / math.Sqrt(4)
	for _, id := range []string{"A", "B", "C", "D"} {
		assert.InDelta(t, want, hubs[id], 1e-6, "hub of %s", id)
		assert.InDelta(t, want, auths[id], 1e-6, "authority of %s", id)
	}
}

// TestHITS_HubAuthoritySplit verifies a pure fan-out vertex dominates hubs
// and its targets dominate authorities.
func TestHITS_HubAuthoritySplit(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "X", 1))
	require.NoError(t, g.AddEdge("S", "Y", 1))
	require.NoError(t, g.AddEdge("S", "Z", 1))

	hubs, auths, err := hits.HITS(g, nil)
	require.NoError(t, err)

	assert.Greater(t, hubs["S"], hubs["X"])
	assert.Greater(t, auths["X"], auths["S"])
	assert.InDelta(t, auths["X"], auths["Y"], 1e-9)
	assert.InDelta(t, auths["Y"], auths["Z"], 1e-9)
}

// TestHITS_WeightsBias verifies heavier edges attract proportionally more
// authority.
func TestHITS_WeightsBias(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "Heavy", 10))
	require.NoError(t, g.AddEdge("S", "Light", 1))

	_, auths, err := hits.HITS(g, nil)
	require.NoError(t, err)
	assert.Greater(t, auths["Heavy"], auths["Light"])
}

// TestHITS_NotConvergedStillUsable verifies a tiny iteration cap yields
// ErrNotConverged together with normalized, non-nil score maps.
func TestHITS_NotConvergedStillUsable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("C", "A", 2))
	require.NoError(t, g.AddEdge("A", "C", 7))

	opts := hits.DefaultOptions()
	opts.MaxIter = 1

	hubs, auths, err := hits.HITS(g, &opts)
	assert.ErrorIs(t, err, hits.ErrNotConverged)
	require.NotNil(t, hubs)
	require.NotNil(t, auths)
	assert.InDelta(t, 1.0, sumSquares(hubs), 1e-6)
	assert.InDelta(t, 1.0, sumSquares(auths), 1e-6)
}

// TestHITS_Deterministic verifies identical runs produce identical maps.
func TestHITS_Deterministic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 5))
	require.NoError(t, g.AddEdge("C", "A", 2))

	h1, a1, err := hits.HITS(g, nil)
	require.NoError(t, err)
	h2, a2, err := hits.HITS(g, nil)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, a1, a2)
}
