// Package hits implements weighted HITS (Hyperlink-Induced Topic Search)
// centrality for directed travel-time networks.
//
// HITS computes two mutually reinforcing scores per vertex: the authority
// score estimates importance from incoming links (traffic "importers"),
// the hub score from outgoing links (traffic "exporters"). On an hourly
// temporal slice, high-hub zones feed many well-connected destinations and
// high-authority zones absorb flow from many well-connected origins.
//
// Algorithm outline (power iteration):
//
//  1. Initialize every hub score to 1/N.
//  2. authority(v) = Σ w(u→v)·hub(u) over in-neighbors u.
//  3. hub(u)       = Σ w(u→v)·authority(v) over out-neighbors v.
//  4. L2-normalize both score vectors.
//  5. Stop when the L1 change of the hub vector drops below the tolerance
//     or the iteration cap is reached.
//
// Convergence failure is advisory, not fatal: the best-effort scores at
// the cap are returned together with ErrNotConverged, so callers can
// errors.Is-check and still use the result.
//
// Complexity: O(MaxIter · (V + E)), O(V) space.
//
// Reference: Kleinberg, "Authoritative sources in a hyperlinked
// environment", JACM 46(5), 1999.
package hits
