// Package centrality implements the weighted node-centrality suite used
// to rank zones inside a temporal or spatial traffic network.
//
// Metrics:
//
//   - InDegree / OutDegree - weighted degree sums; on hourly temporal
//     slices these surface raw traffic importers and exporters.
//   - PageRank - damped random-walk importance with weight-proportional
//     transition probabilities and uniform redistribution of dangling
//     mass.
//   - Closeness - inverse mean shortest-path distance (Dijkstra over
//     non-negative weights), with the small-component scaling correction.
//   - Betweenness - Brandes' shortest-path betweenness with a min-heap
//     Dijkstra stage (unnormalized counts).
//
// Every metric returns an explicit map keyed by vertex ID; nothing is
// cached between calls. Min-max normalization is a separate step
// (Normalize, NormalizeAcrossHours) so raw and scaled views of the same
// result stay available to the caller.
//
// PageRank convergence failure is advisory: the best-effort scores are
// returned together with ErrNotConverged, mirroring the hits package.
package centrality
