// Package movegraph analyzes urban traffic flow from Uber Movement exports.
//
// It turns a city's hourly travel-time records into a family of weighted
// graphs and measures where traffic concentrates:
//
//   - core/       - the shared weighted graph primitive (deterministic,
//     non-negative float64 weights, directed or undirected)
//   - movement/   - dataset ingest: travel-time CSV → 24 hourly temporal
//     networks; zone GeoJSON → spatial adjacency network
//   - hits/       - weighted HITS hub/authority centrality
//   - kcore/      - weighted k-core decomposition
//   - kclique/    - weighted clique-percolation communities
//   - ktruss/     - weighted k-truss subgraphs
//   - centrality/ - degree, PageRank, closeness, betweenness + normalization
//   - community/  - partition drivers and modularity scoring
//   - gen/        - deterministic synthetic graphs for tests and benchmarks
//   - export/     - CSV/JSON result files for downstream plotting
//
// A typical run builds the temporal networks, picks an hour slice, computes
// a metric, and writes the result:
//
//	recs, _ := movement.LoadTravelTimes(f)
//	nets, _ := movement.TemporalNetworks(recs)
//	hubs, auths, _ := hits.HITS(nets[8], nil)
//	_ = export.HubAuthorityCSV(out, hubs, auths)
//
// The cmd/movegraph CLI wires these steps together for whole datasets.
// All computations are single-threaded, deterministic, and sized for
// city-scale graphs (hundreds to low thousands of zones).
package movegraph
