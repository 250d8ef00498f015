// Package community layers partition drivers on top of the kcore and
// kclique primitives, producing a single integer label per vertex for
// map coloring.
//
// Drivers:
//
//   - KCoreLevels - repeatedly extracts the main (maximum) weighted
//     k-core, labels it with the current level, removes it, and continues
//     on the remainder. Level 0 is the densest shell.
//   - CliquePercolationLabels - repeatedly runs weighted clique
//     percolation with the geometric mean of the remaining edge weights
//     as the similarity threshold, labeling and removing each community
//     found; leftovers share a final label.
//   - Modularity - scores a labeling on an undirected weighted graph with
//     the standard Newman modularity.
//
// Unlike the overlapping covers of package kclique, these drivers return
// strict partitions: every vertex gets exactly one label.
package community
