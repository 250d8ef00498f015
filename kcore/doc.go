// Package kcore implements weighted k-core decomposition.
//
// The classic k-core of a graph is the maximal subgraph in which every
// vertex has degree at least k. The weighted generalization replaces the
// degree count with the sum of incident edge weights, so core numbers are
// real-valued: a vertex's core number is the largest threshold k such that
// it survives inside a subgraph whose vertices all have weighted degree ≥ k.
//
// Algorithm outline (iterative peeling):
//
//  1. Compute the weighted degree of every vertex.
//  2. Repeatedly remove the vertex with minimum weighted degree
//     (ties broken by lexicographically smallest ID).
//  3. The removed vertex's core number is the running threshold: the
//     maximum of the previous threshold and its degree at removal time.
//     The threshold never decreases, even when removal exposes a smaller
//     minimum among the survivors.
//  4. Subtract the removed vertex's incident weights from its neighbors'
//     degrees and continue until the graph is empty.
//
// Directed graphs are handled by folding both orientations into a single
// incident weight per vertex pair (weighted degree = in + out).
//
// Complexity: O((V + E) log V) with the lazy min-heap, O(V + E) space.
//
// References: Batagelj & Zaversnik, "An O(m) Algorithm for Cores
// Decomposition of Networks" (2003); "Generalized Cores" (2002).
package kcore
