package kclique

import (
	"errors"
	"sort"

	"github.com/movegraph/movegraph/core"
)

// Sentinel errors for clique percolation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("kclique: graph is nil")

	// ErrBadCliqueSize indicates a clique size parameter below 2.
	ErrBadCliqueSize = errors.New("kclique: clique size must be at least 2")

	// ErrBadThreshold indicates a negative similarity threshold.
	ErrBadThreshold = errors.New("kclique: threshold must be non-negative")
)

// Community is a sorted set of member vertex IDs.
type Community []string

// Communities computes the weighted clique-percolation cover of g.
//
// Only edges with weight ≥ threshold participate; directed graphs are
// collapsed to undirected (reciprocal weights averaged) before filtering.
// Cliques need at least k vertices and merge when sharing ≥ k−1 members.
// Vertices left uncovered form singleton communities, so a threshold that
// excludes every edge returns one singleton per vertex.
//
// The returned communities are sorted by size descending, then by smallest
// member ascending; members within a community are sorted. The whole
// computation is deterministic.
func Communities(g *core.Graph, threshold float64, k int) ([]Community, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 2 {
		return nil, ErrBadCliqueSize
	}
	if threshold < 0 {
		return nil, ErrBadThreshold
	}

	if g.Directed() {
		g = g.ToUndirected()
	}

	vertices := g.Vertices()

	// Filtered adjacency over qualifying edges only.
	adj := make(map[string]map[string]struct{}, len(vertices))
	for _, id := range vertices {
		adj[id] = make(map[string]struct{})
	}
	for _, e := range g.Edges() {
		if e.Weight < threshold {
			continue
		}
		adj[e.From][e.To] = struct{}{}
		adj[e.To][e.From] = struct{}{}
	}

	cliques := maximalCliques(vertices, adj, k)

	// Percolate: union cliques that overlap in at least k-1 vertices.
	// Disjoint-set with path compression over clique indices.
	parent := make([]int, len(cliques))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}

		return i
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[ri] = rj
		}
	}

	for i := 0; i < len(cliques); i++ {
		for j := i + 1; j < len(cliques); j++ {
			if overlap(cliques[i], cliques[j]) >= k-1 {
				union(i, j)
			}
		}
	}

	// Collect members per percolation component.
	members := make(map[int]map[string]struct{})
	covered := make(map[string]struct{})
	for i, clique := range cliques {
		root := find(i)
		if members[root] == nil {
			members[root] = make(map[string]struct{})
		}
		for _, id := range clique {
			members[root][id] = struct{}{}
			covered[id] = struct{}{}
		}
	}

	var communities []Community
	for _, set := range members {
		c := make(Community, 0, len(set))
		for id := range set {
			c = append(c, id)
		}
		sort.Strings(c)
		communities = append(communities, c)
	}

	// Uncovered vertices become singleton communities.
	for _, id := range vertices {
		if _, ok := covered[id]; !ok {
			communities = append(communities, Community{id})
		}
	}

	sort.Slice(communities, func(i, j int) bool {
		if len(communities[i]) != len(communities[j]) {
			return len(communities[i]) > len(communities[j])
		}

		return communities[i][0] < communities[j][0]
	})

	return communities, nil
}

// maximalCliques enumerates maximal cliques of size ≥ minSize using
// Bron–Kerbosch with pivoting. Each returned clique is sorted; the
// enumeration order is fixed by lexicographic vertex ID.
func maximalCliques(vertices []string, adj map[string]map[string]struct{}, minSize int) [][]string {
	var out [][]string

	p := make(map[string]struct{}, len(vertices))
	for _, id := range vertices {
		p[id] = struct{}{}
	}
	x := make(map[string]struct{})

	bronKerbosch(nil, p, x, adj, minSize, &out)

	return out
}

func bronKerbosch(r []string, p, x map[string]struct{}, adj map[string]map[string]struct{}, minSize int, out *[][]string) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) >= minSize {
			clique := append([]string(nil), r...)
			sort.Strings(clique)
			*out = append(*out, clique)
		}

		return
	}

	pivot := choosePivot(p, x, adj)

	// Candidates: P \ N(pivot), iterated in sorted order for determinism.
	var candidates []string
	for id := range p {
		if _, ok := adj[pivot][id]; !ok {
			candidates = append(candidates, id)
		}
	}
	sort.Strings(candidates)

	for _, v := range candidates {
		nv := adj[v]

		pNext := make(map[string]struct{})
		for id := range p {
			if _, ok := nv[id]; ok {
				pNext[id] = struct{}{}
			}
		}
		xNext := make(map[string]struct{})
		for id := range x {
			if _, ok := nv[id]; ok {
				xNext[id] = struct{}{}
			}
		}

		bronKerbosch(append(r, v), pNext, xNext, adj, minSize, out)

		delete(p, v)
		x[v] = struct{}{}
	}
}

// choosePivot picks the vertex of P ∪ X with the most neighbors in P,
// breaking ties by smallest ID.
func choosePivot(p, x map[string]struct{}, adj map[string]map[string]struct{}) string {
	best := ""
	bestCount := -1

	consider := func(id string) {
		count := 0
		for n := range adj[id] {
			if _, ok := p[n]; ok {
				count++
			}
		}
		if count > bestCount || (count == bestCount && id < best) {
			best = id
			bestCount = count
		}
	}

	ids := make([]string, 0, len(p)+len(x))
	for id := range p {
		ids = append(ids, id)
	}
	for id := range x {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		consider(id)
	}

	return best
}

// overlap counts the shared members of two sorted cliques.
func overlap(a, b []string) int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}
