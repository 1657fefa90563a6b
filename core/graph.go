// File: graph.go
// Role: node and edge insertion, node discovery and deterministic enumeration.
//
// Determinism:
//   - Nodes() and Neighbors() return identifiers sorted ascending.
package core

import (
	"sort"
)

// AddNode registers n as a key of g (idempotent). A node added this way has no
// outgoing edges until AddEdge is called with it as the source.
func (g Graph[N]) AddNode(n N) {
	if _, ok := g[n]; !ok {
		g[n] = make(map[N]float64)
	}
}

// AddEdge sets the weight of the directed edge from→to, replacing any previous
// weight. Both endpoints become known; only from becomes a key.
//
// The weight is stored as given; use Validate to reject bad weights.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g Graph[N]) AddEdge(from, to N, weight float64) {
	// 1) Make sure the source bucket exists.
	g.AddNode(from)

	// 2) Overwrite the edge weight.
	g[from][to] = weight
}

// HasNode reports whether n is known to g: either a key, or the target of
// at least one edge.
//
// Complexity:
//   - Time O(1) when n is a key, O(V + E) otherwise.
func (g Graph[N]) HasNode(n N) bool {
	if _, ok := g[n]; ok {
		return true
	}
	for _, adj := range g {
		if _, ok := adj[n]; ok {
			return true
		}
	}

	return false
}

// Nodes returns every node known to g (keys and neighbor-only nodes), sorted
// ascending and without duplicates.
//
// Complexity:
//   - Time O((V + E) + V log V), Space O(V).
func (g Graph[N]) Nodes() []N {
	// 1) Collect keys and neighbors into a set.
	seen := make(map[N]struct{}, len(g))
	for from, adj := range g {
		seen[from] = struct{}{}
		for to := range adj {
			seen[to] = struct{}{}
		}
	}

	// 2) Flatten and sort for a stable enumeration.
	nodes := make([]N, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return nodes
}

// Neighbors returns the targets of all edges leaving n, sorted ascending.
// A node without outgoing edges (or unknown to g) yields an empty slice.
func (g Graph[N]) Neighbors(n N) []N {
	adj := g[n]
	out := make([]N, 0, len(adj))
	for to := range adj {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Weight returns the weight of from→to and whether that edge exists.
func (g Graph[N]) Weight(from, to N) (float64, bool) {
	w, ok := g[from][to]

	return w, ok
}

// EdgeCount returns the number of directed edges stored in g.
func (g Graph[N]) EdgeCount() int {
	var n int
	for _, adj := range g {
		n += len(adj)
	}

	return n
}
