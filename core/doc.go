// Package core provides the weighted directed Graph used by netroute's
// shortest-path search.
//
// A Graph is a plain adjacency map, g[from][to] = weight, parameterised by an
// ordered node identifier type (ints, strings, …):
//
//   - Open graphs: a node that only appears as a neighbor is still known
//     (HasNode, Nodes) but has no outgoing edges.
//   - Deterministic iteration: Nodes() and Neighbors() return sorted results,
//     so algorithms built on them are reproducible run to run.
//   - Validate() rejects negative, NaN and infinite weights with ErrInvalidWeight.
//
// Why a map and not a struct with locks?
//
//   - Literal graphs are easy to write in tests and callers' code.
//   - Searches only read the graph, so concurrent queries need no locking.
//     Mutating a Graph while it is being searched is a data race; synchronize
//     externally if you must.
//
// Complexity:
//
//	– AddNode / AddEdge / Weight: O(1) amortized.
//	– Nodes:                      O((V + E) + V log V).
//	– Neighbors(n):               O(d log d), d = out-degree of n.
//	– Validate:                   O(E log E).
package core
