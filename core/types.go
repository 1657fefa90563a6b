// File: types.go
// Role: Graph type, constructor and sentinel errors.

package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates an edge whose weight is negative, NaN or infinite.
	// Shortest-path search is only defined for finite, non-negative weights.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Graph is a weighted directed graph stored as an adjacency map:
//
//	g[from][to] = weight
//
// A node referenced only as a neighbor need not be a key ("open" graph); such
// a node is known to the graph but has no outgoing edges.
//
// Node identifiers must be ordered so that every enumeration (Nodes, Neighbors)
// is deterministic.
//
// Graph is a plain map and carries no locks: concurrent mutation must be
// synchronized by the caller. Concurrent read-only use is safe.
type Graph[N constraints.Ordered] map[N]map[N]float64

// NewGraph returns an empty Graph ready for AddNode / AddEdge.
func NewGraph[N constraints.Ordered]() Graph[N] {
	return make(Graph[N])
}
