package core

import (
	"fmt"
	"math"
)

// Validate scans every edge of g and fails on the first weight that is
// negative, NaN or infinite. Edges are visited in sorted (from, to) order so
// the reported edge is deterministic.
//
// Returns:
//   - nil if every weight is finite and ≥ 0.
//   - ErrInvalidWeight wrapped with the offending edge otherwise.
//
// Complexity:
//   - Time O(E log E) (sorted scan), Space O(V).
func (g Graph[N]) Validate() error {
	var w float64
	for _, from := range g.Nodes() {
		for _, to := range g.Neighbors(from) {
			w = g[from][to]
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrInvalidWeight, from, to, w)
			}
		}
	}

	return nil
}
