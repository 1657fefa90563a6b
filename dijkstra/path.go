package dijkstra

import "golang.org/x/exp/constraints"

// Reconstruct walks predecessor links backward from target and returns the
// path in source-to-target order.
//
// The walk stops at the first node without a predecessor. For a settled
// target that node is the source; for a target that was never reached it is
// the target itself, so the result is the single-node path [target].
//
// prev must be acyclic, which holds for any table produced by a search over
// non-negative weights. A cyclic table (possible only when validation was
// skipped on a graph with negative weights) is cut after len(prev)+1 nodes.
func Reconstruct[N constraints.Ordered](prev map[N]N, target N) []N {
	path := []N{target}
	limit := len(prev) + 1
	for cur, ok := prev[target]; ok && len(path) < limit; cur, ok = prev[cur] {
		path = append(path, cur)
	}

	// Reverse in place: the walk collected target … source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
