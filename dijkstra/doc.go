// Package dijkstra finds the least-cost path between two nodes of a weighted
// directed graph (core.Graph) with non-negative edge weights.
//
// Overview:
//
//   - Find(g, source, target) returns the node sequence from source to target
//     and its total cost.
//   - Search returns the same answer plus the distance and predecessor tables
//     and work counters (extractions, relaxations, stale skips).
//   - The search stops as soon as the target is extracted from the frontier;
//     nodes farther away are never settled.
//
// Frontier strategies:
//
//   - frontier.KindHeap (default): binary min-heap, O((V + E) log V) overall.
//   - frontier.KindArray: unordered slice with a linear-scan minimum.
//     Same results, worse asymptotics; useful as a baseline and on tiny graphs.
//
// Both frontiers order entries by (distance, node) and neighbors are relaxed
// in sorted order, so the two strategies return identical paths, not merely
// identical costs.
//
// Outcomes:
//
//   - source == target: path [source], cost 0.
//   - target unreachable: path [target], cost +Inf, Result.Reached == false.
//     This is a regular result, not an error.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrNilGraph:         the graph is nil.
//   - ErrUnknownNode:      source or target is not known to the graph.
//     A node is known if it is a key or appears as some key's neighbor.
//   - ErrInvalidWeight:    a weight is negative, NaN or infinite (O(E) pre-scan).
//   - ErrIterationLimit:   WithMaxIterations cap hit; the partial Result is returned too.
//   - ErrBadMaxIterations: returned by ParseConfig, or panicked by WithMaxIterations,
//     for a negative cap.
//
// API reference:
//
//	func Find[N constraints.Ordered](
//	    g core.Graph[N], source, target N, opts ...Option,
//	) (path []N, cost float64, err error)
//
//	func Search[N constraints.Ordered](
//	    g core.Graph[N], source, target N, opts ...Option,
//	) (*Result[N], error)
//
//	  - opts: zero or more functional options:
//	      • WithFrontier(frontier.Kind):   heap (default) or array.
//	      • WithMaxIterations(int):        cap on extractions, 0 = none.
//	      • WithReprocessStale():          relax stale entries instead of skipping them.
//	      • WithoutWeightValidation():     skip the weight pre-scan.
//	      • WithLogger(*slog.Logger):      debug traces of the search.
//
// Options may also be loaded from YAML with ParseConfig and Config.Options.
//
// Thread safety:
//
//   - Every call allocates its own tables and frontier; there is no package state.
//   - Concurrent calls on the same graph are safe as long as nobody mutates it.
package dijkstra
