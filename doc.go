// Package netroute is a small routing primitive: given a weighted directed
// graph, a source and a target, it returns the least-cost path and its cost.
//
// What is inside?
//
//	core/     - generic Graph[N] adjacency map, node discovery, weight validation
//	frontier/ - node-selection structures: binary min-heap and linear-scan array
//	dijkstra/ - Find / Search, functional options, YAML config, path reconstruction
//
// Quick example:
//
//	g := core.NewGraph[int]()
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(1, 3, 4)
//	g.AddEdge(2, 3, 1)
//
//	path, cost, err := dijkstra.Find(g, 1, 3) // [1 2 3], 2, nil
//
// Swapping the frontier (dijkstra.WithFrontier(frontier.KindArray)) changes
// running time only, never the returned path or cost.
//
// Edge weights must be finite and non-negative. An unreachable target yields
// the path [target] with cost +Inf; unknown nodes and bad weights are errors.
//
//	go get github.com/katalvlaran/netroute
package netroute
