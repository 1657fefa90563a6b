package dijkstra_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
	"github.com/katalvlaran/netroute/frontier"
)

// strategies enumerates every option set that must yield identical results.
var strategies = []struct {
	name string
	opts []dijkstra.Option
}{
	{"heap", []dijkstra.Option{dijkstra.WithFrontier(frontier.KindHeap)}},
	{"array", []dijkstra.Option{dijkstra.WithFrontier(frontier.KindArray)}},
	{"heap-reprocess", []dijkstra.Option{dijkstra.WithFrontier(frontier.KindHeap), dijkstra.WithReprocessStale()}},
	{"array-reprocess", []dijkstra.Option{dijkstra.WithFrontier(frontier.KindArray), dijkstra.WithReprocessStale()}},
}

// buildGraph turns an adjacency literal into a core.Graph.
func buildGraph(adj map[int]map[int]float64) core.Graph[int] {
	g := core.NewGraph[int]()
	for from, out := range adj {
		g.AddNode(from)
		for to, w := range out {
			g.AddEdge(from, to, w)
		}
	}

	return g
}

// buildRandomGraph creates a directed graph with n nodes (0..n-1) and up to m
// extra random edges on top of a chain 0→1→…→n-1. Weights are integers in
// [0, maxW] stored as float64, so sums are exact and costs compare with ==.
// The generator is seeded for reproducibility.
func buildRandomGraph(n, m int, maxW int, seed int64) core.Graph[int] {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i, float64(1+r.Intn(maxW)))
	}
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddEdge(u, v, float64(r.Intn(maxW+1)))
	}

	return g
}

// floydWarshall computes all-pairs distances as an independent reference.
func floydWarshall(g core.Graph[int]) map[int]map[int]float64 {
	nodes := g.Nodes()
	d := make(map[int]map[int]float64, len(nodes))
	for _, i := range nodes {
		d[i] = make(map[int]float64, len(nodes))
		for _, j := range nodes {
			d[i][j] = math.Inf(1)
		}
		d[i][i] = 0
		for _, j := range g.Neighbors(i) {
			if w := g[i][j]; w < d[i][j] {
				d[i][j] = w
			}
		}
	}
	for _, k := range nodes {
		for _, i := range nodes {
			for _, j := range nodes {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// pathCost sums the edge weights along path; ok is false if an edge is missing.
func pathCost(g core.Graph[int], path []int) (float64, bool) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}
