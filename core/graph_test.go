package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/core"
)

// buildOpenGraph returns a graph where node 4 is only ever a neighbor.
//
//	1 → 2 (1.5), 1 → 3 (2), 2 → 4 (1), 3 (no edges)
func buildOpenGraph() core.Graph[int] {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2, 1.5)
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 4, 1)
	g.AddNode(3)

	return g
}

func TestGraph_AddEdgeAndWeight(t *testing.T) {
	g := buildOpenGraph()

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 1.5, w)

	_, ok = g.Weight(2, 1)
	assert.False(t, ok, "edges are directed")

	// Re-adding replaces the weight instead of duplicating the edge.
	g.AddEdge(1, 2, 7)
	w, _ = g.Weight(1, 2)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := buildOpenGraph()
	g.AddNode(1)

	// AddNode must not wipe existing adjacency.
	assert.Equal(t, []int{2, 3}, g.Neighbors(1))
}

func TestGraph_NodesIncludesNeighborOnly(t *testing.T) {
	g := buildOpenGraph()

	assert.Equal(t, []int{1, 2, 3, 4}, g.Nodes())
	assert.True(t, g.HasNode(4), "neighbor-only node is known")
	assert.False(t, g.HasNode(5))
	assert.Empty(t, g.Neighbors(4))
}

func TestGraph_NeighborsSorted(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "D", 1)
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)

	assert.Equal(t, []string{"B", "C", "D"}, g.Neighbors("A"))
}

func TestGraph_EmptyGraph(t *testing.T) {
	g := core.NewGraph[int]()

	assert.Empty(t, g.Nodes())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasNode(0))
	require.NoError(t, g.Validate())
}

func TestGraph_Validate(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		ok     bool
	}{
		{"zero", 0, true},
		{"positive", 3.25, true},
		{"negative", -1, false},
		{"nan", math.NaN(), false},
		{"posInf", math.Inf(1), false},
		{"negInf", math.Inf(-1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildOpenGraph()
			g.AddEdge(3, 4, tc.weight)

			err := g.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrInvalidWeight))
			assert.Contains(t, err.Error(), "3→4")
		})
	}
}
