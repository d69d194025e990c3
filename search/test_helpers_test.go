// Package search_test contains shared fixtures for search tests.
package search_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/builder"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/gridgraph"
	"github.com/stretchr/testify/require"
)

const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
	NodeY = "Y"
)

const costDelta = 1e-9

// triangle builds A–B(2), B–C(2), A–C(5).
func triangle(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeB, 2))
	require.NoError(t, g.AddEdge(NodeB, NodeC, 2))
	require.NoError(t, g.AddEdge(NodeA, NodeC, 5))

	return g
}

// sampleNetwork is the lettered 5×4 network: 20 positioned nodes A..T with
// horizontal, vertical and diagonal shortcut roads.
func sampleNetwork(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for i, id := range "ABCDEFGHIJKLMNOPQRST" {
		require.NoError(t, g.SetPosition(string(id), float64(i%5), float64(i/5)))
	}
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1.2}, {"B", "C", 1.5}, {"C", "D", 1.3}, {"D", "E", 1.8},
		{"F", "G", 1.4}, {"G", "H", 1.1}, {"H", "I", 1.6}, {"I", "J", 1.3},
		{"K", "L", 1.3}, {"L", "M", 1.5}, {"M", "N", 1.4}, {"N", "O", 1.7},
		{"P", "Q", 1.6}, {"Q", "R", 1.2}, {"R", "S", 1.5}, {"S", "T", 1.4},
		{"A", "F", 1.5}, {"F", "K", 1.4}, {"K", "P", 1.6},
		{"B", "G", 1.3}, {"G", "L", 1.7}, {"L", "Q", 1.3},
		{"C", "H", 1.6}, {"H", "M", 1.2}, {"M", "R", 1.5},
		{"D", "I", 1.4}, {"I", "N", 1.5}, {"N", "S", 1.3},
		{"E", "J", 1.7}, {"J", "O", 1.6}, {"O", "T", 1.4},
		{"A", "G", 2.0}, {"B", "H", 1.8}, {"C", "I", 2.1},
		{"F", "L", 1.9}, {"G", "M", 2.0}, {"H", "N", 1.7},
		{"K", "Q", 2.2}, {"L", "R", 1.8}, {"M", "S", 2.0},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// openGrid returns an obstacle-free w×h Conn4 grid graph.
func openGrid(t testing.TB, w, h int) *core.Graph[string] {
	t.Helper()
	gg, err := gridgraph.FromObstacles(w, h, nil, gridgraph.Conn4)
	require.NoError(t, err)
	g, err := gg.ToCoreGraph()
	require.NoError(t, err)

	return g
}

// geometric returns a seeded random geometric graph whose edge costs are
// never below straight-line distance.
func geometric(t testing.TB, seed int64, n int) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithIDScheme(builder.SymbolNumberIDFn("n")),
			builder.WithWeightFn(builder.UniformWeightFn(0, 0.5)),
		},
		builder.RandomGeometric(n, 0.3))
	require.NoError(t, err)

	return g
}
