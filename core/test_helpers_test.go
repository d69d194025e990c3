// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight2_5 = 2.5
	Weight5   = 5.0
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NLoops          = 50
)

// triangle builds A–B(2), B–C(2), A–C(5).
func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](opts...)
	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight2))
	require.NoError(t, g.AddEdge(NodeB, NodeC, Weight2))
	require.NoError(t, g.AddEdge(NodeA, NodeC, Weight5))

	return g
}

// targets extracts the To field of each arc.
func targets(arcs []core.Arc[string]) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out
}
