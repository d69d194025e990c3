// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns identifiers sorted ascending.
package core

import "slices"

// AddNode inserts id if missing. Adding an existing node is a no-op.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) AddNode(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// ensureNode bootstraps the adjacency bucket for id. Caller holds the write lock.
func (g *Graph[N]) ensureNode(id N) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[N][]float64)
	}
}

// HasNode reports whether id is present.
func (g *Graph[N]) HasNode(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node identifiers in ascending order.
//
// Complexity:
//   - Time O(V·log V), Space O(V).
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]N, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
