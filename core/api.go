// SPDX-License-Identifier: MIT
// File: api.go
// Role: Graph-wide queries.
package core

// Directed reports whether edges are one-way.
func (g *Graph[N]) Directed() bool {
	return g.directed
}

// Stats returns a consistent snapshot of graph-wide counters.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[N]) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Nodes:      len(g.adjacency),
		Edges:      g.edges,
		Positioned: len(g.positions),
		Dimension:  g.dim,
		Directed:   g.directed,
	}
}
