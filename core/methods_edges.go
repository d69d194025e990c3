// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - Neighbors() returns arcs sorted by (To, Weight) ascending.
package core

import (
	"fmt"
	"math"
	"slices"
)

// AddEdge connects a to b with cost w. Both endpoints are added if missing.
// In an undirected graph the edge is also recorded on b.
//
// Implementation:
//   - Stage 1: Validate w before touching any state.
//   - Stage 2: Under the write lock, bootstrap both endpoints.
//   - Stage 3: Insert w into the sorted weight set of a→b (and b→a when undirected).
//
// Errors:
//   - ErrInvalidWeight if w is negative, NaN or infinite. The graph is unchanged.
//
// Complexity:
//   - Time O(k) where k is the number of parallel weights between a and b, Space O(1).
func (g *Graph[N]) AddEdge(a, b N, w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: edge %v→%v weight=%v", ErrInvalidWeight, a, b, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(a)
	g.ensureNode(b)

	if !g.insertWeight(a, b, w) {
		return nil // already present
	}
	if !g.directed && a != b {
		g.insertWeight(b, a, w)
	}
	g.edges++

	return nil
}

// insertWeight adds w to adjacency[from][to] keeping the slice sorted.
// It reports false if w was already there. Caller holds the write lock.
func (g *Graph[N]) insertWeight(from, to N, w float64) bool {
	ws := g.adjacency[from][to]
	i, found := slices.BinarySearch(ws, w)
	if found {
		return false
	}
	g.adjacency[from][to] = slices.Insert(ws, i, w)

	return true
}

// HasEdge reports whether at least one edge a→b exists.
func (g *Graph[N]) HasEdge(a, b N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Neighbors returns every arc leaving id, one per stored weight.
// Unknown ids yield an empty result.
//
// Returns:
//   - a freshly allocated slice; callers may keep or mutate it.
//
// Complexity:
//   - Time O(d·log d) for out-degree d, Space O(d).
func (g *Graph[N]) Neighbors(id N) []Arc[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adjacency[id]
	if len(out) == 0 {
		return nil
	}

	targets := make([]N, 0, len(out))
	n := 0
	for to, ws := range out {
		targets = append(targets, to)
		n += len(ws)
	}
	slices.Sort(targets)

	arcs := make([]Arc[N], 0, n)
	for _, to := range targets {
		for _, w := range out[to] {
			arcs = append(arcs, Arc[N]{To: to, Weight: w})
		}
	}

	return arcs
}

// EdgeCount returns the number of distinct edges added.
// An undirected edge counts once.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges lists every stored edge as (from, arc) pairs in deterministic order.
// For undirected graphs each edge is reported once, from its smaller endpoint.
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	froms := make([]N, 0, len(g.adjacency))
	for id := range g.adjacency {
		froms = append(froms, id)
	}
	slices.Sort(froms)

	edges := make([]Edge[N], 0, g.edges)
	for _, from := range froms {
		tos := make([]N, 0, len(g.adjacency[from]))
		for to := range g.adjacency[from] {
			if !g.directed && to < from {
				continue
			}
			tos = append(tos, to)
		}
		slices.Sort(tos)
		for _, to := range tos {
			for _, w := range g.adjacency[from][to] {
				edges = append(edges, Edge[N]{From: from, To: to, Weight: w})
			}
		}
	}

	return edges
}
