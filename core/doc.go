// SPDX-License-Identifier: MIT

// Package core provides a thread-safe, in-memory weighted graph used as the
// data model for shortest-path search.
//
// A Graph[N] is keyed by any ordered identifier type (strings, integers).
// Ordered identifiers give every query a deterministic order and let search
// break priority ties by identifier.
//
//   - Directed or undirected edges (WithDirected); undirected is the default.
//   - Non-negative, finite float64 weights; anything else is ErrInvalidWeight
//     and leaves the graph untouched.
//   - Set semantics per (from, to, weight); distinct weights between the same
//     endpoints are parallel edges.
//   - Optional n-dimensional position per node (SetPosition / Position),
//     all positions sharing one dimension.
//   - Insert-only: there is no removal API.
//
// Core Methods:
//
//	AddNode(id N)                          // O(1), idempotent
//	AddEdge(a, b N, w float64) error       // O(k) for k parallel weights
//	Neighbors(id N) []Arc[N]               // O(d·log d), sorted, nil for unknown ids
//	SetPosition(id N, coords ...float64)   // O(dim)
//	Position(id N) ([]float64, bool)       // O(dim), copy
//	HasNode, HasEdge, Nodes, NodeCount, EdgeCount, Edges, Dimension, Stats
//
// Concurrency:
//
// One sync.RWMutex guards all state. Readers (Neighbors, Position, ...) take
// the read lock, so any number of searches may run against one graph while
// no writer is active.
//
// Example:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 5)
//	for _, arc := range g.Neighbors("A") {
//	    fmt.Println(arc.To, arc.Weight)
//	}
package core
