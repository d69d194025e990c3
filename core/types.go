// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph type, functional options and sentinel errors.
//
// Concurrency:
//   - A single sync.RWMutex guards adjacency, positions and counters.
//   - Every read method takes the read lock, so many searches may share one Graph.
package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core operations.
var (
	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrEmptyPosition indicates SetPosition was called without coordinates.
	ErrEmptyPosition = errors.New("core: position has no coordinates")

	// ErrDimensionMismatch indicates a position whose dimension differs from
	// the dimension already fixed by earlier positions.
	ErrDimensionMismatch = errors.New("core: position dimension mismatch")

	// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
	ErrInvalidCoordinate = errors.New("core: invalid coordinate")
)

// Arc is one outgoing connection as seen from a node: the neighbor and the
// cost of moving to it.
type Arc[N cmp.Ordered] struct {
	To     N
	Weight float64
}

// Edge is a stored edge as reported by Graph.Edges.
type Edge[N cmp.Ordered] struct {
	From, To N
	Weight   float64
}

// Graph is a weighted graph over ordered node identifiers with an optional
// coordinate per node.
//
// Edge set semantics: adding the same (from, to, weight) twice stores it once;
// a different weight to the same neighbor is kept as a parallel edge.
// Nodes and edges are never removed.
type Graph[N cmp.Ordered] struct {
	mu sync.RWMutex

	directed bool

	// adjacency[from][to] holds the distinct weights of from→to, ascending.
	// Every neighbor key is itself a key of adjacency.
	adjacency map[N]map[N][]float64

	positions map[N][]float64
	dim       int // 0 until the first SetPosition

	edges int // distinct edges as added (an undirected edge counts once)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected selects directed (true) or undirected (false) edges.
// Undirected is the default.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) {
		c.directed = directed
	}
}

// NewGraph returns an empty graph configured by opts.
func NewGraph[N cmp.Ordered](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		directed:  cfg.directed,
		adjacency: make(map[N]map[N][]float64),
		positions: make(map[N][]float64),
	}
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes      int
	Edges      int
	Positioned int
	Dimension  int
	Directed   bool
}
