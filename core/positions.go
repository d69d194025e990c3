// SPDX-License-Identifier: MIT
// File: positions.go
// Role: Per-node coordinates consumed by geometric heuristics.
package core

import (
	"fmt"
	"math"
	"slices"
)

// SetPosition stores coords as the position of id, adding the node if missing.
// The first stored position fixes the dimension for the whole graph.
//
// Implementation:
//   - Stage 1: Validate coords (non-empty, finite).
//   - Stage 2: Under the write lock, check or fix the dimension.
//   - Stage 3: Store a private copy.
//
// Errors:
//   - ErrEmptyPosition if coords is empty.
//   - ErrInvalidCoordinate if any coordinate is NaN or infinite.
//   - ErrDimensionMismatch if len(coords) differs from earlier positions.
//
// Complexity:
//   - Time O(len(coords)), Space O(len(coords)).
func (g *Graph[N]) SetPosition(id N, coords ...float64) error {
	if len(coords) == 0 {
		return fmt.Errorf("%w: node %v", ErrEmptyPosition, id)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: node %v axis %d value=%v", ErrInvalidCoordinate, id, i, c)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.dim != 0 && len(coords) != g.dim {
		return fmt.Errorf("%w: node %v has %d coordinates, graph uses %d",
			ErrDimensionMismatch, id, len(coords), g.dim)
	}
	g.dim = len(coords)
	g.ensureNode(id)
	g.positions[id] = slices.Clone(coords)

	return nil
}

// Position returns a copy of the coordinates of id and whether it has any.
func (g *Graph[N]) Position(id N) ([]float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.positions[id]
	if !ok {
		return nil, false
	}

	return slices.Clone(p), true
}

// Dimension returns the number of coordinates per position, or 0 if no
// position has been stored yet.
func (g *Graph[N]) Dimension() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.dim
}
