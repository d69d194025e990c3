// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c", fixed coordinate ID scheme
)

// GridID returns the node ID Grid uses for row r, column c.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major), each
// node positioned at (r, c). The ID scheme option is ignored. In a directed
// graph both orientations are added with the same weight.
// Complexity: O(R*C) nodes + O(R*C) edges.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.SetPosition(GridID(r, c), float64(r), float64(c)); err != nil {
					return fmt.Errorf("%s: SetPosition(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		link := func(u, v string) error {
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
			}
			if g.Directed() {
				if err := g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, v, u, w, err)
				}
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
