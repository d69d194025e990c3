// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodComplete = "Complete"
	minComplete    = 1
)

// Complete builds K_n (n ≥ 1). In a directed graph both orientations are
// added, each with its own drawn weight.
// Complexity: O(n) nodes + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minComplete, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := addEdge(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(methodComplete, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
