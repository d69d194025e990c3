// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	methodStar   = "Star"
	minPathNodes = 2
	minCycle     = 3
	minStar      = 2
)

// Path builds a simple path P_n (n ≥ 2): 0–1–…–(n-1).
// Complexity: O(n) nodes + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds an n-node simple cycle C_n (n ≥ 3).
// Complexity: O(n) nodes + O(n) edges.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycle {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycle, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with centre idFn(0) and n-1 leaves (n ≥ 2).
// Complexity: O(n) nodes + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStar {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStar, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		centre := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, centre, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
