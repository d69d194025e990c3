// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomGeometric = "RandomGeometric"
	minRandomVertices     = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse builds an Erdős–Rényi-like graph: every unordered pair (every
// ordered pair when directed) is connected with probability p. Self-loops
// are never generated. Requires an RNG unless p is 0 or 1.
// Deterministic for a fixed seed. Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addNodes(g, cfg, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if !draw(cfg, p) {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// draw reports whether an edge with probability p is taken.
func draw(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}

// RandomGeometric scatters n nodes uniformly in the unit square, stores the
// coordinates as positions, and connects every pair closer than radius.
// An edge costs the Euclidean distance plus a surcharge drawn from the
// weight function, so straight-line distance never overestimates it.
// Requires an RNG. Complexity: O(n²).
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minRandomVertices, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%v: %w", methodRandomGeometric, radius, ErrInvalidRadius)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		pts := make([][2]float64, n)
		for i := range pts {
			pts[i] = [2]float64{cfg.rng.Float64(), cfg.rng.Float64()}
			if err := g.SetPosition(cfg.idFn(i), pts[i][0], pts[i][1]); err != nil {
				return fmt.Errorf("%s: SetPosition(%s): %w", methodRandomGeometric, cfg.idFn(i), err)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
				if d >= radius {
					continue
				}
				w := d + cfg.weightFn(cfg.rng)
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomGeometric, u, v, w, err)
				}
				if g.Directed() {
					if err := g.AddEdge(v, u, w); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomGeometric, v, u, w, err)
					}
				}
			}
		}

		return nil
	}
}
