// SPDX-License-Identifier: MIT

// Package builder assembles deterministic test and benchmark graphs for
// path search.
//
// A Constructor mutates a *core.Graph[string]; BuildGraph creates the graph
// from core options and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(false)},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.Grid(20, 20),
//	)
//
// Topologies:
//
//   - Path(n), Cycle(n), Star(n), Complete(n)
//   - Grid(rows, cols): IDs "r,c", positioned at (r, c)
//   - RandomSparse(n, p): Erdős–Rényi-like, needs WithSeed/WithRand for 0<p<1
//   - RandomGeometric(n, radius): positioned nodes in the unit square whose
//     edge costs are never below straight-line distance
//
// Options:
//
//   - WithIDScheme(fn): node naming (DefaultIDFn, SymbolIDFn, ExcelColumnIDFn, SymbolNumberIDFn)
//   - WithSeed(seed) / WithRand(r): RNG for stochastic constructors
//   - WithWeightFn(fn): edge weights (DefaultWeightFn, ConstantWeightFn, UniformWeightFn)
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrInvalidRadius,
//     ErrNeedRandSource, ErrConstructFailed; weight errors from core are wrapped.
package builder
