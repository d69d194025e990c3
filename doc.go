// Package pathfind is a single-pair shortest-path engine for weighted graphs
// with non-negative edge costs.
//
// The same search loop runs as Dijkstra or, given a distance heuristic, as
// A*. Stale frontier entries are skipped lazily, the search stops as soon as
// the goal is settled, and equal priorities break by node id so every run is
// reproducible.
//
// Packages:
//
//	core/         WeightedGraph: nodes, weighted edges, optional positions
//	heuristic/    Euclidean, Manhattan, Scaled and Zero estimates
//	search/       the engine, path reconstruction, batches and heuristic audits
//	gridgraph/    2D cell grids as graphs
//	builder/      deterministic and seeded random graphs for tests and benchmarks
//	graphfile/    JSON and YAML graph documents, schema-validated
//	store/        graphs persisted in SQLite or MySQL
//	observe/      traced, logged and metered search runs
//	cmd/pathfind  the command-line front end
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 5)
//
//	res, _ := search.Search[string](g, "A", "C")
//	path, ok, _ := res.Path() // [A B C], 4, true
//
// An unreachable goal is not an error: Path reports ok=false and Cost is
// +Inf. A negative edge weight is rejected when it is added.
package pathfind
