// Package observe instruments path searches.
//
// A Runner wraps search.SearchContext and, for every call:
//
//   - assigns a run ID (UUID),
//   - opens an OpenTelemetry span "pathfind.search" carrying the query and
//     the work counters,
//   - records Prometheus metrics (see Metrics),
//   - writes one structured slog record.
//
// The search and core packages stay free of these concerns; everything here
// is driven by the Result and error that search returns.
//
//	reg := prometheus.NewRegistry()
//	r := observe.NewRunner(
//	    observe.WithLogger(logger),
//	    observe.WithMetrics(observe.NewMetrics(reg)),
//	)
//	rep, err := observe.Run(ctx, r, g, "New York", "Los Angeles",
//	    search.WithHeuristic(heuristic.Euclidean[string](g, 0.15)))
package observe
