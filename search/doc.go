// Package search implements single-pair shortest-path search on graphs with
// non-negative edge weights: Dijkstra and A* share one frontier-expansion
// engine and differ only in how frontier entries are prioritised.
//
//	Dijkstra: priority = cost(start→n)
//	A*:       priority = cost(start→n) + h(n, goal)
//
// Algorithm:
//
//   - The frontier is a binary min-heap ordered by (priority, node); equal
//     priorities are broken by node identifier, so runs are reproducible.
//   - Lazy deletion: an improved cost pushes a new entry and never edits an
//     old one. A popped entry whose cost exceeds the recorded best is stale
//     and skipped.
//   - Early exit: the search stops on the first non-stale pop of the goal.
//   - A missing distance means "not reached yet" (infinite).
//
// Complexity:
//
//   - Time:  O((V + E) log E); each relaxation may push one entry.
//   - Space: O(V + E) for distances, predecessors and stale entries.
//
// Results and paths:
//
// Search returns a Result with the distance and predecessor maps plus
// work counters (Stats.Pops is the frontier-pop count used to compare
// algorithms). Reconstruct, or Result.Path, turns the predecessor map into a
// start→goal node list. An unreachable goal is a normal outcome (ok ==
// false, cost +Inf), not an error.
//
// Options:
//
//   - WithHeuristic(h): A* guided by h. With an admissible h the cost equals
//     Dijkstra's; an inadmissible h is accepted and may return a costlier path.
//   - WithMaxExpansions(n), WithMaxCost(c): bound the work.
//   - WithOnPop, WithOnImprove: observation hooks.
//
// Concurrency:
//
// Every call owns its state. Batch runs independent queries over one shared
// graph with errgroup.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrOptionViolation, ErrExpansionLimit, ErrInternalConsistency.
//   - core.ErrInvalidWeight when a Graph implementation yields a negative weight.
//
// Example usage:
//
//	res, err := search.Search[string](g, "A", "C",
//	    search.WithHeuristic(heuristic.Euclidean[string](g, 1)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok, err := res.Path()
package search
