package search

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Reconstruct walks prev from goal back to start and returns the path in
// start→goal order with its cost dist[goal].
//
// A goal absent from dist is unreachable: the result is (Path{Cost: +Inf},
// false, nil). The walk is bounded by len(dist) nodes; exceeding it, or
// hitting a node without predecessor other than start, yields
// ErrInternalConsistency.
//
// prev and dist must come from a completed search. After an aborted search
// (ErrExpansionLimit, context cancellation) the goal may carry a tentative
// cost that is not final, and Reconstruct still follows it; use
// Result.Path, which checks Result.Reached, for partial results.
//
// Complexity:
//   - Time O(L), Space O(L) for a path of L nodes.
func Reconstruct[N cmp.Ordered](prev map[N]N, dist map[N]float64, start, goal N) (Path[N], bool, error) {
	cost, ok := dist[goal]
	if !ok {
		return Path[N]{Cost: math.Inf(1)}, false, nil
	}

	nodes := []N{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return Path[N]{}, false, fmt.Errorf("%w: %v has no predecessor and is not the start %v",
				ErrInternalConsistency, cur, start)
		}
		nodes = append(nodes, p)
		if len(nodes) > len(dist) {
			return Path[N]{}, false, fmt.Errorf("%w: walk from %v exceeded %d steps",
				ErrInternalConsistency, goal, len(dist))
		}
		cur = p
	}
	slices.Reverse(nodes)

	return Path[N]{Nodes: nodes, Cost: cost}, true, nil
}

// Path reconstructs the start→goal path of a finished search.
// It reports false when the goal was not reached.
func (r *Result[N]) Path() (Path[N], bool, error) {
	if !r.Reached {
		return Path[N]{Cost: math.Inf(1)}, false, nil
	}

	return Reconstruct(r.Predecessors, r.Distances, r.Start, r.Goal)
}
