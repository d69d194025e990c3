package search

import (
	"cmp"
	"context"

	"github.com/katalvlaran/pathfind/heuristic"
)

// Violation reports a node where a heuristic breaks a guarantee.
//
// For CheckAdmissible, Bound is the true remaining cost to the goal.
// For CheckConsistent, Neighbor is the arc target and Bound is
// weight + h(Neighbor).
type Violation[N cmp.Ordered] struct {
	Node     N
	Neighbor N
	Estimate float64
	Bound    float64
}

// CheckAdmissible compares h(n, goal) with the true cost from n to goal for
// every n in nodes and returns the nodes where the estimate exceeds the cost
// by more than tolerance. Nodes that cannot reach the goal never violate.
// The exact costs come from one Dijkstra query per node, run through Batch.
func CheckAdmissible[N cmp.Ordered](ctx context.Context, g Graph[N], h heuristic.Heuristic[N], goal N, nodes []N, tolerance float64) ([]Violation[N], error) {
	queries := make([]Query[N], len(nodes))
	for i, n := range nodes {
		queries[i] = Query[N]{Start: n, Goal: goal}
	}
	results, err := Batch(ctx, g, queries, 0)
	if err != nil {
		return nil, err
	}

	var out []Violation[N]
	for i, res := range results {
		actual := res.Cost()
		est := h.Estimate(nodes[i], goal)
		if est > actual+tolerance {
			out = append(out, Violation[N]{Node: nodes[i], Estimate: est, Bound: actual})
		}
	}

	return out, nil
}

// CheckConsistent verifies h(u) <= w(u,v) + h(v) for every arc leaving the
// given nodes.
func CheckConsistent[N cmp.Ordered](g Graph[N], h heuristic.Heuristic[N], goal N, nodes []N, tolerance float64) []Violation[N] {
	var out []Violation[N]
	for _, u := range nodes {
		hu := h.Estimate(u, goal)
		for _, arc := range g.Neighbors(u) {
			bound := arc.Weight + h.Estimate(arc.To, goal)
			if hu > bound+tolerance {
				out = append(out, Violation[N]{Node: u, Neighbor: arc.To, Estimate: hu, Bound: bound})
			}
		}
	}

	return out
}
