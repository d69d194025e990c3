package search_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Basic scenarios
// ------------------------------------------------------------------------

func TestSearch_TriangleTakesCheaperDetour(t *testing.T) {
	g := triangle(t)

	for _, opts := range [][]search.Option{
		nil,
		{search.WithHeuristic(heuristic.Zero[string]())},
	} {
		res, err := search.Search[string](g, NodeA, NodeC, opts...)
		require.NoError(t, err)

		path, ok, err := res.Path()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{NodeA, NodeB, NodeC}, path.Nodes)
		require.Equal(t, 4.0, path.Cost)
		require.Equal(t, 4.0, res.Cost())
	}
}

func TestSearch_SingleEdge(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeB, 5))

	res, err := search.Search[string](g, NodeA, NodeB)
	require.NoError(t, err)
	path, ok, err := res.Path()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, search.Path[string]{Nodes: []string{NodeA, NodeB}, Cost: 5}, path)
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g := triangle(t)
	for _, id := range []string{NodeA, NodeX} { // NodeX is not in the graph
		res, err := search.Search[string](g, id, id)
		require.NoError(t, err)
		require.True(t, res.Reached)
		require.Equal(t, 1, res.Stats.Pops)

		path, ok, err := res.Path()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{id}, path.Nodes)
		require.Zero(t, path.Cost)
	}
}

func TestSearch_UnreachableGoalIsNotAnError(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge(NodeX, NodeY, 1)) // second component

	res, err := search.Search[string](g, NodeA, NodeY)
	require.NoError(t, err)
	require.False(t, res.Reached)
	require.NotContains(t, res.Distances, NodeY)
	require.True(t, math.IsInf(res.Cost(), 1))
	require.Len(t, res.Distances, 3, "whole component of A is explored")

	path, ok, err := res.Path()
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, path.Nodes)
	require.True(t, math.IsInf(path.Cost, 1))
}

func TestSearch_UnknownStartIsIsolated(t *testing.T) {
	g := triangle(t)

	res, err := search.Search[string](g, NodeX, NodeA)
	require.NoError(t, err)
	require.False(t, res.Reached)
	require.Equal(t, map[string]float64{NodeX: 0}, res.Distances)
	require.Empty(t, res.Predecessors)
	require.Equal(t, 1, res.Stats.Pops)
}

func TestSearch_Directed(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, g.AddEdge(NodeA, NodeB, 1))

	res, err := search.Search[string](g, NodeB, NodeA)
	require.NoError(t, err)
	require.False(t, res.Reached)

	res, err = search.Search[string](g, NodeA, NodeB)
	require.NoError(t, err)
	require.True(t, res.Reached)
}

func TestSearch_IntegerNodes(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 3))

	res, err := search.Search[int](g, 1, 3)
	require.NoError(t, err)
	path, _, err := res.Path()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, path.Nodes)
}

func TestSearch_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeB, 0))
	require.NoError(t, g.AddEdge(NodeB, NodeC, 0))

	res, err := search.Search[string](g, NodeA, NodeC)
	require.NoError(t, err)
	require.Zero(t, res.Cost())
}

// ------------------------------------------------------------------------
// 2. Engine mechanics: ties, stale entries, counters
// ------------------------------------------------------------------------

func TestSearch_TieBreakByNodeID(t *testing.T) {
	// Two equal-cost routes A→B→D and A→C→D; B sorts before C.
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeC, 1))
	require.NoError(t, g.AddEdge(NodeA, NodeB, 1))
	require.NoError(t, g.AddEdge(NodeC, NodeD, 1))
	require.NoError(t, g.AddEdge(NodeB, NodeD, 1))

	var order []string
	res, err := search.Search[string](g, NodeA, NodeD,
		search.WithOnPop(func(n string, _ float64, _ bool) { order = append(order, n) }))
	require.NoError(t, err)

	require.Equal(t, []string{NodeA, NodeB, NodeC, NodeD}, order)
	path, _, err := res.Path()
	require.NoError(t, err)
	require.Equal(t, []string{NodeA, NodeB, NodeD}, path.Nodes)
}

func TestSearch_StaleEntriesAreSkipped(t *testing.T) {
	// B is first pushed at 5 via A, then improved to 2 via C.
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeB, 5))
	require.NoError(t, g.AddEdge(NodeA, NodeC, 1))
	require.NoError(t, g.AddEdge(NodeC, NodeB, 1))

	var stale []string
	res, err := search.Search[string](g, NodeA, NodeX,
		search.WithOnPop(func(n string, _ float64, s bool) {
			if s {
				stale = append(stale, n)
			}
		}))
	require.NoError(t, err)
	require.False(t, res.Reached)

	require.Equal(t, []string{NodeB}, stale)
	require.Equal(t, search.Stats{
		Pops:        4,
		Expanded:    3,
		StaleSkips:  1,
		Pushes:      4,
		Relaxations: 6,
	}, res.Stats)
	require.Equal(t, 2.0, res.Distances[NodeB])
	require.Equal(t, NodeC, res.Predecessors[NodeB])
}

func TestSearch_PopHookMatchesStats(t *testing.T) {
	g := sampleNetwork(t)
	var pops, stale int
	res, err := search.Search[string](g, "A", "T",
		search.WithOnPop(func(_ string, _ float64, s bool) {
			pops++
			if s {
				stale++
			}
		}))
	require.NoError(t, err)
	require.Equal(t, res.Stats.Pops, pops)
	require.Equal(t, res.Stats.StaleSkips, stale)
	require.Equal(t, res.Stats.Pops, res.Stats.Expanded+res.Stats.StaleSkips+1, "goal pop is not an expansion")
}

func TestSearch_BestDistanceOnlyDecreases(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := geometric(t, seed, 60)
		last := map[string]float64{}
		res, err := search.Search[string](g, "n0", "n59",
			search.WithOnImprove(func(n, _ string, old float64, known bool, next float64) {
				if known {
					require.Less(t, next, old, "node %s", n)
					require.Equal(t, last[n], old)
				} else {
					require.True(t, math.IsInf(old, 1))
				}
				last[n] = next
			}))
		require.NoError(t, err)
		for n, d := range res.Distances {
			if n == "n0" {
				continue
			}
			require.Equal(t, last[n], d, "final distance is the last improvement")
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	g := sampleNetwork(t)
	h := heuristic.Euclidean[string](g, 1)

	first, err := search.Search[string](g, "A", "T", search.WithHeuristic(h))
	require.NoError(t, err)
	second, err := search.Search[string](g, "A", "T", search.WithHeuristic(h))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// ------------------------------------------------------------------------
// 3. A* versus Dijkstra
// ------------------------------------------------------------------------

func TestAStar_MatchesDijkstraCostWithAdmissibleHeuristic(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := geometric(t, seed, 80)
		h := heuristic.Euclidean[string](g, 1)
		nodes := g.Nodes()

		for i := 0; i < 10; i++ {
			start, goal := nodes[(i*7)%len(nodes)], nodes[(i*13+5)%len(nodes)]
			name := fmt.Sprintf("seed%d/%s-%s", seed, start, goal)

			dj, err := search.Search[string](g, start, goal)
			require.NoError(t, err, name)
			as, err := search.Search[string](g, start, goal, search.WithHeuristic(h))
			require.NoError(t, err, name)

			require.Equal(t, dj.Reached, as.Reached, name)
			if !dj.Reached {
				continue
			}
			require.InDelta(t, dj.Cost(), as.Cost(), costDelta, name)
			require.LessOrEqual(t, as.Stats.Expanded, dj.Stats.Expanded, name)

			path, ok, err := as.Path()
			require.NoError(t, err, name)
			require.True(t, ok, name)
			require.Equal(t, start, path.Nodes[0])
			require.Equal(t, goal, path.Nodes[len(path.Nodes)-1])
		}
	}
}

func TestAStar_FewerPopsOnGrid(t *testing.T) {
	g := openGrid(t, 20, 20)
	start, goal := "0,10", "19,10"

	dj, err := search.Search[string](g, start, goal)
	require.NoError(t, err)
	as, err := search.Search[string](g, start, goal, search.WithHeuristic(heuristic.Euclidean[string](g, 1)))
	require.NoError(t, err)

	require.Equal(t, 19.0, dj.Cost())
	require.Equal(t, dj.Cost(), as.Cost())
	require.LessOrEqual(t, as.Stats.Pops, dj.Stats.Pops)
	assert.Less(t, as.Stats.Pops, dj.Stats.Pops/4, "A*=%d Dijkstra=%d", as.Stats.Pops, dj.Stats.Pops)
	require.Equal(t, search.AStar, as.Mode)
	require.Equal(t, search.Dijkstra, dj.Mode)
}

func TestAStar_SampleNetwork(t *testing.T) {
	g := sampleNetwork(t)
	dj, err := search.Search[string](g, "A", "T")
	require.NoError(t, err)
	as, err := search.Search[string](g, "A", "T", search.WithHeuristic(heuristic.Euclidean[string](g, 1)))
	require.NoError(t, err)

	require.InDelta(t, dj.Cost(), as.Cost(), costDelta)
	require.LessOrEqual(t, as.Stats.Expanded, dj.Stats.Expanded)
}

func TestAStar_InadmissibleHeuristicIsAccepted(t *testing.T) {
	g := sampleNetwork(t)
	dj, err := search.Search[string](g, "A", "T")
	require.NoError(t, err)

	greedy := heuristic.Scaled(heuristic.Euclidean[string](g, 1), 50)
	as, err := search.Search[string](g, "A", "T", search.WithHeuristic(greedy))
	require.NoError(t, err)
	require.True(t, as.Reached)
	require.GreaterOrEqual(t, as.Cost()+costDelta, dj.Cost())
}

func TestAStar_NegativeOrNaNEstimatesCountAsZero(t *testing.T) {
	g := sampleNetwork(t)
	dj, err := search.Search[string](g, "A", "T")
	require.NoError(t, err)

	for _, v := range []float64{-3, math.NaN()} {
		bad := heuristic.Func[string](func(string, string) float64 { return v })
		as, err := search.Search[string](g, "A", "T", search.WithHeuristic[string](bad))
		require.NoError(t, err)
		require.Equal(t, dj.Stats, as.Stats)
		require.Equal(t, dj.Distances, as.Distances)
	}
}

func TestWithMode(t *testing.T) {
	g := triangle(t)
	res, err := search.Search[string](g, NodeA, NodeC, search.WithMode[string](search.AStar))
	require.NoError(t, err)
	require.Equal(t, search.AStar, res.Mode)

	h := heuristic.Zero[string]()
	res, err = search.Search[string](g, NodeA, NodeC, search.WithHeuristic(h), search.WithMode[string](search.Dijkstra))
	require.NoError(t, err)
	require.Equal(t, search.Dijkstra, res.Mode)
}

// ------------------------------------------------------------------------
// 4. Limits, cancellation and validation
// ------------------------------------------------------------------------

func TestSearch_MaxExpansions(t *testing.T) {
	g := triangle(t)
	res, err := search.Search[string](g, NodeA, NodeC, search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	require.NotNil(t, res)
	require.False(t, res.Reached)
	require.Equal(t, 1, res.Stats.Expanded)
	require.True(t, math.IsInf(res.Cost(), 1))
}

func TestSearch_MaxCost(t *testing.T) {
	g := triangle(t)
	res, err := search.Search[string](g, NodeA, NodeC, search.WithMaxCost(3))
	require.NoError(t, err)
	require.False(t, res.Reached)
	require.Equal(t, map[string]float64{NodeA: 0, NodeB: 2}, res.Distances)

	res, err = search.Search[string](g, NodeA, NodeC, search.WithMaxCost(4))
	require.NoError(t, err)
	require.True(t, res.Reached)
}

func TestSearchContext_Cancelled(t *testing.T) {
	g := triangle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.SearchContext[string](ctx, g, NodeA, NodeC)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.Zero(t, res.Stats.Pops)
}

func TestSearch_OptionViolations(t *testing.T) {
	g := triangle(t)
	cases := map[string]search.Option{
		"negative expansions": search.WithMaxExpansions(-1),
		"negative max cost":   search.WithMaxCost(-1),
		"nil heuristic":       search.WithHeuristic[string](nil),
		"heuristic type":      search.WithHeuristic(heuristic.Zero[int]()),
		"hook type":           search.WithOnPop(func(int, float64, bool) {}),
		"improve hook type":   search.WithOnImprove(func(_, _ int, _ float64, _ bool, _ float64) {}),
		"unknown mode":        search.WithMode[string](search.Mode(9)),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := search.Search[string](g, NodeA, NodeC, opt)
			require.ErrorIs(t, err, search.ErrOptionViolation)
			require.Nil(t, res)
		})
	}
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := search.Search[string](nil, NodeA, NodeB)
	require.ErrorIs(t, err, search.ErrNilGraph)
}

// negativeGraph bypasses core validation.
type negativeGraph struct{}

func (negativeGraph) Neighbors(id string) []core.Arc[string] {
	if id == NodeA {
		return []core.Arc[string]{{To: NodeB, Weight: -1}}
	}
	return nil
}

func TestSearch_NegativeWeightFromCustomGraph(t *testing.T) {
	_, err := search.Search[string](negativeGraph{}, NodeA, NodeB)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestSearch_NegativeWeightRejectedAtInsertion(t *testing.T) {
	g := triangle(t)
	require.ErrorIs(t, g.AddEdge(NodeA, NodeB, -1), core.ErrInvalidWeight)

	res, err := search.Search[string](g, NodeA, NodeC)
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost(), "rejected edge left no trace")
}

func TestMode_StringAndParse(t *testing.T) {
	require.Equal(t, "dijkstra", search.Dijkstra.String())
	require.Equal(t, "astar", search.AStar.String())
	require.Equal(t, "mode(7)", search.Mode(7).String())

	for in, want := range map[string]search.Mode{"dijkstra": search.Dijkstra, "astar": search.AStar, "a*": search.AStar} {
		m, err := search.ParseMode(in)
		require.NoError(t, err)
		require.Equal(t, want, m)
	}
	_, err := search.ParseMode("bfs")
	require.ErrorIs(t, err, search.ErrOptionViolation)
}
