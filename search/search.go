package search

import (
	"cmp"
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// ctxCheckInterval is how many pops pass between context checks.
const ctxCheckInterval = 256

// Search finds a cheapest path from start to goal in g.
//
// Without options it runs Dijkstra; WithHeuristic switches to A*.
// An unreachable goal is not an error: Result.Reached is false and the goal
// is absent from Result.Distances. A start unknown to g behaves as an
// isolated node.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOptionViolation for invalid options or hooks typed for another node type.
//   - ErrExpansionLimit (with the partial Result) when MaxExpansions is hit.
//   - core.ErrInvalidWeight if g yields a negative or NaN arc weight.
//
// Complexity:
//   - Time O((V + E) log E), Space O(V + E) with lazy deletion.
func Search[N cmp.Ordered](g Graph[N], start, goal N, opts ...Option) (*Result[N], error) {
	return SearchContext(context.Background(), g, start, goal, opts...)
}

// SearchContext is Search with cancellation. The context is polled every
// few hundred pops; on cancellation the partial Result is returned together
// with the context error.
func SearchContext[N cmp.Ordered](ctx context.Context, g Graph[N], start, goal N, opts ...Option) (*Result[N], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Resolve typed options against N.
	r := &runner[N]{
		g:    g,
		goal: goal,
		cfg:  cfg,
		dist: make(map[N]float64),
		prev: make(map[N]N),
	}
	if err := r.bind(); err != nil {
		return nil, err
	}

	// 3) Run.
	r.init(start)
	err := r.process(ctx)

	mode := Dijkstra
	if r.h != nil {
		mode = AStar
	}

	return &Result[N]{
		Start:        start,
		Goal:         goal,
		Mode:         mode,
		Distances:    r.dist,
		Predecessors: r.prev,
		Reached:      r.reached,
		Stats:        r.stats,
	}, err
}

// runner holds the mutable state of a single search.
type runner[N cmp.Ordered] struct {
	g    Graph[N]
	goal N
	cfg  Options

	h         heuristic.Heuristic[N] // nil means Dijkstra
	onPop     func(N, float64, bool)
	onImprove func(N, N, float64, bool, float64)

	dist    map[N]float64
	prev    map[N]N
	pq      frontier[N]
	reached bool
	stats   Stats
}

// bind type-checks the untyped option values against N.
func (r *runner[N]) bind() error {
	if r.cfg.heuristic != nil {
		h, ok := r.cfg.heuristic.(heuristic.Heuristic[N])
		if !ok {
			return fmt.Errorf("%w: heuristic %T does not match node type %T", ErrOptionViolation, r.cfg.heuristic, r.goal)
		}
		r.h = h
	}
	if r.cfg.onPop != nil {
		fn, ok := r.cfg.onPop.(func(N, float64, bool))
		if !ok {
			return fmt.Errorf("%w: OnPop hook %T does not match node type %T", ErrOptionViolation, r.cfg.onPop, r.goal)
		}
		r.onPop = fn
	}
	if r.cfg.onImprove != nil {
		fn, ok := r.cfg.onImprove.(func(N, N, float64, bool, float64))
		if !ok {
			return fmt.Errorf("%w: OnImprove hook %T does not match node type %T", ErrOptionViolation, r.cfg.onImprove, r.goal)
		}
		r.onImprove = fn
	}

	return nil
}

// init records the start at cost 0 and seeds the frontier with it.
func (r *runner[N]) init(start N) {
	r.dist[start] = 0
	r.push(start, 0)
}

// process pops entries until the goal is settled or the frontier drains.
func (r *runner[N]) process(ctx context.Context) error {
	for r.pq.Len() > 0 {
		if r.stats.Pops%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("search: aborted after %d pops: %w", r.stats.Pops, err)
			}
		}

		// 1) Pop the lowest (priority, node) entry.
		e := heap.Pop(&r.pq).(entry[N])
		r.stats.Pops++

		// 2) Skip it if a cheaper cost was recorded after it was pushed.
		stale := e.cost > r.dist[e.node]
		if r.onPop != nil {
			r.onPop(e.node, e.priority, stale)
		}
		if stale {
			r.stats.StaleSkips++
			continue
		}

		// 3) The goal is settled on its first non-stale pop.
		if e.node == r.goal {
			r.reached = true
			return nil
		}

		if r.cfg.MaxExpansions > 0 && r.stats.Expanded >= r.cfg.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.stats.Expanded)
		}

		// 4) Expand.
		r.stats.Expanded++
		if err := r.relax(e.node, e.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every arc leaving u, recording strictly cheaper costs and
// pushing a fresh entry for each improvement.
func (r *runner[N]) relax(u N, cost float64) error {
	for _, arc := range r.g.Neighbors(u) {
		r.stats.Relaxations++
		if arc.Weight < 0 || math.IsNaN(arc.Weight) {
			return fmt.Errorf("%w: edge %v→%v weight=%v", core.ErrInvalidWeight, u, arc.To, arc.Weight)
		}

		next := cost + arc.Weight
		if next > r.cfg.MaxCost {
			continue
		}
		old, known := r.dist[arc.To]
		if known && next >= old {
			continue
		}
		if !known {
			old = math.Inf(1)
		}

		r.dist[arc.To] = next
		r.prev[arc.To] = u
		if r.onImprove != nil {
			r.onImprove(arc.To, u, old, known, next)
		}
		r.push(arc.To, next)
	}

	return nil
}

// push inserts node with its accumulated cost and mode-specific priority.
func (r *runner[N]) push(node N, cost float64) {
	priority := cost
	if r.h != nil {
		if est := r.h.Estimate(node, r.goal); est > 0 {
			priority += est
		}
	}
	heap.Push(&r.pq, entry[N]{priority: priority, cost: cost, node: node})
	r.stats.Pushes++
}
