package search

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// Sentinel errors returned by search.
var (
	// ErrNilGraph indicates a nil Graph was passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit indicates the search stopped after MaxExpansions
	// expansions without settling the goal. The partial Result is returned.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrInternalConsistency indicates a predecessor map that does not lead
	// back to the start within the bound. It means a bug, not bad input.
	ErrInternalConsistency = errors.New("search: inconsistent predecessor map")
)

// Graph is what the engine needs from a graph: the outgoing arcs of a node.
// Unknown nodes must yield no arcs. *core.Graph satisfies it.
type Graph[N cmp.Ordered] interface {
	Neighbors(id N) []core.Arc[N]
}

// Mode selects the frontier priority: accumulated cost only (Dijkstra), or
// accumulated cost plus a heuristic estimate (AStar).
type Mode int

const (
	// Dijkstra orders the frontier by accumulated cost.
	Dijkstra Mode = iota
	// AStar orders the frontier by accumulated cost + heuristic estimate.
	AStar
)

// String returns "dijkstra" or "astar".
func (m Mode) String() string {
	switch m {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps "dijkstra" / "astar" (also "a*") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// nodes have been expanded without settling the goal.
	MaxExpansions int

	// MaxCost prunes relaxations whose accumulated cost would exceed it.
	// Default +Inf.
	MaxCost float64

	// typed values checked against the node type at call time
	heuristic any
	onPop     any
	onImprove any

	err error
}

// DefaultOptions returns Options with no expansion limit, no cost cap,
// no heuristic (Dijkstra) and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		MaxCost:       math.Inf(1),
	}
}

// WithHeuristic switches the search to A* guided by h.
// A nil h is an ErrOptionViolation.
func WithHeuristic[N cmp.Ordered](h heuristic.Heuristic[N]) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.heuristic = h
	}
}

// WithMode selects Dijkstra explicitly, or AStar with the Zero heuristic
// unless WithHeuristic is also given.
func WithMode[N cmp.Ordered](m Mode) Option {
	return func(o *Options) {
		switch m {
		case Dijkstra:
			o.heuristic = nil
		case AStar:
			if o.heuristic == nil {
				o.heuristic = heuristic.Zero[N]()
			}
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxCost prunes paths whose cost would exceed c. c must be >= 0.
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%v)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnPop registers a callback run for every frontier pop, stale or not.
func WithOnPop[N cmp.Ordered](fn func(node N, priority float64, stale bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPop = fn
		}
	}
}

// WithOnImprove registers a callback run whenever the best known cost of a
// node is lowered. known is false on first discovery (old is then +Inf).
func WithOnImprove[N cmp.Ordered](fn func(node, via N, old float64, known bool, next float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onImprove = fn
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Pops        int // frontier pops, stale ones included
	Expanded    int // nodes whose arcs were relaxed
	StaleSkips  int // pops discarded as superseded
	Pushes      int // frontier insertions, the start included
	Relaxations int // arcs examined
}

// Result is the outcome of one search.
//
// Distances holds the best known cost of every reached node; a node that is
// absent is at infinite distance. Predecessors maps every reached node except
// the start to the node it was reached from.
type Result[N cmp.Ordered] struct {
	Start, Goal  N
	Mode         Mode
	Distances    map[N]float64
	Predecessors map[N]N
	Reached      bool
	Stats        Stats
}

// Cost returns the best cost to the goal, or +Inf if it was not reached.
func (r *Result[N]) Cost() float64 {
	if d, ok := r.Distances[r.Goal]; ok && r.Reached {
		return d
	}

	return math.Inf(1)
}

// Path is a start-to-goal node sequence and its total cost.
type Path[N cmp.Ordered] struct {
	Nodes []N
	Cost  float64
}
