package heuristic

import (
	"errors"
	"math"
)

// ErrBadScale is the panic value for a negative, NaN or infinite scale.
var ErrBadScale = errors.New("heuristic: scale must be finite and non-negative")

// Heuristic estimates the remaining cost from node to goal.
// Implementations must be pure and return values >= 0.
type Heuristic[N any] interface {
	Estimate(node, goal N) float64
}

// Func adapts an ordinary function to Heuristic.
type Func[N any] func(node, goal N) float64

// Estimate calls f(node, goal).
func (f Func[N]) Estimate(node, goal N) float64 { return f(node, goal) }

// PositionSource exposes node coordinates.
type PositionSource[N any] interface {
	Position(id N) ([]float64, bool)
}

// Zero returns the heuristic that always estimates 0.
func Zero[N any]() Heuristic[N] {
	return Func[N](func(N, N) float64 { return 0 })
}

// Euclidean returns the straight-line distance between the positions of node
// and goal multiplied by scale. Panics with ErrBadScale on an invalid scale.
func Euclidean[N any](src PositionSource[N], scale float64) Heuristic[N] {
	mustScale(scale)

	return Func[N](func(node, goal N) float64 {
		a, b, ok := positions(src, node, goal)
		if !ok {
			return 0
		}
		var sum float64
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}

		return math.Sqrt(sum) * scale
	})
}

// Manhattan returns the L1 distance between the positions of node and goal
// multiplied by scale. Admissible on 4-connected grids with unit steps when
// scale <= 1. Panics with ErrBadScale on an invalid scale.
func Manhattan[N any](src PositionSource[N], scale float64) Heuristic[N] {
	mustScale(scale)

	return Func[N](func(node, goal N) float64 {
		a, b, ok := positions(src, node, goal)
		if !ok {
			return 0
		}
		var sum float64
		for i := range a {
			sum += math.Abs(a[i] - b[i])
		}

		return sum * scale
	})
}

// Scaled multiplies every estimate of h by factor. A factor above 1 trades
// optimality for fewer expansions.
func Scaled[N any](h Heuristic[N], factor float64) Heuristic[N] {
	mustScale(factor)

	return Func[N](func(node, goal N) float64 {
		return h.Estimate(node, goal) * factor
	})
}

func positions[N any](src PositionSource[N], node, goal N) ([]float64, []float64, bool) {
	a, ok := src.Position(node)
	if !ok {
		return nil, nil, false
	}
	b, ok := src.Position(goal)
	if !ok || len(a) != len(b) {
		return nil, nil, false
	}

	return a, b, true
}

func mustScale(s float64) {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(ErrBadScale.Error())
	}
}
