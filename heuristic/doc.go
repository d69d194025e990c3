// Package heuristic defines goal-distance estimates for informed search.
//
// A Heuristic maps (node, goal) to a non-negative estimate of the remaining
// cost. Search stays optimal when the estimate never exceeds the true cost
// (admissible). Zero is always admissible and turns A* into Dijkstra.
//
// Geometric heuristics read node coordinates through PositionSource, which
// *core.Graph satisfies. When either endpoint has no position, or the two
// positions disagree in dimension, the estimate is 0.
package heuristic
