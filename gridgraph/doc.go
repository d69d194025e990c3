// Package gridgraph treats a 2D grid of cells as a positioned graph for
// path search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     PassThreshold are walkable, the rest are obstacles.
//   - FromObstacles builds a unit grid from a list of blocked cells.
//   - ToCoreGraph yields a *core.Graph[string] with nodes "x,y" positioned at
//     (x,y), ready for Euclidean or Manhattan heuristics.
//   - ConnectedComponents / SameComponent answer reachability without search.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.PassThreshold: minimum walkable value.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors, diagonal cost √2).
//   - GridOptions.CostByValue: entering a cell costs its value (directed graph).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: obstacle outside the grid.
//   - ErrBadNodeID: ParseNodeID input is not "x,y".
package gridgraph
