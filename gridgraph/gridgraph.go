package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfind/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		PassThreshold:   opts.PassThreshold,
		CostByValue:     opts.CostByValue,
		neighborOffsets: offsetsFor(opts.Conn),
	}, nil
}

// FromObstacles builds a width×height grid of walkable unit cells with the
// listed cells blocked.
func FromObstacles(width, height int, obstacles []Cell, conn Connectivity) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]int, height)
	for y := range values {
		values[y] = make([]int, width)
		for x := range values[y] {
			values[y][x] = 1
		}
	}
	for _, c := range obstacles {
		if c.X < 0 || c.X >= width || c.Y < 0 || c.Y >= height {
			return nil, fmt.Errorf("%w: obstacle (%d,%d) in %dx%d grid", ErrOutOfBounds, c.X, c.Y, width, height)
		}
		values[c.Y][c.X] = 0
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

func offsetsFor(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is inside the grid and walkable.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.PassThreshold
}

// NodeID formats the identifier of cell (x,y) as "x,y".
func NodeID(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ParseNodeID is the inverse of NodeID.
func ParseNodeID(id string) (Cell, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}

	return Cell{X: x, Y: y}, nil
}

// ToCoreGraph converts the walkable cells into a *core.Graph[string].
// Each walkable cell (x,y) becomes node "x,y" positioned at (x,y).
// Orthogonal steps cost 1 and diagonal steps √2, or the entered cell's value
// times that factor when CostByValue is set (then the graph is directed).
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph[string], error) {
	g := core.NewGraph[string](core.WithDirected(gg.CostByValue))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			if err := g.SetPosition(NodeID(x, y), float64(x), float64(y)); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := NodeID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) {
					continue
				}
				if err := g.AddEdge(u, NodeID(nx, ny), gg.stepCost(d, nx, ny)); err != nil {
					return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", nx, ny, err)
				}
			}
		}
	}

	return g, nil
}

// stepCost is the cost of entering (nx,ny) by offset d.
func (gg *GridGraph) stepCost(d [2]int, nx, ny int) float64 {
	factor := 1.0
	if d[0] != 0 && d[1] != 0 {
		factor = math.Sqrt2
	}
	if gg.CostByValue {
		return factor * float64(gg.CellValues[ny][nx])
	}

	return factor
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
