package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// PassThreshold is the minimum cell value considered walkable.
	// Cells below it are obstacles.
	PassThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CostByValue makes entering a cell cost its value instead of 1
	// (√2 times its value diagonally). The resulting graph is directed.
	CostByValue bool
}

// DefaultGridOptions returns PassThreshold=1 (values ≥1 are walkable),
// Conn=Conn4 and unit step costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		PassThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	PassThreshold   int
	CostByValue     bool
	neighborOffsets [][2]int
}
