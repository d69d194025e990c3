package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to gg.Conn connectivity, scanning in row-major order.
// Each component lists its cells in BFS discovery order.
//
// Two cells in different components have no path between them, so this
// is a cheap pre-check before searching.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.Passable(x, y) || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				comp = append(comp, Cell{X: ux, Y: uy})
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}

// SameComponent reports whether a and b are walkable and connected.
func (gg *GridGraph) SameComponent(a, b Cell) bool {
	if !gg.Passable(a.X, a.Y) || !gg.Passable(b.X, b.Y) {
		return false
	}
	for _, comp := range gg.ConnectedComponents() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
