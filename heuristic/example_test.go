package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// ExampleEuclidean estimates straight-line distances, scaled to edge-cost units.
func ExampleEuclidean() {
	g := core.NewGraph[string]()
	_ = g.SetPosition("A", 0, 0)
	_ = g.SetPosition("B", 3, 4)
	g.AddNode("C")

	h := heuristic.Euclidean[string](g, 1)
	half := heuristic.Euclidean[string](g, 0.5)
	fmt.Println(h.Estimate("A", "B"), half.Estimate("A", "B"), h.Estimate("C", "B"))
	// Output: 5 2.5 0
}
