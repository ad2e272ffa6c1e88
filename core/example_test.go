package core_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/core"
)

// ExampleGraph_Edges shows how a pair of opposite arcs is reported as a single
// bidirectional edge while a lone arc stays directed.
func ExampleGraph_Edges() {
	g := core.NewGraph[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	_ = g.AddEdge(a, b, false) // A<->B
	_ = g.AddEdge(b, c, true)  // B-->C

	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		arrow := "-->"
		if e.Bidirectional {
			arrow = "<->"
		}
		fmt.Println(from, arrow, to)
	}
	// Output:
	// A <-> B
	// B --> C
}
