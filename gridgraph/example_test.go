package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/gridgraph"
)

// ExampleRoomGrid_ConnectedComponents finds the regions of the rooms on the
// diagonal of a 3×3 grid. Under Conn4 each room stands alone; under Conn8
// they touch at the corners.
func ExampleRoomGrid_ConnectedComponents() {
	diag := func(id int) bool { return id == 0 || id == 4 || id == 8 }

	g4, _ := gridgraph.NewRoomGrid(3, 3, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	g8, _ := gridgraph.NewRoomGrid(3, 3, gridgraph.GridOptions{Conn: gridgraph.Conn8})

	fmt.Println("conn4:", g4.ConnectedComponents(diag))
	fmt.Println("conn8:", g8.ConnectedComponents(diag))
	// Output:
	// conn4: [[0] [4] [8]]
	// conn8: [[0 4 8]]
}
