package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/puzzlebox/core"
)

// NewRoomGrid constructs a w×h RoomGrid.
// Returns ErrEmptyGrid if w < 1 or h < 1.
func NewRoomGrid(w, h int, opts GridOptions) (*RoomGrid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, w, h)
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &RoomGrid{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Len returns the number of rooms.
func (gg *RoomGrid) Len() int { return gg.Width * gg.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *RoomGrid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether id is a valid room index.
func (gg *RoomGrid) Contains(id int) bool {
	return id >= 0 && id < gg.Len()
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *RoomGrid) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *RoomGrid) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *RoomGrid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Neighbors returns the in-bounds neighbors of id in offset order.
func (gg *RoomGrid) Neighbors(id int) []int {
	x, y := gg.Coordinate(id)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, gg.Index(nx, ny))
		}
	}
	return out
}

// ToCoreGraph converts the grid into an undirected *core.Graph whose node i
// is the Cell of room i.
// Complexity: O(W×H×d).
func (gg *RoomGrid) ToCoreGraph() *core.Graph[Cell] {
	g := core.NewGraph[Cell](core.WithCapacity(gg.Len()))
	for id := 0; id < gg.Len(); id++ {
		x, y := gg.Coordinate(id)
		g.AddNode(Cell{X: x, Y: y})
	}
	for id := 0; id < gg.Len(); id++ {
		for _, nb := range gg.Neighbors(id) {
			_ = g.AddEdge(id, nb, false)
		}
	}

	return g
}
