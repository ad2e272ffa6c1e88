// Package gridgraph defines core types, options, and sentinel errors
// for room grids.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrRoomOutOfRange indicates a room index outside the grid.
	ErrRoomOutOfRange = errors.New("gridgraph: room index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is the node payload of ToCoreGraph.
type Cell struct {
	X, Y int
}

// GridOptions contains tunable parameters for a grid.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// RoomGrid is a Width×Height grid of rooms. It is immutable once built.
type RoomGrid struct {
	Width, Height   int
	Conn            Connectivity
	neighborOffsets [][2]int
}
