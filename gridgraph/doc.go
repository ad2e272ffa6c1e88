// Package gridgraph models the rectangular grid of rooms a dungeon is laid
// out on, and treats it as a graph.
//
// What:
//
//   - RoomGrid: Width×Height rooms identified by row-major index
//     y*Width + x; neighbors follow Conn4 (N, E, S, W) or Conn8.
//   - ConnectedComponents: contiguous regions of a room subset, used to check
//     that every enclave is a single connected region.
//   - ToCoreGraph: the full adjacency as an undirected *core.Graph[Cell].
//
// Complexity:
//
//   - Index, Coordinate, InBounds: O(1).
//   - Neighbors:                   O(d), d = 4 or 8.
//   - ConnectedComponents:         O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:                 O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below 1.
//   - ErrRoomOutOfRange: a room index outside [0, W×H).
package gridgraph
