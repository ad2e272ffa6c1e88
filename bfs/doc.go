// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (arc count) from one or more sources.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node index → distance from the nearest source
//   - Parent: map from node index → its predecessor in the BFS tree
//   - Hooks: OnVisit (may abort with an error).
//   - Arc filtering via WithFilterNeighbor; the pipeline uses it to walk only
//     transitions kept after pruning, or only enclave doors whose gate is open.
//   - WithReverse follows arcs backwards (predecessors), which answers
//     "which nodes can reach the sources" in one pass.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph returns successors in ascending index order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E log d) (successor lists are sorted per node)
//   - Memory: O(V)
package bfs
