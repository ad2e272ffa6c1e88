// Package enclave splits a room grid into connected regions and ties each
// region to one gate of the sampled state path.
//
// Partition grows k regions at once from random seed rooms, in the manner
// of a randomized Prim: a room pending on the frontier is drawn uniformly,
// joins the region of a uniformly drawn already-claimed neighbor, and the
// step is recorded as a corridor. Regions are then ordered by size.
//
// Assign walks the enclave adjacency graph outward from the enclave holding
// the start room. Each step gives the next distinct path delta to the
// largest enclave bordering the ones already placed; the enclave placed
// last is terminal and holds no delta. A second pass over the path records,
// for every visited state, which enclaves the player can stand in.
//
// Steps of Partition:
//  1. Draw k distinct seed rooms.
//  2. Queue the unclaimed neighbors of every seed.
//  3. Pop a random queued room, attach it to a random claimed neighbor,
//     queue its unclaimed, unqueued neighbors.
//  4. Stop when the queue is empty; the grid is connected so every room is
//     claimed exactly once.
//
// Complexity: O(W×H×(d + W×H)) worst case for the queue removals; grids are
// small.
package enclave
