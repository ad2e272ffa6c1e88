// Package core defines the arena-indexed Graph used by every other package
// in puzzlebox: the transition graph over total states, the corridor forest
// of a room grid, and the adjacency graph between enclaves.
//
// Nodes are stored in a slice and addressed by their insertion index.
// Arcs are kept as one successor set per node, so a directed edge u→v is a
// single arc and an undirected edge is the pair of arcs u→v and v→u.
// No edge is ever keyed by a string derived from its endpoints.
//
// Errors:
//
//	ErrVertexNotFound - an index outside [0, Len()).
//	ErrLoopNotAllowed - a self-loop on a graph built without WithLoops().
//
// Concurrency:
//
//	A Graph is built by one phase of the pipeline and only read afterwards.
//	It carries no locks; do not mutate it from several goroutines.
package core
