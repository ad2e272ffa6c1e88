// Package puzzlebox generates puzzle dungeons from a handful of state
// variables: switches, levers, dials and the like.
//
// 🚀 How a dungeon is made
//
//	The variables span a state space. Every single-variable change that the
//	variable's kind allows becomes an edge of the state graph. A walk through
//	that graph decides which mechanisms the player operates, and in what
//	order. The room grid is then split into one enclave per distinct
//	mechanism plus a terminal "boss" enclave, and every pair of enclaves gets
//	the weakest condition on the world state that keeps the walk honest.
//
// Packages:
//
//	core/       — generic arena graph (nodes in a slice, arcs by index)
//	bfs/, dfs/  — traversal and randomized path search over core graphs
//	rng/        — injectable seeded random source
//	state/      — variables, total and partial states, deltas, state space
//	transition/ — the state graph
//	walk/       — random and goal-directed path sampling
//	gridgraph/  — the room grid
//	enclave/    — region growth and delta assignment
//	condition/  — minimal lock conditions
//	dungeon/    — the pipeline
//	config/     — YAML configuration
//	render/     — text and YAML output
//
// Quick ASCII example (5×4 grid, "@" is the start room):
//
//	@CDAA
//	BCDAA
//	BCDAA
//	BCDAA
//
//	go run ./cmd/puzzlebox generate --seed 42
package puzzlebox
