// Package dungeon runs the full generation pipeline:
//
//  1. state space from the configured variables
//  2. transition graph over every total state
//  3. sampled path (random or goal-directed)
//  4. room grid partitioned into one enclave per distinct path delta plus
//     the terminal enclave
//  5. delta assignment and reachable-state accumulation
//  6. the weakest lock for every pair of enclaves
//
// Generation is single-threaded and all-or-nothing: the first failing stage
// aborts the run and its error is returned wrapped with the stage name.
// A fixed seed reproduces the same dungeon.
package dungeon
