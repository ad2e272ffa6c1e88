// Package walk samples the state path a dungeon is built around.
//
// Two strategies are supported:
//
//   - RandomWalk: from node 0 repeatedly step to a uniformly chosen
//     unvisited successor; stop when none is left. The last node is a leaf
//     of the sampled path and need not be a goal.
//   - GoalDirected: restrict the graph to nodes reachable from node 0 that
//     can still reach a goal, draw one retained goal, then sample a random
//     acyclic path to it with dfs.RandomPath.
//
// Every step of a Path carries the Delta performed and whether the reverse
// transition exists, which decides if the corresponding gate is a one-way
// door or a reversible mechanism.
package walk
