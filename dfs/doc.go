// Package dfs implements randomized depth-first path search on a core.Graph.
//
// What:
//
//   - RandomPath: explores from a start node, choosing uniformly among the
//     unvisited successors at each step and backtracking off dead ends,
//     until a node accepted by the goal predicate is reached. The returned
//     path is the recursion stack at that moment, so it never repeats a node.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithFilterNeighbor(fn)    restricts which arcs may be followed.
//   - WithMaxDepth(limit)       bounds the path length in arcs.
//
// Complexity:
//
//   - Time:   O(V + E) plus one random draw per step.
//   - Memory: O(V) for the visited set and recursion stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - ErrNoPath                 if no accepted node is reachable.
//   - ErrOptionViolation        for invalid options.
//   - context.Canceled          if ctx is done.
package dfs
