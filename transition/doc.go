// Package transition builds the graph of all total states of a state.Space
// connected by single-variable changes.
//
// What:
//
//   - Nodes: every Total from Space.EnumerateAll, at index == Space.Rank.
//   - Arcs: for each variable, the Rule of its Kind decides which value
//     pairs are connected and whether the connection is one-way.
//
// Default rules:
//
//   - Reversible: every pair of distinct values, both directions.
//   - Irreversible: 0 → v for every v > 0, one-way.
//   - Cyclic: v → (v+1) mod cardinality, one-way.
//
// Every arc is checked with state.DeltaBetween while it is inserted, so a
// rule that connects states differing in more than one variable aborts
// with state.ErrInvariantViolation instead of producing a malformed graph.
//
// Building twice from the same Space and rule table yields identical node
// and edge sets; there is no hidden mutable state.
package transition
