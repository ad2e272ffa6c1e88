// Package state models the world state of a puzzlebox dungeon.
//
// What:
//
//   - Variable: one typed axis of progression (a switch, an item, a dial).
//   - Space: the immutable, ordered list of Variables of one run, with the
//     mixed-radix odometer that enumerates every Total state.
//   - Total: one concrete value per Variable.
//   - Delta: the signature of a single-variable change, the gate a player
//     must trigger to move between regions.
//   - Partial: a vector of tagged Slots (concrete value, wildcard, or
//     saturated magnitude) used for unlock conditions and diffs.
//
// Equality of Total, Delta and Partial is structural. Delta is a comparable
// struct and can key maps directly; Total is keyed by its Space rank.
//
// Errors:
//
//   - ErrCardinality: a Variable's cardinality does not fit its Kind.
//   - ErrStateLength: a Total has the wrong number of slots.
//   - ErrStateRange: a Total slot lies outside [0, cardinality).
//   - ErrInvariantViolation: two states expected to differ in exactly one
//     variable do not.
package state
