// Package condition derives the lock on a door between two enclaves.
//
// Given the states under which each side is reachable, the shared states I
// are the ones under which the door may be used and the distinguishing
// states D (the symmetric difference) are the ones under which it must stay
// shut. Simplify searches the subsets of the slots common to I, fewest slots
// first, for the first partial state that matches nothing in D.
//
// The search is exponential in the number of variables, which stays small
// because the state space itself is bounded.
package condition
