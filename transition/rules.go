package transition

import "github.com/katalvlaran/puzzlebox/state"

// Move is one value change a Rule allows for a variable.
type Move struct {
	From, To int
	// Directed moves add only the arc From→To; undirected moves add both.
	Directed bool
}

// Rule lists the moves available to a variable of the given cardinality.
type Rule func(cardinality int) []Move

// ReversibleRule connects every pair of distinct values in both directions.
// Reversible variables jump directly between any two values, not only
// adjacent ones.
func ReversibleRule(card int) []Move {
	moves := make([]Move, 0, card*(card-1)/2)
	for a := 0; a < card; a++ {
		for b := a + 1; b < card; b++ {
			moves = append(moves, Move{From: a, To: b})
		}
	}
	return moves
}

// IrreversibleRule allows leaving 0 for any positive value, never returning.
func IrreversibleRule(card int) []Move {
	moves := make([]Move, 0, card-1)
	for b := 1; b < card; b++ {
		moves = append(moves, Move{From: 0, To: b, Directed: true})
	}
	return moves
}

// CyclicRule advances v → (v+1) mod card.
func CyclicRule(card int) []Move {
	moves := make([]Move, 0, card)
	for a := 0; a < card; a++ {
		moves = append(moves, Move{From: a, To: (a + 1) % card, Directed: true})
	}
	return moves
}

// DefaultRules returns the rule table for every state.Kind.
func DefaultRules() map[state.Kind]Rule {
	return map[state.Kind]Rule{
		state.BinaryReversible:    ReversibleRule,
		state.NumericReversible:   ReversibleRule,
		state.BinaryIrreversible:  IrreversibleRule,
		state.NumericIrreversible: IrreversibleRule,
		state.BinaryCyclic:        CyclicRule,
		state.NumericCyclic:       CyclicRule,
	}
}
