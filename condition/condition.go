package condition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlebox/state"
)

// ErrSpaceNil is returned when Simplify receives a nil Space.
var ErrSpaceNil = errors.New("condition: space is nil")

// Gate is the outcome of Simplify for one pair of enclaves.
type Gate struct {
	// Condition is the weakest partial state separating I from D.
	// It is nil when Found is false.
	Condition state.Partial
	// Found reports whether a non-empty condition exists.
	Found bool
	// Shared is |I|; Distinct is |D|.
	Shared, Distinct int
}

// Simplify computes the gate between two enclaves reachable under the
// states a and b respectively.
//
// No gate is found when the intersection is empty, when nothing
// distinguishes the two sides, or when no subset of the slots shared by the
// intersection rules out every distinguishing state.
func Simplify(space *state.Space, a, b []state.Total) (Gate, error) {
	if space == nil {
		return Gate{}, ErrSpaceNil
	}
	inA, err := index(space, a)
	if err != nil {
		return Gate{}, err
	}
	inB, err := index(space, b)
	if err != nil {
		return Gate{}, err
	}

	var shared, distinct []state.Total
	for r, t := range inA {
		if _, ok := inB[r]; ok {
			shared = append(shared, t)
		} else {
			distinct = append(distinct, t)
		}
	}
	for r, t := range inB {
		if _, ok := inA[r]; !ok {
			distinct = append(distinct, t)
		}
	}
	g := Gate{Shared: len(shared), Distinct: len(distinct)}
	if len(shared) == 0 || len(distinct) == 0 {
		return g, nil
	}

	common := state.Common(shared)
	slots := common.ConcreteIndices()
	for size := 1; size <= len(slots); size++ {
		found := false
		combinations(len(slots), size, func(pick []int) bool {
			keep := make([]int, len(pick))
			for i, p := range pick {
				keep[i] = slots[p]
			}
			cand := common.Restrict(keep)
			if !cand.MatchesAny(distinct) {
				g.Condition, g.Found, found = cand, true, true
				return false
			}
			return true
		})
		if found {
			return g, nil
		}
	}
	return g, nil
}

// Minimal reports whether cond matches none of distinct while every
// condition obtained by dropping one of its concrete slots matches at least
// one of them.
func Minimal(cond state.Partial, distinct []state.Total) bool {
	if cond.MatchesAny(distinct) {
		return false
	}
	slots := cond.ConcreteIndices()
	for drop := range slots {
		keep := make([]int, 0, len(slots)-1)
		keep = append(keep, slots[:drop]...)
		keep = append(keep, slots[drop+1:]...)
		if !cond.Restrict(keep).MatchesAny(distinct) {
			return false
		}
	}
	return true
}

// index validates ts and keys them by rank, dropping duplicates.
func index(space *state.Space, ts []state.Total) (map[int]state.Total, error) {
	out := make(map[int]state.Total, len(ts))
	for _, t := range ts {
		r, err := space.Rank(t)
		if err != nil {
			return nil, fmt.Errorf("condition: %w", err)
		}
		out[r] = t
	}
	return out, nil
}

// combinations calls fn with every size-k subset of [0, n) as ascending
// indices, in lexicographic order, until fn returns false.
func combinations(n, k int, fn func([]int) bool) {
	pick := make([]int, k)
	for i := range pick {
		pick[i] = i
	}
	for {
		if !fn(pick) {
			return
		}
		i := k - 1
		for i >= 0 && pick[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		pick[i]++
		for j := i + 1; j < k; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
