package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoVariables indicates a Space built from an empty variable list.
var ErrNoVariables = errors.New("state: at least one variable is required")

// Space is the immutable, ordered list of Variables of one run.
// Variable 0 is the most significant digit of the odometer and the last
// variable the least significant, so EnumerateAll is lexicographic.
type Space struct {
	vars    []Variable
	weights []int // weights[i] = ∏ cardinality_j for j > i
	size    int
}

// NewSpace validates every variable and re-indexes them by position.
// Complexity: O(n).
func NewSpace(vars []Variable) (*Space, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	s := &Space{
		vars:    make([]Variable, len(vars)),
		weights: make([]int, len(vars)),
	}
	for i, v := range vars {
		checked, err := NewVariable(i, v.Kind, v.Cardinality)
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}
		s.vars[i] = checked
	}
	size := 1
	for i := len(s.vars) - 1; i >= 0; i-- {
		s.weights[i] = size
		size *= s.vars[i].Cardinality
	}
	s.size = size

	return s, nil
}

// Len returns the number of variables.
func (s *Space) Len() int { return len(s.vars) }

// Size returns ∏ cardinality_i, the number of Total states.
func (s *Space) Size() int { return s.size }

// Variable returns the i-th variable.
func (s *Space) Variable(i int) Variable { return s.vars[i] }

// Variables returns a copy of the variable list.
func (s *Space) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// EnumerateAll generates every Total with a mixed-radix odometer: start at
// the all-zero vector, increment the least significant variable, carry on
// overflow, and stop after the most significant variable wraps.
//
// Complexity: O(n · Size()).
func (s *Space) EnumerateAll() []Total {
	all := make([]Total, 0, s.size)
	cur := make(Total, len(s.vars))
	for {
		all = append(all, cur.Clone())

		i := len(s.vars) - 1
		for ; i >= 0; i-- {
			if cur[i] < s.vars[i].Cardinality-1 {
				cur[i]++
				break
			}
			cur[i] = 0
		}
		if i < 0 {
			return all
		}
	}
}

// Validate checks length and per-slot range of t.
func (s *Space) Validate(t Total) error {
	if len(t) != len(s.vars) {
		return fmt.Errorf("%w: got %d, want %d", ErrStateLength, len(t), len(s.vars))
	}
	for i, v := range t {
		if v < 0 || v >= s.vars[i].Cardinality {
			return fmt.Errorf("%w: variable %d = %d, want [0,%d)",
				ErrStateRange, i, v, s.vars[i].Cardinality)
		}
	}
	return nil
}

// Rank returns the position of t in EnumerateAll.
// Two totals have the same rank iff they are equal.
func (s *Space) Rank(t Total) (int, error) {
	if err := s.Validate(t); err != nil {
		return 0, err
	}
	r := 0
	for i, v := range t {
		r += v * s.weights[i]
	}
	return r, nil
}

// Unrank is the inverse of Rank.
func (s *Space) Unrank(r int) (Total, error) {
	if r < 0 || r >= s.size {
		return nil, fmt.Errorf("%w: rank %d, size %d", ErrStateRange, r, s.size)
	}
	t := make(Total, len(s.vars))
	for i := range s.vars {
		t[i] = r / s.weights[i]
		r %= s.weights[i]
	}
	return t, nil
}

// Format renders t with one character per slot: F/T for binary variables,
// the decimal value for numeric ones.
func (s *Space) Format(t Total) string {
	var b strings.Builder
	for i, v := range t {
		b.WriteString(s.formatValue(i, v))
	}
	return b.String()
}

// FormatPartial renders a condition: wildcard slots as ".", saturated as "*",
// concrete slots like Format.
func (s *Space) FormatPartial(p Partial) string {
	var b strings.Builder
	for i, slot := range p {
		switch slot.Kind {
		case SlotConcrete:
			b.WriteString(s.formatValue(i, slot.Value))
		default:
			b.WriteString(slot.String())
		}
	}
	return b.String()
}

func (s *Space) formatValue(i, v int) string {
	if i < len(s.vars) && s.vars[i].Kind.Binary() {
		if v == 0 {
			return "F"
		}
		return "T"
	}
	return strconv.Itoa(v)
}
