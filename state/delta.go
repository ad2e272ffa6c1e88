package state

import "fmt"

// Delta is the signature of a single-variable transition.
//
// Omni marks a reversible variable: the gate is symmetric, so NewDelta
// stores omnidirectional deltas with Before < After and both directions of
// the same change compare equal. Delta is comparable and can key maps.
type Delta struct {
	Var    int
	Before int
	After  int
	Omni   bool
}

// NewDelta builds a Delta, normalizing omnidirectional value pairs.
func NewDelta(v, before, after int, omni bool) Delta {
	if omni && before > after {
		before, after = after, before
	}
	return Delta{Var: v, Before: before, After: after, Omni: omni}
}

// DeltaBetween computes the Delta of the transition a → b.
// It returns ErrInvariantViolation unless a and b differ in exactly one slot.
func DeltaBetween(s *Space, a, b Total) (Delta, error) {
	if err := s.Validate(a); err != nil {
		return Delta{}, err
	}
	if err := s.Validate(b); err != nil {
		return Delta{}, err
	}
	idx := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if idx >= 0 {
			return Delta{}, fmt.Errorf("%w: %v and %v differ in more than one variable",
				ErrInvariantViolation, a, b)
		}
		idx = i
	}
	if idx < 0 {
		return Delta{}, fmt.Errorf("%w: %v and %v are identical", ErrInvariantViolation, a, b)
	}
	return NewDelta(idx, a[idx], b[idx], s.vars[idx].Kind.Reversible()), nil
}

// Apply returns the state reached by performing d from t.
// An omnidirectional delta may be applied from either endpoint.
func (d Delta) Apply(t Total) (Total, error) {
	if d.Var < 0 || d.Var >= len(t) {
		return nil, fmt.Errorf("%w: delta on variable %d, state has %d", ErrStateLength, d.Var, len(t))
	}
	out := t.Clone()
	switch {
	case t[d.Var] == d.Before:
		out[d.Var] = d.After
	case d.Omni && t[d.Var] == d.After:
		out[d.Var] = d.Before
	default:
		return nil, fmt.Errorf("%w: %s does not apply to %v", ErrInvariantViolation, d, t)
	}
	return out, nil
}

// SatisfiedBy reports whether t already holds the delta's target value.
func (d Delta) SatisfiedBy(t Total) bool {
	return d.Var >= 0 && d.Var < len(t) && t[d.Var] == d.After
}

// String renders "x1:0->1" for directed deltas and "x1:0<->1" for omnidirectional ones.
func (d Delta) String() string {
	arrow := "->"
	if d.Omni {
		arrow = "<->"
	}
	return fmt.Sprintf("x%d:%d%s%d", d.Var, d.Before, arrow, d.After)
}
