package state

import (
	"strconv"
	"strings"
)

// SlotKind tags the content of a Slot.
type SlotKind uint8

const (
	// SlotWildcard holds no constraint ("don't care"). It is the zero value.
	SlotWildcard SlotKind = iota
	// SlotConcrete pins a value.
	SlotConcrete
	// SlotSaturated marks a change of unbounded magnitude, used by Diff for
	// reversible variables whose direction is irrelevant.
	SlotSaturated
)

// Slot is one position of a Partial.
type Slot struct {
	Kind  SlotKind
	Value int
}

// Concrete returns a slot pinned to v.
func Concrete(v int) Slot { return Slot{Kind: SlotConcrete, Value: v} }

// Wildcard returns an unconstrained slot.
func Wildcard() Slot { return Slot{Kind: SlotWildcard} }

// Saturated returns a saturated-magnitude slot.
func Saturated() Slot { return Slot{Kind: SlotSaturated} }

// Matches reports whether v satisfies the slot. Only concrete slots constrain.
func (s Slot) Matches(v int) bool {
	return s.Kind != SlotConcrete || s.Value == v
}

// String renders "." for wildcards, "*" for saturated slots and the decimal
// value otherwise.
func (s Slot) String() string {
	switch s.Kind {
	case SlotConcrete:
		return strconv.Itoa(s.Value)
	case SlotSaturated:
		return "*"
	default:
		return "."
	}
}

// Partial is a state description where every slot is concrete, wildcard, or
// saturated. Fewer concrete slots means less specific.
type Partial []Slot

// Matches reports whether every concrete slot agrees with t.
func (p Partial) Matches(t Total) bool {
	if len(p) != len(t) {
		return false
	}
	for i, s := range p {
		if !s.Matches(t[i]) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether p matches at least one of ts.
func (p Partial) MatchesAny(ts []Total) bool {
	for _, t := range ts {
		if p.Matches(t) {
			return true
		}
	}
	return false
}

// ConcreteIndices lists the positions of concrete slots in ascending order.
func (p Partial) ConcreteIndices() []int {
	var idx []int
	for i, s := range p {
		if s.Kind == SlotConcrete {
			idx = append(idx, i)
		}
	}
	return idx
}

// Specificity is the number of concrete slots.
func (p Partial) Specificity() int { return len(p.ConcreteIndices()) }

// Restrict keeps the concrete slots at keep and turns every other slot into a wildcard.
func (p Partial) Restrict(keep []int) Partial {
	out := make(Partial, len(p))
	for _, i := range keep {
		if i >= 0 && i < len(p) && p[i].Kind == SlotConcrete {
			out[i] = p[i]
		}
	}
	return out
}

// Equal reports slot-wise equality.
func (p Partial) Equal(o Partial) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// String joins the slot renderings.
func (p Partial) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Common returns, per variable, the value shared by every state in ts, or a
// wildcard where they disagree. It returns nil for an empty input.
func Common(ts []Total) Partial {
	if len(ts) == 0 {
		return nil
	}
	out := make(Partial, len(ts[0]))
	for i, v := range ts[0] {
		out[i] = Concrete(v)
	}
	for _, t := range ts[1:] {
		for i := range out {
			if out[i].Kind == SlotConcrete && (i >= len(t) || t[i] != out[i].Value) {
				out[i] = Wildcard()
			}
		}
	}
	return out
}

// Diff describes a → b: unchanged slots are wildcards, changed slots of
// reversible variables saturate, and other changes carry b-a.
func Diff(s *Space, a, b Total) Partial {
	out := make(Partial, len(a))
	for i := range a {
		switch {
		case a[i] == b[i]:
			out[i] = Wildcard()
		case s.vars[i].Kind.Reversible():
			out[i] = Saturated()
		default:
			out[i] = Concrete(b[i] - a[i])
		}
	}
	return out
}
