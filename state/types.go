package state

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for state modelling.
var (
	// ErrCardinality indicates a cardinality outside the range allowed by the variable kind.
	ErrCardinality = errors.New("state: cardinality does not fit variable kind")

	// ErrUnknownKind indicates a kind name that ParseKind does not recognise.
	ErrUnknownKind = errors.New("state: unknown variable kind")

	// ErrStateLength indicates a total state with the wrong number of slots.
	ErrStateLength = errors.New("state: state length does not match variable count")

	// ErrStateRange indicates a slot value outside [0, cardinality).
	ErrStateRange = errors.New("state: value out of range")

	// ErrInvariantViolation indicates two states that were expected to differ
	// in exactly one variable. It always signals an internal defect.
	ErrInvariantViolation = errors.New("state: invariant violation")
)

// Cardinality bounds for numeric kinds.
const (
	BinaryCardinality  = 2
	MinNumericCardinal = 3
	MaxNumericCardinal = 8
)

// Kind selects how a variable may change between states.
type Kind int

const (
	// BinaryReversible is an on/off switch that can be flipped both ways.
	BinaryReversible Kind = iota
	// BinaryIrreversible is a one-shot flag (an item picked up, a wall blown open).
	BinaryIrreversible
	// BinaryCyclic is a two-position rotating switch.
	BinaryCyclic
	// NumericReversible is a multi-position lever settable to any position.
	NumericReversible
	// NumericIrreversible leaves 0 once, for any positive value, and never returns.
	NumericIrreversible
	// NumericCyclic is a rotating dial advancing one step at a time.
	NumericCyclic
)

var kindNames = [...]string{
	BinaryReversible:    "binary-reversible",
	BinaryIrreversible:  "binary-irreversible",
	BinaryCyclic:        "binary-cyclic",
	NumericReversible:   "numeric-reversible",
	NumericIrreversible: "numeric-irreversible",
	NumericCyclic:       "numeric-cyclic",
}

// Kinds lists every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{BinaryReversible, BinaryIrreversible, BinaryCyclic,
		NumericReversible, NumericIrreversible, NumericCyclic}
}

// String returns the kebab-case kind name used in configuration files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Binary reports whether the kind has exactly two values.
func (k Kind) Binary() bool {
	return k == BinaryReversible || k == BinaryIrreversible || k == BinaryCyclic
}

// Reversible reports whether any value can be reached from any other directly.
func (k Kind) Reversible() bool {
	return k == BinaryReversible || k == NumericReversible
}

// Irreversible reports whether the variable only ever leaves 0.
func (k Kind) Irreversible() bool {
	return k == BinaryIrreversible || k == NumericIrreversible
}

// Cyclic reports whether the variable advances v → (v+1) mod cardinality.
func (k Kind) Cyclic() bool {
	return k == BinaryCyclic || k == NumericCyclic
}

// Variable is one independent axis of world progression.
// It is immutable once constructed.
type Variable struct {
	Index       int
	Kind        Kind
	Cardinality int
}

// NewVariable validates cardinality against kind.
// Binary kinds require exactly 2 values; numeric kinds require [3, 8].
func NewVariable(index int, kind Kind, cardinality int) (Variable, error) {
	if kind < BinaryReversible || kind > NumericCyclic {
		return Variable{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if kind.Binary() && cardinality != BinaryCardinality {
		return Variable{}, fmt.Errorf("%w: %s needs %d values, got %d",
			ErrCardinality, kind, BinaryCardinality, cardinality)
	}
	if !kind.Binary() && (cardinality < MinNumericCardinal || cardinality > MaxNumericCardinal) {
		return Variable{}, fmt.Errorf("%w: %s needs %d..%d values, got %d",
			ErrCardinality, kind, MinNumericCardinal, MaxNumericCardinal, cardinality)
	}
	return Variable{Index: index, Kind: kind, Cardinality: cardinality}, nil
}

// Total is one value per Variable. Totals produced by a Space are never
// mutated; every transition produces a new vector.
type Total []int

// Equal reports component-wise equality.
func (t Total) Equal(o Total) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (t Total) Clone() Total {
	c := make(Total, len(t))
	copy(c, t)
	return c
}
