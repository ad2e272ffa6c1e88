package state_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlebox/state"
)

func mustSpace(t *testing.T, vars ...state.Variable) *state.Space {
	t.Helper()
	s, err := state.NewSpace(vars)
	require.NoError(t, err)
	return s
}

func v(kind state.Kind, card int) state.Variable {
	return state.Variable{Kind: kind, Cardinality: card}
}

func TestNewVariable_Cardinality(t *testing.T) {
	cases := []struct {
		name string
		kind state.Kind
		card int
		ok   bool
	}{
		{"BinaryTwo", state.BinaryReversible, 2, true},
		{"BinaryThree", state.BinaryCyclic, 3, false},
		{"NumericLow", state.NumericCyclic, 2, false},
		{"NumericMin", state.NumericIrreversible, 3, true},
		{"NumericMax", state.NumericReversible, 8, true},
		{"NumericHigh", state.NumericReversible, 9, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := state.NewVariable(0, tc.kind, tc.card)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, state.ErrCardinality)
			}
		})
	}
	_, err := state.NewVariable(0, state.Kind(42), 2)
	assert.ErrorIs(t, err, state.ErrUnknownKind)
}

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range state.Kinds() {
		got, err := state.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := state.ParseKind("quantum")
	assert.ErrorIs(t, err, state.ErrUnknownKind)
}

func TestNewSpace_Errors(t *testing.T) {
	_, err := state.NewSpace(nil)
	assert.ErrorIs(t, err, state.ErrNoVariables)
	_, err = state.NewSpace([]state.Variable{v(state.BinaryCyclic, 4)})
	assert.ErrorIs(t, err, state.ErrCardinality)
}

func TestEnumerateAll_CountAndOrder(t *testing.T) {
	configs := [][]state.Variable{
		{v(state.BinaryReversible, 2)},
		{v(state.NumericCyclic, 3), v(state.BinaryReversible, 2)},
		{v(state.BinaryIrreversible, 2), v(state.NumericReversible, 4), v(state.NumericCyclic, 5)},
		{v(state.NumericIrreversible, 8), v(state.NumericIrreversible, 8)},
	}
	for _, vars := range configs {
		s := mustSpace(t, vars...)
		all := s.EnumerateAll()
		want := 1
		for _, x := range vars {
			want *= x.Cardinality
		}
		require.Len(t, all, want)
		assert.Equal(t, want, s.Size())

		for i, tot := range all {
			r, err := s.Rank(tot)
			require.NoError(t, err)
			assert.Equal(t, i, r, "rank must equal enumeration position")
			back, err := s.Unrank(r)
			require.NoError(t, err)
			assert.True(t, back.Equal(tot))
		}
	}

	s := mustSpace(t, v(state.NumericCyclic, 3), v(state.BinaryReversible, 2))
	want := []state.Total{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	if diff := cmp.Diff(want, s.EnumerateAll()); diff != "" {
		t.Errorf("EnumerateAll mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	s := mustSpace(t, v(state.NumericCyclic, 3), v(state.BinaryReversible, 2))
	assert.NoError(t, s.Validate(state.Total{2, 1}))
	assert.ErrorIs(t, s.Validate(state.Total{2}), state.ErrStateLength)
	assert.ErrorIs(t, s.Validate(state.Total{3, 0}), state.ErrStateRange)
	assert.ErrorIs(t, s.Validate(state.Total{0, -1}), state.ErrStateRange)
	_, err := s.Unrank(6)
	assert.ErrorIs(t, err, state.ErrStateRange)
}

func TestDeltaBetween(t *testing.T) {
	s := mustSpace(t, v(state.NumericCyclic, 3), v(state.BinaryReversible, 2))

	d, err := state.DeltaBetween(s, state.Total{0, 0}, state.Total{1, 0})
	require.NoError(t, err)
	assert.Equal(t, state.Delta{Var: 0, Before: 0, After: 1}, d)

	up, err := state.DeltaBetween(s, state.Total{1, 0}, state.Total{1, 1})
	require.NoError(t, err)
	down, err := state.DeltaBetween(s, state.Total{2, 1}, state.Total{2, 0})
	require.NoError(t, err)
	assert.Equal(t, up, down, "both directions of a reversible change are one gate")
	assert.True(t, up.Omni)

	_, err = state.DeltaBetween(s, state.Total{0, 0}, state.Total{1, 1})
	assert.ErrorIs(t, err, state.ErrInvariantViolation)
	_, err = state.DeltaBetween(s, state.Total{0, 0}, state.Total{0, 0})
	assert.ErrorIs(t, err, state.ErrInvariantViolation)
}

func TestDelta_ApplyRoundTrip(t *testing.T) {
	s := mustSpace(t, v(state.NumericReversible, 4), v(state.NumericIrreversible, 3), v(state.BinaryCyclic, 2))
	all := s.EnumerateAll()
	for _, a := range all {
		for _, b := range all {
			d, err := state.DeltaBetween(s, a, b)
			if err != nil {
				continue
			}
			got, err := d.Apply(a)
			require.NoError(t, err)
			assert.True(t, got.Equal(b), "%v + %s = %v, want %v", a, d, got, b)
		}
	}

	d := state.NewDelta(1, 0, 2, false)
	_, err := d.Apply(state.Total{0, 1, 0})
	assert.ErrorIs(t, err, state.ErrInvariantViolation)
	_, err = d.Apply(state.Total{0})
	assert.ErrorIs(t, err, state.ErrStateLength)
}

func TestDelta_SatisfiedByAndString(t *testing.T) {
	d := state.NewDelta(1, 1, 0, true)
	assert.Equal(t, "x1:0<->1", d.String())
	assert.True(t, d.SatisfiedBy(state.Total{0, 1}))
	assert.False(t, d.SatisfiedBy(state.Total{0, 0}))
	assert.Equal(t, "x0:1->2", state.NewDelta(0, 1, 2, false).String())
}

func TestCommonAndPartial(t *testing.T) {
	p := state.Common([]state.Total{{2, 0, 1}, {2, 1, 1}, {2, 0, 1}})
	want := state.Partial{state.Concrete(2), state.Wildcard(), state.Concrete(1)}
	assert.True(t, want.Equal(p), "got %v", p)
	assert.Equal(t, []int{0, 2}, p.ConcreteIndices())
	assert.Equal(t, 2, p.Specificity())
	assert.True(t, p.Matches(state.Total{2, 5, 1}))
	assert.False(t, p.Matches(state.Total{1, 0, 1}))
	assert.False(t, p.Matches(state.Total{2, 0}))
	assert.True(t, p.MatchesAny([]state.Total{{0, 0, 0}, {2, 0, 1}}))

	r := p.Restrict([]int{2})
	assert.Equal(t, "..1", r.String())
	assert.Nil(t, state.Common(nil))
}

func TestDiffAndFormat(t *testing.T) {
	s := mustSpace(t, v(state.BinaryIrreversible, 2), v(state.NumericCyclic, 3), v(state.BinaryReversible, 2))
	assert.Equal(t, "1..", state.Diff(s, state.Total{0, 0, 0}, state.Total{1, 0, 0}).String())
	assert.Equal(t, ".-2.", state.Diff(s, state.Total{0, 2, 0}, state.Total{0, 0, 0}).String())
	assert.Equal(t, "..*", state.Diff(s, state.Total{0, 0, 1}, state.Total{0, 0, 0}).String())

	assert.Equal(t, "T2F", s.Format(state.Total{1, 2, 0}))
	cond := state.Partial{state.Wildcard(), state.Concrete(2), state.Concrete(1)}
	assert.Equal(t, ".2T", s.FormatPartial(cond))
}
