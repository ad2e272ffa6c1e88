package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/puzzlebox/rng"
)

// scripted replays a fixed list of draws, clamped into range.
type scripted struct {
	draws []int
	pos   int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	return v % n
}

func TestNew_SeedDeterminism(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	z, d := rng.New(0), rng.New(rng.DefaultSeed)
	assert.Equal(t, z.Int63(), d.Int63(), "seed 0 must map to DefaultSeed")
}

func TestPick(t *testing.T) {
	src := &scripted{draws: []int{2}}
	assert.Equal(t, -1, rng.Pick(src, 0))
	assert.Equal(t, 0, rng.Pick(src, 1))
	assert.Equal(t, 0, src.pos, "n==1 must not consume a draw")
	assert.Equal(t, 2, rng.Pick(src, 5))
}

func TestSample(t *testing.T) {
	// Always drawing 0 keeps the identity permutation.
	assert.Equal(t, []int{0, 1, 2}, rng.Sample(&scripted{draws: []int{0}}, 6, 3))
	// Drawing 1 swaps each slot with its right neighbour.
	assert.Equal(t, []int{1, 2, 3}, rng.Sample(&scripted{draws: []int{1}}, 6, 3))
	assert.Nil(t, rng.Sample(&scripted{draws: []int{0}}, 2, 3))

	got := rng.Sample(rng.New(7), 20, 20)
	seen := make(map[int]bool)
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, 20)
}
