package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinations_LexicographicOrder(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(p []int) bool {
		got = append(got, append([]int(nil), p...))
		return true
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}

func TestCombinations_StopsEarly(t *testing.T) {
	calls := 0
	combinations(5, 3, func([]int) bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 2, calls)
}
