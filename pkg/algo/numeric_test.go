package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeric(t *testing.T) {
	s := make([]int, 5)
	Iota(s, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s)

	assert.Equal(t, 15, Accumulate(s, 0))
	assert.Equal(t, 120, AccumulateFunc(s, 1, func(acc, v int) int { return acc * v }))
	assert.Equal(t, 15, Reduce(s, 0))
	assert.Equal(t, 32, InnerProduct([]int{1, 2, 3}, []int{4, 5, 6}, 0))
	assert.Equal(t, []int{1, 3, 6, 10, 15}, PartialSum(nil, s))
	assert.Equal(t, []int{1, 3, 6, 10, 15}, InclusiveScan(nil, s))
	assert.Equal(t, []int{0, 1, 3, 6, 10}, ExclusiveScan(nil, s, 0))
	assert.Equal(t, []int{2, 2, 3, 4}, AdjacentDifference(nil, []int{2, 4, 7, 11}))
	assert.Equal(t, 14, TransformReduce([]int{1, 2, 3}, 0,
		func(a, b int) int { return a + b },
		func(v int) int { return v * v }))
}

func TestMinMax(t *testing.T) {
	s := []int{3, 1, 4, 1, 5, 9, 2, 9}

	assert.Equal(t, 1, MinElement(s))
	assert.Equal(t, 5, MaxElement(s))
	lo, hi := MinMaxElement(s)
	assert.Equal(t, 1, lo, "first smallest")
	assert.Equal(t, 7, hi, "last largest")
	assert.Equal(t, 0, MaxElement([]int{}))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, 0, Clamp(-1, 0, 10))
	assert.Equal(t, 5, Clamp(5, 0, 10))
}

func TestPermutations(t *testing.T) {
	s := []int{1, 2, 3}
	var seen [][]int
	for {
		seen = append(seen, append([]int(nil), s...))
		if !NextPermutation(s) {
			break
		}
	}

	assert.Equal(t, [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}, seen)
	assert.Equal(t, []int{1, 2, 3}, s, "wraps to the smallest permutation")

	p := []int{2, 1, 3}
	assert.True(t, PrevPermutation(p))
	assert.Equal(t, []int{1, 3, 2}, p)
	assert.False(t, PrevPermutation([]int{1, 2}))
}

func TestComparison(t *testing.T) {
	assert.True(t, Equal([]int{1, 2}, []int{1, 2}))
	assert.False(t, Equal([]int{1, 2}, []int{1, 2, 3}))
	assert.True(t, LexicographicalCompare([]rune("abc"), []rune("abd")))
	assert.True(t, LexicographicalCompare([]rune("ab"), []rune("abc")))
	assert.False(t, LexicographicalCompare([]rune("abc"), []rune("abc")))
	assert.True(t, IsPermutation([]int{1, 2, 3, 3}, []int{3, 1, 3, 2}))
	assert.False(t, IsPermutation([]int{1, 2, 2}, []int{1, 1, 2}))
}
