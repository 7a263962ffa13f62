package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isFour(i int) bool { return i == 4 }

func TestQuantifiers_EmptyInput(t *testing.T) {
	var empty []int

	assert.False(t, AnyOf(empty, isFour), "AnyOf over nothing is false")
	assert.True(t, AllOf(empty, isFour), "AllOf over nothing is true")
	assert.True(t, NoneOf(empty, isFour), "NoneOf over nothing is true")
}

func TestQuantifiers(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 4, 5}

	assert.True(t, AnyOf(numbers, isFour))
	assert.False(t, AllOf(numbers, isFour))
	assert.False(t, NoneOf(numbers, isFour))
	assert.True(t, AllOf([]int{4, 4}, isFour))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		value    int
		expected int
	}{
		{name: "present", input: []int{1, 2, 3, 4, 5}, value: 3, expected: 2},
		{name: "first of duplicates", input: []int{7, 1, 7}, value: 7, expected: 0},
		{name: "missing returns len", input: []int{1, 2, 3, 4, 5}, value: 9, expected: 5},
		{name: "empty returns len", input: nil, value: 1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Find(tt.input, tt.value))
		})
	}
}

func TestSubsequenceSearches(t *testing.T) {
	s := []int{1, 2, 3, 1, 2, 3, 4}

	assert.Equal(t, 0, Search(s, []int{1, 2, 3}))
	assert.Equal(t, 3, FindEnd(s, []int{1, 2, 3}))
	assert.Equal(t, len(s), Search(s, []int{3, 2}))
	assert.Equal(t, len(s), FindEnd(s, []int{}))
	assert.Equal(t, 0, Search(s, []int{}))
	assert.Equal(t, 1, Search([]int{1}, []int{1, 2}))
}

func TestSearchN(t *testing.T) {
	s := []int{1, 0, 0, 1, 0, 0, 0, 1}

	assert.Equal(t, 4, SearchN(s, 3, 0))
	assert.Equal(t, 1, SearchN(s, 2, 0))
	assert.Equal(t, len(s), SearchN(s, 4, 0))
	assert.Equal(t, 0, SearchN(s, 0, 9))
}

func TestMismatch(t *testing.T) {
	assert.Equal(t, 4, Mismatch([]int{1, 2, 3, 4, 42}, []int{1, 2, 3, 4, 5}))
	assert.Equal(t, 2, Mismatch([]int{1, 2}, []int{1, 2, 3}))

	lessThan := func(a, b int) bool { return a < b }
	assert.Equal(t, 4, MismatchFunc([]int{0, 1, 2, 3, 42}, []int{1, 2, 3, 4, 41}, lessThan))
}

func TestAdjacentFindAndFirstOf(t *testing.T) {
	assert.Equal(t, 2, AdjacentFind([]int{1, 2, 3, 3, 4}))
	assert.Equal(t, 3, AdjacentFind([]int{1, 2, 3}))
	assert.Equal(t, 1, FindFirstOf([]rune("hello"), []rune("aeiou")))
	assert.Equal(t, 3, FindFirstOf([]int{1, 2, 3}, []int{}))
}

func TestForEachN_ClampsCount(t *testing.T) {
	sum := 0
	pos := ForEachN([]int{1, 2, 3}, 10, func(i int) { sum += i })

	assert.Equal(t, 3, pos)
	assert.Equal(t, 6, sum)
}
