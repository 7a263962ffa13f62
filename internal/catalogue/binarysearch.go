package catalogue

import (
	"strings"

	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerBinarySearch(s *registry.Section) {
	s.Add("lower_bound", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 4, 4, 4, 6, 8}
		c.Equal(2, algo.LowerBound(v, 4), "first element not less than 4")
		c.Equal(5, algo.LowerBound(v, 5), "insertion point of a missing value")
		c.Equal(len(v), algo.LowerBound(v, 9), "past every element: one past the end")
	})

	s.Add("upper_bound", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 4, 4, 4, 6, 8}
		c.Equal(5, algo.UpperBound(v, 4), "first element greater than 4")
		c.Equal(0, algo.UpperBound(v, 0), "before every element")
	})

	s.Add("binary_search", "ExampleOne", func(c *check.C) {
		v := []int{1, 3, 5, 7, 9}
		c.True(algo.BinarySearch(v, 7), "7 is present")
		c.False(algo.BinarySearch(v, 4), "4 is absent")
	})
	s.Add("binary_search", "ExampleTwoWithComparator", func(c *check.C) {
		words := []string{"Apple", "banana", "Cherry"}
		ignoreCase := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
		c.True(algo.BinarySearchFunc(words, "CHERRY", ignoreCase), "case-insensitive match")
	})

	s.Add("equal_range", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 4, 4, 4, 6, 8}
		lo, hi := algo.EqualRange(v, 4)
		c.Equal([]int{4, 4, 4}, v[lo:hi], "run of fours")
		lo, hi = algo.EqualRange(v, 5)
		c.Equal(lo, hi, "missing value: empty run")
		c.Equal(5, lo, "empty run sits at the insertion point")
	})
}
