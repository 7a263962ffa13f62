package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerSet(s *registry.Section) {
	s.Add("includes", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 2, 3, 5, 8}
		c.True(algo.Includes(v, []int{2, 3, 8}), "every element present")
		c.True(algo.Includes(v, []int{2, 2}), "duplicates counted")
		c.False(algo.Includes(v, []int{2, 2, 2}), "only two 2s available")
		c.True(algo.Includes(v, []int{}), "the empty set is always included")
	})

	s.Add("set_union", "ExampleOne", func(c *check.C) {
		a := []int{1, 1, 2, 3, 4, 5, 6}
		b := []int{1, 1, 1, 4, 5, 6, 7, 8, 9}
		c.Equal([]int{1, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9}, algo.SetUnion(nil, a, b), "multiset union")
	})

	s.Add("set_intersection", "ExampleOne", func(c *check.C) {
		a := []int{1, 1, 2, 3, 4, 5, 6}
		b := []int{1, 1, 1, 4, 5, 6, 7, 8, 9}
		c.Equal([]int{1, 1, 4, 5, 6}, algo.SetIntersection(nil, a, b), "multiset intersection")
	})

	s.Add("set_difference", "ExampleOne", func(c *check.C) {
		a := []int{1, 1, 1, 2, 3, 4}
		b := []int{1, 3}
		c.Equal([]int{1, 1, 2, 4}, algo.SetDifference(nil, a, b), "one 1 and the 3 removed")
	})

	s.Add("set_symmetric_difference", "ExampleOne", func(c *check.C) {
		a := []int{1, 2, 2, 3, 5}
		b := []int{2, 3, 4, 4}
		c.Equal([]int{1, 2, 4, 4, 5}, algo.SetSymmetricDifference(nil, a, b), "elements in exactly one input")
	})
}
