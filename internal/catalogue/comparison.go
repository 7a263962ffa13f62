package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerComparison(s *registry.Section) {
	s.Add("equal", "ExampleOne", func(c *check.C) {
		c.True(algo.Equal([]int{1, 2, 3}, []int{1, 2, 3}), "same elements")
		c.False(algo.Equal([]int{1, 2, 3}, []int{1, 2}), "different lengths")
		c.True(algo.EqualFunc([]int{1, 2, 3}, []string{"1", "22", "333"}, func(i int, s string) bool { return len(s) == i }),
			"lengths match position by position")
	})

	s.Add("lexicographical_compare", "ExampleOne", func(c *check.C) {
		c.True(algo.LexicographicalCompare([]rune("apple"), []rune("apply")), "apple before apply")
		c.True(algo.LexicographicalCompare([]rune("app"), []rune("apple")), "a prefix orders first")
		c.False(algo.LexicographicalCompare([]rune("b"), []rune("abc")), "b after abc")
		c.False(algo.LexicographicalCompare([]rune("same"), []rune("same")), "equal slices are not less")
	})
}
