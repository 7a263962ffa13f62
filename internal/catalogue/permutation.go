package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerPermutation(s *registry.Section) {
	s.Add("is_permutation", "ExampleOne", func(c *check.C) {
		c.True(algo.IsPermutation([]int{1, 2, 3, 3}, []int{3, 1, 3, 2}), "same multiset")
		c.False(algo.IsPermutation([]int{1, 2, 3, 3}, []int{3, 1, 2, 2}), "different counts")
	})

	s.Add("next_permutation", "ExampleOne", func(c *check.C) {
		v := []rune("abc")
		var seen []string
		for {
			seen = append(seen, string(v))
			if !algo.NextPermutation(v) {
				break
			}
		}
		c.Equal([]string{"abc", "acb", "bac", "bca", "cab", "cba"}, seen, "every permutation in order")
		c.Equal("abc", string(v), "wraps around to the smallest")
	})

	s.Add("prev_permutation", "ExampleOne", func(c *check.C) {
		v := []int{3, 1, 2}
		c.True(algo.PrevPermutation(v), "a smaller permutation exists")
		c.Equal([]int{2, 3, 1}, v, "previous permutation")

		w := []int{1, 2, 3}
		c.False(algo.PrevPermutation(w), "already the smallest")
		c.Equal([]int{3, 2, 1}, w, "wraps around to the greatest")
	})
}
