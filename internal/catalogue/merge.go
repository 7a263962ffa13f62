package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerSortedRanges(s *registry.Section) {
	s.Add("merge", "ExampleOne", func(c *check.C) {
		a := []int{1, 3, 5, 7}
		b := []int{2, 3, 4, 8}
		c.Equal([]int{1, 2, 3, 3, 4, 5, 7, 8}, algo.Merge(nil, a, b), "merged sorted slices")
	})
	s.Add("merge", "ExampleTwoStable", func(c *check.C) {
		a := []person{{20, "a1"}, {30, "a2"}}
		b := []person{{20, "b1"}, {25, "b2"}}
		want := []person{{20, "a1"}, {20, "b1"}, {25, "b2"}, {30, "a2"}}
		c.Equal(want, algo.MergeFunc(nil, a, b, byAge), "equal ages from the first slice come first")
	})

	s.Add("inplace_merge", "ExampleOne", func(c *check.C) {
		v := []int{1, 4, 9, 2, 3, 10}
		algo.InplaceMerge(v, 3)
		c.Equal([]int{1, 2, 3, 4, 9, 10}, v, "two sorted runs merged")
	})
}
