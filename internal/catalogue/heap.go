package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerHeap(s *registry.Section) {
	s.Add("make_heap", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5, 6, 5, 4}
		algo.MakeHeap(v)
		c.Equal([]int{6, 5, 5, 4, 2, 3, 1, 4}, v, "max-heap layout")

		algo.PopHeap(v)
		c.Equal([]int{5, 4, 5, 4, 2, 3, 1, 6}, v, "largest moved to the end")
		c.True(algo.IsHeap(v[:len(v)-1]), "remaining prefix is a heap")
	})

	s.Add("push_heap", "ExampleOne", func(c *check.C) {
		v := []int{9, 5, 4, 1, 1, 3}
		v = append(v, 6)
		algo.PushHeap(v)
		c.Equal([]int{9, 5, 6, 1, 1, 3, 4}, v, "6 sifted above its parent")
		c.True(algo.IsHeap(v), "still a heap")
	})

	s.Add("pop_heap", "ExampleOne", func(c *check.C) {
		v := []int{9, 5, 4, 1, 1, 3}
		algo.PopHeap(v)
		c.Equal(9, v[len(v)-1], "largest element at the end")
		c.Equal(5, v[0], "next largest at the root")
		c.True(algo.IsHeap(v[:len(v)-1]), "remaining prefix is a heap")
	})

	s.Add("sort_heap", "ExampleOne", func(c *check.C) {
		v := []int{3, 1, 4, 1, 5, 9, 2, 6}
		algo.MakeHeap(v)
		algo.SortHeap(v)
		c.Equal([]int{1, 1, 2, 3, 4, 5, 6, 9}, v, "ascending order")
	})

	s.Add("is_heap", "ExampleOne", func(c *check.C) {
		c.True(algo.IsHeap([]int{9, 5, 4, 1, 1, 3}), "valid max-heap")
		c.False(algo.IsHeap([]int{1, 2, 3}), "root smaller than its children")
		c.True(algo.IsHeap([]int{}), "empty slice is a heap")
	})

	s.Add("is_heap_until", "ExampleOne", func(c *check.C) {
		v := []int{9, 5, 4, 1, 1, 3, 7}
		c.Equal(6, algo.IsHeapUntil(v), "7 is larger than its parent 4")
	})
}
