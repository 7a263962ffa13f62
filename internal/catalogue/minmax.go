package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerMinMax(s *registry.Section) {
	s.Add("min_element", "ExampleOne", func(c *check.C) {
		v := []int{3, 1, 4, 1, 5}
		c.Equal(1, algo.MinElement(v), "position of the first smallest")
		c.Equal(0, algo.MinElement([]int{}), "empty slice: one past the end")
	})

	s.Add("max_element", "ExampleOne", func(c *check.C) {
		v := []int{3, 9, 4, 9, 5}
		c.Equal(1, algo.MaxElement(v), "position of the first largest")
	})
	s.Add("max_element", "ExampleTwoWithComparator", func(c *check.C) {
		words := []string{"go", "gopher", "gc", "goroutine"}
		i := algo.MaxElementFunc(words, func(a, b string) int { return len(a) - len(b) })
		c.Equal("goroutine", words[i], "longest word")
	})

	s.Add("minmax_element", "ExampleOne", func(c *check.C) {
		v := []int{3, 9, 1, 4, 1, 9, 5}
		lo, hi := algo.MinMaxElement(v)
		c.Equal(2, lo, "first smallest")
		c.Equal(5, hi, "last largest")
	})

	s.Add("clamp", "ExampleOne", func(c *check.C) {
		c.Equal(10, algo.Clamp(42, 0, 10), "above the range")
		c.Equal(0, algo.Clamp(-3, 0, 10), "below the range")
		c.Equal(7, algo.Clamp(7, 0, 10), "inside the range")
	})
}
