package catalogue

import (
	"strconv"

	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerNumeric(s *registry.Section) {
	s.Add("iota", "ExampleOne", func(c *check.C) {
		v := make([]int, 5)
		algo.Iota(v, -2)
		c.Equal([]int{-2, -1, 0, 1, 2}, v, "consecutive values from -2")
	})

	s.Add("accumulate", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		c.Equal(15, algo.Accumulate(v, 0), "sum")
		c.Equal(120, algo.AccumulateFunc(v, 1, func(acc, i int) int { return acc * i }), "product")
	})
	s.Add("accumulate", "ExampleTwoFold", func(c *check.C) {
		v := []int{1, 2, 3}
		joined := algo.AccumulateFunc(v, "0", func(acc string, i int) string { return acc + "-" + strconv.Itoa(i) })
		c.Equal("0-1-2-3", joined, "left fold into a string")
	})

	s.Add("reduce", "ExampleOne", func(c *check.C) {
		v := []float64{0.5, 1.5, 2}
		c.Equal(4.0, algo.Reduce(v, 0), "sum of floats")
	})

	s.Add("inner_product", "ExampleOne", func(c *check.C) {
		a := []int{1, 2, 3}
		b := []int{4, 5, 6}
		c.Equal(32, algo.InnerProduct(a, b, 0), "1*4 + 2*5 + 3*6")
	})

	s.Add("transform_reduce", "ExampleOne", func(c *check.C) {
		words := []string{"go", "is", "fun"}
		total := algo.TransformReduce(words, 0,
			func(a, b int) int { return a + b },
			func(w string) int { return len(w) })
		c.Equal(7, total, "total length")
	})

	s.Add("adjacent_difference", "ExampleOne", func(c *check.C) {
		v := []int{2, 4, 6, 10, 16}
		c.Equal([]int{2, 2, 2, 4, 6}, algo.AdjacentDifference(nil, v), "first element then differences")
	})

	s.Add("partial_sum", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4}
		c.Equal([]int{1, 3, 6, 10}, algo.PartialSum(nil, v), "running totals")
	})

	s.Add("inclusive_scan", "ExampleOne", func(c *check.C) {
		v := []int{3, 1, 4, 1, 5}
		c.Equal([]int{3, 4, 8, 9, 14}, algo.InclusiveScan(nil, v), "totals including each element")
	})

	s.Add("exclusive_scan", "ExampleOne", func(c *check.C) {
		v := []int{3, 1, 4, 1, 5}
		c.Equal([]int{0, 3, 4, 8, 9}, algo.ExclusiveScan(nil, v, 0), "totals excluding each element")
	})
}
