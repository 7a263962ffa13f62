package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func isEven(i int) bool { return i%2 == 0 }

func registerPartitioning(s *registry.Section) {
	s.Add("is_partitioned", "ExampleOne", func(c *check.C) {
		c.True(algo.IsPartitioned([]int{2, 4, 6, 1, 3}, isEven), "evens before odds")
		c.False(algo.IsPartitioned([]int{2, 1, 4}, isEven), "an even after an odd")
		c.True(algo.IsPartitioned([]int{}, isEven), "empty slice is partitioned")
	})

	s.Add("partition", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		p := algo.Partition(v, isEven)
		c.Equal(4, p, "number of even elements")
		c.True(algo.AllOf(v[:p], isEven), "first group holds the evens")
		c.True(algo.NoneOf(v[p:], isEven), "second group holds the odds")
		c.True(algo.IsPermutation([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, v), "no element lost")
	})

	s.Add("stable_partition", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
		p := algo.StablePartition(v, isEven)
		c.Equal(4, p, "number of even elements")
		c.Equal([]int{2, 4, 6, 8, 1, 3, 5, 7, 9}, v, "both groups keep their relative order")
	})

	s.Add("partition_copy", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		evens, odds := algo.PartitionCopy(nil, nil, v, isEven)
		c.Equal([]int{2, 4}, evens, "elements satisfying the predicate")
		c.Equal([]int{1, 3, 5}, odds, "remaining elements")
	})

	s.Add("partition_point", "ExampleOne", func(c *check.C) {
		v := []int{2, 4, 6, 8, 1, 3, 5}
		p := algo.PartitionPoint(v, isEven)
		c.Equal(4, p, "first element of the second group")
		c.Equal(1, v[p], "value at the partition point")
	})
}
