package catalogue

import (
	"cmp"

	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

type person struct {
	Age  int
	Name string
}

func byAge(a, b person) int { return cmp.Compare(a.Age, b.Age) }

func registerSorting(s *registry.Section) {
	s.Add("is_sorted", "ExampleOne", func(c *check.C) {
		c.True(algo.IsSorted([]int{1, 2, 2, 5}), "ascending with duplicates")
		c.False(algo.IsSorted([]int{1, 3, 2}), "3 before 2")
		c.True(algo.IsSorted([]int{}), "empty slice is sorted")
		c.True(algo.IsSortedFunc([]int{9, 5, 1}, func(a, b int) int { return cmp.Compare(b, a) }), "descending order")
	})

	s.Add("is_sorted_until", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 7, 4, 5}
		c.Equal(4, algo.IsSortedUntil(v), "end of the sorted prefix")
		c.Equal(3, algo.IsSortedUntil([]int{1, 2, 3}), "fully sorted: one past the end")
	})

	s.Add("sort", "ExampleOne", func(c *check.C) {
		v := []int{5, 7, 4, 2, 8, 6, 1, 9, 0, 3}
		algo.Sort(v)
		c.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v, "ascending order")
	})
	s.Add("sort", "ExampleTwoWithComparator", func(c *check.C) {
		v := []string{"pear", "fig", "banana", "kiwi"}
		algo.SortFunc(v, func(a, b string) int { return cmp.Compare(len(a), len(b)) })
		c.Equal("fig", v[0], "shortest first")
		c.Equal("banana", v[3], "longest last")
	})

	s.Add("stable_sort", "ExampleOne", func(c *check.C) {
		people := []person{{108, "Zaphod"}, {32, "Arthur"}, {108, "Ford"}}
		algo.StableSortFunc(people, byAge)
		want := []person{{32, "Arthur"}, {108, "Zaphod"}, {108, "Ford"}}
		c.Equal(want, people, "equal ages keep their original order")
	})

	s.Add("partial_sort", "ExampleOne", func(c *check.C) {
		v := []int{5, 7, 4, 2, 8, 6, 1, 9, 0, 3}
		algo.PartialSort(v, 3)
		c.Equal([]int{0, 1, 2}, v[:3], "three smallest in order")
		c.True(algo.AllOf(v[3:], func(i int) bool { return i > 2 }), "the rest are larger")
	})

	s.Add("partial_sort_copy", "ExampleOne", func(c *check.C) {
		v := []int{4, 2, 5, 1, 3}
		dst := make([]int, 3)
		n := algo.PartialSortCopy(dst, v)
		c.Equal(3, n, "number of copied elements")
		c.Equal([]int{1, 2, 3}, dst, "three smallest in order")
		c.Equal([]int{4, 2, 5, 1, 3}, v, "source is unchanged")
	})

	s.Add("nth_element", "ExampleOne", func(c *check.C) {
		v := []int{5, 6, 4, 3, 2, 6, 7, 9, 3}
		mid := len(v) / 2
		algo.NthElement(v, mid)
		c.Equal(5, v[mid], "the median")
		c.True(algo.AllOf(v[:mid], func(i int) bool { return i <= 5 }), "nothing greater before it")
		c.True(algo.AllOf(v[mid+1:], func(i int) bool { return i >= 5 }), "nothing less after it")
	})
}
