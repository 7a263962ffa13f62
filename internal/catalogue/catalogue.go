// Package catalogue holds the worked examples, one group per algorithm,
// registered by category.
package catalogue

import "algocat/internal/registry"

// Categories in catalogue order
const (
	NonModifying = "non-modifying"
	Modifying    = "modifying"
	Partitioning = "partitioning"
	Sorting      = "sorting"
	BinarySearch = "binary-search"
	SortedRanges = "sorted-ranges"
	Set          = "set"
	Heap         = "heap"
	MinMax       = "min-max"
	Comparison   = "comparison"
	Permutation  = "permutation"
	Numeric      = "numeric"
)

// Load registers every example in a new registry. A non-nil error means a
// case was registered twice or under an invalid name.
func Load() (*registry.Registry, error) {
	r := registry.New()
	registerNonModifying(r.Section(NonModifying))
	registerModifying(r.Section(Modifying))
	registerPartitioning(r.Section(Partitioning))
	registerSorting(r.Section(Sorting))
	registerBinarySearch(r.Section(BinarySearch))
	registerSortedRanges(r.Section(SortedRanges))
	registerSet(r.Section(Set))
	registerHeap(r.Section(Heap))
	registerMinMax(r.Section(MinMax))
	registerComparison(r.Section(Comparison))
	registerPermutation(r.Section(Permutation))
	registerNumeric(r.Section(Numeric))
	if err := r.Err(); err != nil {
		return nil, err
	}
	return r, nil
}
