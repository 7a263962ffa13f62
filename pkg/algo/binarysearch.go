package algo

import "cmp"

// LowerBound returns the first position in the sorted slice s whose element is
// not less than v, or len(s).
func LowerBound[S ~[]E, E cmp.Ordered](s S, v E) int {
	return LowerBoundFunc(s, v, cmp.Compare[E])
}

// LowerBoundFunc is LowerBound with a comparison function.
func LowerBoundFunc[S ~[]E, E any](s S, v E, cmp func(a, b E) int) int {
	return PartitionPoint(s, func(e E) bool { return cmp(e, v) < 0 })
}

// UpperBound returns the first position in the sorted slice s whose element is
// greater than v, or len(s).
func UpperBound[S ~[]E, E cmp.Ordered](s S, v E) int {
	return UpperBoundFunc(s, v, cmp.Compare[E])
}

// UpperBoundFunc is UpperBound with a comparison function.
func UpperBoundFunc[S ~[]E, E any](s S, v E, cmp func(a, b E) int) int {
	return PartitionPoint(s, func(e E) bool { return cmp(v, e) >= 0 })
}

// BinarySearch reports whether the sorted slice s contains an element
// equivalent to v.
func BinarySearch[S ~[]E, E cmp.Ordered](s S, v E) bool {
	return BinarySearchFunc(s, v, cmp.Compare[E])
}

// BinarySearchFunc is BinarySearch with a comparison function.
func BinarySearchFunc[S ~[]E, E any](s S, v E, cmp func(a, b E) int) bool {
	i := LowerBoundFunc(s, v, cmp)
	return i < len(s) && cmp(v, s[i]) >= 0
}

// EqualRange returns the bounds [lo, hi) of the run of elements equivalent to
// v in the sorted slice s. The run is empty when v is absent.
func EqualRange[S ~[]E, E cmp.Ordered](s S, v E) (lo, hi int) {
	return EqualRangeFunc(s, v, cmp.Compare[E])
}

// EqualRangeFunc is EqualRange with a comparison function.
func EqualRangeFunc[S ~[]E, E any](s S, v E, cmp func(a, b E) int) (lo, hi int) {
	return LowerBoundFunc(s, v, cmp), UpperBoundFunc(s, v, cmp)
}
