package algo

import "cmp"

// Merge appends the merge of the sorted slices a and b to dst. For equivalent
// elements, those from a come first.
func Merge[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return MergeFunc(dst, a, b, cmp.Compare[E])
}

// MergeFunc is Merge with a comparison function.
func MergeFunc[S ~[]E, E any](dst, a, b S, cmp func(a, b E) int) S {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst = append(dst, b[j])
			j++
		} else {
			dst = append(dst, a[i])
			i++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// InplaceMerge merges the consecutive sorted runs s[:middle] and s[middle:]
// into one sorted run. The merge is stable.
func InplaceMerge[S ~[]E, E cmp.Ordered](s S, middle int) {
	InplaceMergeFunc(s, middle, cmp.Compare[E])
}

// InplaceMergeFunc is InplaceMerge with a comparison function.
func InplaceMergeFunc[S ~[]E, E any](s S, middle int, cmp func(a, b E) int) {
	left := append(S(nil), s[:middle]...)
	i, j, k := 0, middle, 0
	for i < len(left) && j < len(s) {
		if cmp(s[j], left[i]) < 0 {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	copy(s[k:], left[i:])
}
