package algo

import (
	"cmp"
	"slices"
)

// IsSorted reports whether s is in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedUntil(s) == len(s)
}

// IsSortedFunc reports whether s is in ascending order according to cmp.
func IsSortedFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	return IsSortedUntilFunc(s, cmp) == len(s)
}

// IsSortedUntil returns the end of the longest sorted prefix of s.
func IsSortedUntil[S ~[]E, E cmp.Ordered](s S) int {
	return IsSortedUntilFunc(s, cmp.Compare[E])
}

// IsSortedUntilFunc is IsSortedUntil with a comparison function.
func IsSortedUntilFunc[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return i
		}
	}
	return len(s)
}

// Sort sorts s in ascending order. Equal elements may be reordered.
func Sort[S ~[]E, E cmp.Ordered](s S) {
	slices.Sort(s)
}

// SortFunc sorts s by cmp. Elements comparing equal may be reordered.
func SortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	slices.SortFunc(s, cmp)
}

// StableSortFunc sorts s by cmp, keeping elements that compare equal in
// their original relative order.
func StableSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	slices.SortStableFunc(s, cmp)
}

// PartialSort rearranges s so that s[:middle] holds the middle smallest
// elements in ascending order. The order of s[middle:] is unspecified.
func PartialSort[S ~[]E, E cmp.Ordered](s S, middle int) {
	PartialSortFunc(s, middle, cmp.Compare[E])
}

// PartialSortFunc is PartialSort with a comparison function.
func PartialSortFunc[S ~[]E, E any](s S, middle int, cmp func(a, b E) int) {
	head := s[:middle]
	MakeHeapFunc(head, cmp)
	for i := middle; i < len(s); i++ {
		if middle > 0 && cmp(s[i], head[0]) < 0 {
			s[i], head[0] = head[0], s[i]
			siftDown(head, 0, len(head), cmp)
		}
	}
	SortHeapFunc(head, cmp)
}

// PartialSortCopy copies the smallest min(len(dst), len(src)) elements of src
// into dst in ascending order and returns how many were copied.
func PartialSortCopy[S ~[]E, E cmp.Ordered](dst, src S) int {
	return PartialSortCopyFunc(dst, src, cmp.Compare[E])
}

// PartialSortCopyFunc is PartialSortCopy with a comparison function.
func PartialSortCopyFunc[S ~[]E, E any](dst, src S, cmp func(a, b E) int) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	head := dst[:n]
	copy(head, src[:n])
	MakeHeapFunc(head, cmp)
	for _, v := range src[n:] {
		if cmp(v, head[0]) < 0 {
			head[0] = v
			siftDown(head, 0, n, cmp)
		}
	}
	SortHeapFunc(head, cmp)
	return n
}

// NthElement rearranges s so that s[n] is the element that would be there if
// s were sorted, every element before it is not greater and every element
// after it is not less. It does nothing if n is out of range.
func NthElement[S ~[]E, E cmp.Ordered](s S, n int) {
	NthElementFunc(s, n, cmp.Compare[E])
}

// NthElementFunc is NthElement with a comparison function.
func NthElementFunc[S ~[]E, E any](s S, n int, cmp func(a, b E) int) {
	if n < 0 || n >= len(s) {
		return
	}
	lo, hi := 0, len(s)
	for hi-lo > 1 {
		pivot := medianOfThree(s[lo], s[lo+(hi-lo)/2], s[hi-1], cmp)
		// [lo,lt) < pivot, [lt,i) == pivot, (gt,hi) > pivot
		lt, i, gt := lo, lo, hi-1
		for i <= gt {
			switch c := cmp(s[i], pivot); {
			case c < 0:
				s[lt], s[i] = s[i], s[lt]
				lt++
				i++
			case c > 0:
				s[i], s[gt] = s[gt], s[i]
				gt--
			default:
				i++
			}
		}
		switch {
		case n < lt:
			hi = lt
		case n > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

func medianOfThree[E any](a, b, c E, cmp func(a, b E) int) E {
	if cmp(b, a) < 0 {
		a, b = b, a
	}
	if cmp(c, b) < 0 {
		b = c
		if cmp(b, a) < 0 {
			b = a
		}
	}
	return b
}
