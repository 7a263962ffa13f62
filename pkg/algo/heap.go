package algo

import "cmp"

// IsHeap reports whether s is a max-heap.
func IsHeap[S ~[]E, E cmp.Ordered](s S) bool {
	return IsHeapUntil(s) == len(s)
}

// IsHeapFunc reports whether s is a max-heap according to cmp.
func IsHeapFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	return IsHeapUntilFunc(s, cmp) == len(s)
}

// IsHeapUntil returns the end of the longest prefix of s that is a max-heap.
func IsHeapUntil[S ~[]E, E cmp.Ordered](s S) int {
	return IsHeapUntilFunc(s, cmp.Compare[E])
}

// IsHeapUntilFunc is IsHeapUntil with a comparison function.
func IsHeapUntilFunc[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if cmp(s[(i-1)/2], s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

// MakeHeap arranges s into a max-heap.
func MakeHeap[S ~[]E, E cmp.Ordered](s S) {
	MakeHeapFunc(s, cmp.Compare[E])
}

// MakeHeapFunc is MakeHeap with a comparison function.
func MakeHeapFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}
}

// PushHeap restores the heap property of s after a new element has been
// appended to the max-heap s[:len(s)-1].
func PushHeap[S ~[]E, E cmp.Ordered](s S) {
	PushHeapFunc(s, cmp.Compare[E])
}

// PushHeapFunc is PushHeap with a comparison function.
func PushHeapFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	i := len(s) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if cmp(s[parent], s[i]) >= 0 {
			break
		}
		s[parent], s[i] = s[i], s[parent]
		i = parent
	}
}

// PopHeap moves the largest element of the max-heap s to the end and makes
// s[:len(s)-1] a max-heap again.
func PopHeap[S ~[]E, E cmp.Ordered](s S) {
	PopHeapFunc(s, cmp.Compare[E])
}

// PopHeapFunc is PopHeap with a comparison function.
func PopHeapFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	n := len(s) - 1
	if n <= 0 {
		return
	}
	s[0], s[n] = s[n], s[0]
	siftDown(s, 0, n, cmp)
}

// SortHeap turns the max-heap s into a slice sorted in ascending order.
func SortHeap[S ~[]E, E cmp.Ordered](s S) {
	SortHeapFunc(s, cmp.Compare[E])
}

// SortHeapFunc is SortHeap with a comparison function.
func SortHeapFunc[S ~[]E, E any](s S, cmp func(a, b E) int) {
	for n := len(s); n > 1; n-- {
		PopHeapFunc(s[:n], cmp)
	}
}

// siftDown restores the heap property of s[:n] below root.
func siftDown[S ~[]E, E any](s S, root, n int, cmp func(a, b E) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(s[child], s[child+1]) < 0 {
			child++
		}
		if cmp(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
