// Package algo is a generic algorithms library over slices.
//
// Positions are plain int indexes into the slice they were computed from.
// Searches that find nothing return len(s), the position one past the last
// element, never -1; a returned position can always be used to reslice.
//
// Operations that would write through an output iterator follow the append
// idiom instead: they take a destination slice, append to it and return the
// extended slice, so
//
//	evens := algo.CopyIf(nil, nums, isEven)
//
// allocates and
//
//	buf = algo.CopyIf(buf[:0], nums, isEven)
//
// reuses storage.
//
// Functions constrained by cmp.Ordered have a ...Func counterpart that takes a
// three-way comparison func(a, b E) int with the same contract as cmp.Compare.
// Heaps are max-heaps with respect to that ordering, laid out the textbook way:
// the parent of i is (i-1)/2 and its children are 2i+1 and 2i+2.
package algo
