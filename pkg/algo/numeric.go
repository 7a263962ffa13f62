package algo

// Number is the set of types supporting the arithmetic operators used by the
// numeric algorithms.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Iota assigns start, start+1, start+2, ... to the elements of s.
func Iota[S ~[]E, E Number](s S, start E) {
	for i := range s {
		s[i] = start
		start++
	}
}

// Accumulate returns init plus the sum of the elements of s, added left to right.
func Accumulate[S ~[]E, E Number](s S, init E) E {
	return AccumulateFunc(s, init, func(acc, v E) E { return acc + v })
}

// AccumulateFunc folds s from the left into init with op.
func AccumulateFunc[S ~[]E, E, T any](s S, init T, op func(T, E) T) T {
	for _, v := range s {
		init = op(init, v)
	}
	return init
}

// Reduce returns init plus the sum of the elements of s. Unlike Accumulate
// the order of the additions is not part of its contract.
func Reduce[S ~[]E, E Number](s S, init E) E {
	return Accumulate(s, init)
}

// InnerProduct returns init plus the sum of a[i]*b[i]. b must be at least as
// long as a.
func InnerProduct[S ~[]E, E Number](a, b S, init E) E {
	for i, v := range a {
		init += v * b[i]
	}
	return init
}

// TransformReduce applies transform to every element of s and folds the
// results into init with reduce.
func TransformReduce[S ~[]E, E, T any](s S, init T, reduce func(T, T) T, transform func(E) T) T {
	for _, v := range s {
		init = reduce(init, transform(v))
	}
	return init
}

// AdjacentDifference appends src[0] followed by src[i]-src[i-1] for every
// later position to dst.
func AdjacentDifference[S ~[]E, E Number](dst, src S) S {
	for i, v := range src {
		if i == 0 {
			dst = append(dst, v)
			continue
		}
		dst = append(dst, v-src[i-1])
	}
	return dst
}

// PartialSum appends the running totals of src to dst.
func PartialSum[S ~[]E, E Number](dst, src S) S {
	var sum E
	for _, v := range src {
		sum += v
		dst = append(dst, sum)
	}
	return dst
}

// InclusiveScan appends the running totals of src to dst; the i-th total
// includes src[i].
func InclusiveScan[S ~[]E, E Number](dst, src S) S {
	return PartialSum(dst, src)
}

// ExclusiveScan appends the running totals of src, seeded with init, to dst;
// the i-th total excludes src[i].
func ExclusiveScan[S ~[]E, E Number](dst, src S, init E) S {
	for _, v := range src {
		dst = append(dst, init)
		init += v
	}
	return dst
}
