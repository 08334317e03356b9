package arrnd

import (
	"cmp"
	"math"
)

// Sum returns the sum of all elements (0 for an empty array).
func Sum[T Number](a Array[T]) T {
	return Fold(a, T(0), func(acc, x T) T { return acc + x })
}

// Prod returns the product of all elements (1 for an empty array).
func Prod[T Number](a Array[T]) T {
	return Fold(a, T(1), func(acc, x T) T { return acc * x })
}

// Min returns the smallest element.
func Min[T cmp.Ordered](a Array[T]) (T, error) {
	return Reduce(a, func(acc, x T) T { return min(acc, x) })
}

// Max returns the largest element.
func Max[T cmp.Ordered](a Array[T]) (T, error) {
	return Reduce(a, func(acc, x T) T { return max(acc, x) })
}

// SumAxis sums along one axis.
func SumAxis[T Number](a Array[T], axis int) (Array[T], error) {
	return FoldAxis(a, axis, T(0), func(acc, x T) T { return acc + x })
}

// Add performs element-wise addition with broadcasting.
func Add[T Number](a, b Array[T]) (Array[T], error) {
	return TransformWith(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func Sub[T Number](a, b Array[T]) (Array[T], error) {
	return TransformWith(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func Mul[T Number](a, b Array[T]) (Array[T], error) {
	return TransformWith(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division with broadcasting.
func Div[T Number](a, b Array[T]) (Array[T], error) {
	return TransformWith(a, b, func(x, y T) T { return x / y })
}

// Scale multiplies every element by s.
func Scale[T Number](a Array[T], s T) Array[T] {
	return Transform(a, func(x T) T { return x * s })
}

// Equal reports whether a and b have the same dims and equal elements in
// row-major order. Views compare by value.
func Equal[T comparable](a, b Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison, usable for nested arrays.
func EqualFunc[T, V any](a Array[T], b Array[V], eq func(T, V) bool) bool {
	if !sameDims(a.hdr.dims, b.hdr.dims) {
		return a.IsEmpty() && b.IsEmpty()
	}
	same := true
	walk([]Header{a.hdr, b.hdr}, func(_ int, pos []int) {
		if same && !eq(a.buf.data[pos[0]], b.buf.data[pos[1]]) {
			same = false
		}
	})
	return same
}

// AllClose reports whether a and b are element-wise equal within the default
// tolerances (rtol 1e-5, atol 1e-8), after broadcasting.
func AllClose[T Float](a, b Array[T]) bool {
	return AllCloseTol(a, b, 1e-5, 1e-8)
}

// AllCloseTol reports whether |a - b| <= atol + rtol*|b| holds for every
// broadcast pair. Incompatible shapes are never close.
func AllCloseTol[T Float](a, b Array[T], rtol, atol float64) bool {
	within, err := TransformWith(a, b, func(x, y T) bool {
		return math.Abs(float64(x)-float64(y)) <= atol+rtol*math.Abs(float64(y))
	})
	if err != nil {
		return false
	}
	return All(within, func(ok bool) bool { return ok })
}
