package arrnd

import "slices"

// Reduce folds all elements in row-major order. The first element seeds the
// accumulator.
//
// Example:
//
//	a, _ := arrnd.FromSlice([]int{2, 2}, []int{1, 2, 3, 4})
//	sum, _ := arrnd.Reduce(a, func(acc, x int) int { return acc + x }) // 10
func Reduce[T any](a Array[T], f func(acc, x T) T) (T, error) {
	var acc T
	if a.IsEmpty() {
		return acc, newError("reduce", ErrEmptyOperation, "")
	}
	for i, pos := range a.hdr.Offsets() {
		if i == 0 {
			acc = a.buf.data[pos]
			continue
		}
		acc = f(acc, a.buf.data[pos])
	}
	return acc, nil
}

// Fold folds all elements in row-major order starting from seed.
// An empty array folds to seed.
func Fold[T, U any](a Array[T], seed U, f func(acc U, x T) U) U {
	acc := seed
	for _, pos := range a.hdr.Offsets() {
		acc = f(acc, a.buf.data[pos])
	}
	return acc
}

// collapse splits h into the header of the remaining axes and the collapsed
// axis length and stride. Collapsing the only axis leaves a single element header {1}.
func collapse(op string, h Header, axis int) (rest Header, n, stride int, err error) {
	rank := len(h.dims)
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return Header{}, 0, 0, newError(op, ErrIndexOutOfRange, "axis %d out of range for rank %d", axis, rank)
	}
	rest = Header{
		dims:    slices.Delete(slices.Clone(h.dims), axis, axis+1),
		strides: slices.Delete(slices.Clone(h.strides), axis, axis+1),
		offset:  h.offset,
	}
	if len(rest.dims) == 0 {
		rest.dims = []int{1}
		rest.strides = []int{1}
	}
	return rest, h.dims[axis], h.strides[axis], nil
}

// ReduceAxis collapses one axis, folding its elements in increasing index
// order with the first element as seed. The result has the axis removed; a
// rank 1 array reduces to dims {1}. Negative axes count from the end.
//
// Example:
//
//	a, _ := arrnd.FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	cols, _ := arrnd.ReduceAxis(a, 0, func(acc, x int) int { return acc + x }) // [5 7 9]
func ReduceAxis[T any](a Array[T], axis int, f func(acc, x T) T) (Array[T], error) {
	rest, n, stride, err := collapse("reduce_axis", a.hdr, axis)
	if err != nil {
		return Array[T]{}, err
	}
	out := Must(newArray[T](rest.dims))
	if out.IsEmpty() {
		return out, nil
	}
	if n == 0 {
		return Array[T]{}, newError("reduce_axis", ErrEmptyOperation, "axis %d has size 0", axis)
	}
	for i, pos := range rest.Offsets() {
		acc := a.buf.data[pos]
		for k := 1; k < n; k++ {
			acc = f(acc, a.buf.data[pos+k*stride])
		}
		out.buf.data[i] = acc
	}
	return out, nil
}

// FoldAxis collapses one axis like ReduceAxis, starting every fold from seed.
func FoldAxis[T, U any](a Array[T], axis int, seed U, f func(acc U, x T) U) (Array[U], error) {
	rest, n, stride, err := collapse("fold_axis", a.hdr, axis)
	if err != nil {
		return Array[U]{}, err
	}
	out := Must(newArray[U](rest.dims))
	for i, pos := range rest.Offsets() {
		acc := seed
		for k := 0; k < n; k++ {
			acc = f(acc, a.buf.data[pos+k*stride])
		}
		out.buf.data[i] = acc
	}
	return out, nil
}

// FoldAxisWith collapses one axis, seeding each fold from seeds. The seeds are
// broadcast against the collapsed dims.
func FoldAxisWith[T, U any](a Array[T], axis int, seeds Array[U], f func(acc U, x T) U) (Array[U], error) {
	rest, n, stride, err := collapse("fold_axis", a.hdr, axis)
	if err != nil {
		return Array[U]{}, err
	}
	hs, err := broadcastHeader(seeds.hdr, rest.dims)
	if err != nil {
		return Array[U]{}, err
	}
	out := Must(newArray[U](rest.dims))
	walk([]Header{rest, hs}, func(i int, pos []int) {
		acc := seeds.buf.data[pos[1]]
		for k := 0; k < n; k++ {
			acc = f(acc, a.buf.data[pos[0]+k*stride])
		}
		out.buf.data[i] = acc
	})
	return out, nil
}

// All reports whether pred holds for every element. It is true for an empty array.
func All[T any](a Array[T], pred func(T) bool) bool {
	return Fold(a, true, func(acc bool, x T) bool { return acc && pred(x) })
}

// Any reports whether pred holds for at least one element.
func Any[T any](a Array[T], pred func(T) bool) bool {
	return Fold(a, false, func(acc bool, x T) bool { return acc || pred(x) })
}

// Count returns the number of elements satisfying pred.
func Count[T any](a Array[T], pred func(T) bool) int {
	return Fold(a, 0, func(acc int, x T) int {
		if pred(x) {
			return acc + 1
		}
		return acc
	})
}
