package arrnd

import (
	"iter"

	"github.com/born-ml/ndarray/internal/parallel"
)

// walk visits headers of identical dims in lockstep, row-major order, passing
// the flat index and the storage position within each header.
func walk(hdrs []Header, visit func(i int, pos []int)) {
	dims := hdrs[0].dims
	n := hdrs[0].Total()
	if n == 0 {
		return
	}
	rank := len(dims)
	idx := make([]int, rank)
	pos := make([]int, len(hdrs))
	for k, h := range hdrs {
		pos[k] = h.offset
	}
	for i := 0; i < n; i++ {
		visit(i, pos)
		for axis := rank - 1; axis >= 0; axis-- {
			idx[axis]++
			for k, h := range hdrs {
				pos[k] += h.strides[axis]
			}
			if idx[axis] < dims[axis] {
				break
			}
			for k, h := range hdrs {
				pos[k] -= idx[axis] * h.strides[axis]
			}
			idx[axis] = 0
		}
	}
}

// broadcastPair resolves the common dims of two headers and stretches both to it.
func broadcastPair(a, b Header) (Header, Header, error) {
	dims, err := Broadcast(a.dims, b.dims)
	if err != nil {
		return Header{}, Header{}, err
	}
	ha, err := broadcastHeader(a, dims)
	if err != nil {
		return Header{}, Header{}, err
	}
	hb, err := broadcastHeader(b, dims)
	if err != nil {
		return Header{}, Header{}, err
	}
	return ha, hb, nil
}

// Elements iterates the array in row-major order, yielding the flat index and the value.
func (a Array[T]) Elements() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, pos := range a.hdr.Offsets() {
			if !yield(i, a.buf.data[pos]) {
				return
			}
		}
	}
}

// Transform applies f to every element in row-major order and returns the
// results in a new contiguous array of the same dims. The result element type
// is f's return type.
//
// Example:
//
//	a := arrnd.Arange[int](3)
//	half := arrnd.Transform(a, func(x int) float64 { return float64(x) / 2 }) // [0 0.5 1]
func Transform[T, U any](a Array[T], f func(T) U) Array[U] {
	out := Must(newArray[U](a.hdr.dims))
	for i, pos := range a.hdr.Offsets() {
		out.buf.data[i] = f(a.buf.data[pos])
	}
	return out
}

// TransformWith applies f to corresponding elements of a and b after
// broadcasting them to a common shape.
//
// Example:
//
//	col, _ := arrnd.FromSlice([]int{3, 1}, []int{1, 2, 3})
//	row, _ := arrnd.FromSlice([]int{1, 2}, []int{10, 20})
//	sum, _ := arrnd.TransformWith(col, row, func(x, y int) int { return x + y }) // dims [3 2]
func TransformWith[T, V, U any](a Array[T], b Array[V], f func(T, V) U) (Array[U], error) {
	ha, hb, err := broadcastPair(a.hdr, b.hdr)
	if err != nil {
		return Array[U]{}, err
	}
	out := Must(newArray[U](ha.dims))
	walk([]Header{ha, hb}, func(i int, pos []int) {
		out.buf.data[i] = f(a.buf.data[pos[0]], b.buf.data[pos[1]])
	})
	return out, nil
}

// TransformParallel is Transform split into chunks over cfg's workers.
// Every result slot is written exactly once, so the output equals Transform's;
// f must be safe for concurrent use.
func TransformParallel[T, U any](a Array[T], cfg parallel.Config, f func(T) U) Array[U] {
	out := Must(newArray[U](a.hdr.dims))
	parallel.Chunks(a.Total(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.buf.data[i] = f(a.buf.data[a.hdr.locate(i)])
		}
	}, cfg)
	return out
}

// Apply replaces every element with f(element), in place, and returns the
// receiver. On a view only the viewed elements change.
func (a Array[T]) Apply(f func(T) T) Array[T] {
	for _, pos := range a.hdr.Offsets() {
		a.buf.data[pos] = f(a.buf.data[pos])
	}
	return a
}

// ApplyWith updates a in place with f(a[i], b[i]), broadcasting b to a's dims.
// The receiver never changes shape: b must broadcast to exactly a's dims.
func ApplyWith[T, V any](a Array[T], b Array[V], f func(T, V) T) (Array[T], error) {
	hb, err := broadcastHeader(b.hdr, a.hdr.dims)
	if err != nil {
		return a, err
	}
	walk([]Header{a.hdr, hb}, func(_ int, pos []int) {
		a.buf.data[pos[0]] = f(a.buf.data[pos[0]], b.buf.data[pos[1]])
	})
	return a, nil
}

// ForEach calls f on every element in row-major order, for side effects only.
func ForEach[T any](a Array[T], f func(T)) {
	for _, pos := range a.hdr.Offsets() {
		f(a.buf.data[pos])
	}
}
