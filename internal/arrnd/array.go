package arrnd

import (
	"fmt"
	"slices"
)

// Array is an N-dimensional array of homogeneous elements: a Header describing
// the logical layout plus a reference to shared Storage.
//
// Array is a value type. Copying an Array copies the header and shares the
// storage; view operations (Slice, Subarray, Transpose, ...) never copy elements.
// The element type may itself be an Array, to any depth:
//
//	var grid Array[Array[float64]] // depth 1
//	grid.Depth()                   // 1, known from the type alone
//
// The zero Array is empty.
type Array[T any] struct {
	hdr Header
	buf *Storage[T]
}

// newArray allocates a contiguous zeroed array.
func newArray[T any](dims []int) (Array[T], error) {
	h, err := NewHeader(dims...)
	if err != nil {
		return Array[T]{}, err
	}
	return Array[T]{hdr: h, buf: newStorage[T](h.Total())}, nil
}

// view returns an array sharing a's storage through another header.
func (a Array[T]) view(h Header) Array[T] {
	v := Array[T]{hdr: h, buf: a.buf}
	if v.buf != nil {
		v.buf.retain()
	}
	return v
}

// Header returns the array's shape descriptor.
func (a Array[T]) Header() Header {
	return a.hdr
}

// Dims returns a copy of the dimension sizes.
func (a Array[T]) Dims() []int {
	return a.hdr.Dims()
}

// Rank returns the number of axes.
func (a Array[T]) Rank() int {
	return a.hdr.Rank()
}

// Total returns the number of elements.
func (a Array[T]) Total() int {
	return a.hdr.Total()
}

// IsEmpty reports whether the array has no elements.
func (a Array[T]) IsEmpty() bool {
	return a.hdr.IsEmpty()
}

// IsScalar reports whether the array holds exactly one element.
func (a Array[T]) IsScalar() bool {
	return a.hdr.IsScalar()
}

// IsSliced reports whether the array is a view derived by slicing another array.
func (a Array[T]) IsSliced() bool {
	return a.hdr.IsSliced()
}

// IsContiguous reports whether the elements are stored in default row-major order.
func (a Array[T]) IsContiguous() bool {
	return a.hdr.IsContiguous()
}

// SharesStorage reports whether a and other reference the same storage.
func (a Array[T]) SharesStorage(other Array[T]) bool {
	return a.buf != nil && a.buf == other.buf
}

// Refs returns the number of arrays sharing a's storage.
func (a Array[T]) Refs() int {
	if a.buf == nil {
		return 0
	}
	return a.buf.Refs()
}

// Release drops this array's reference to its storage, lowering Refs by one.
// Elements stay readable through every other copy or view of the array.
func (a Array[T]) Release() {
	if a.buf != nil {
		a.buf.release()
	}
}

// At returns the element at logical row-major flat index i.
// The index is mapped through the strides, so views are read in their own order.
func (a Array[T]) At(i int) (T, error) {
	var zero T
	if a.IsEmpty() {
		return zero, newError("at", ErrEmptyOperation, "flat index %d", i)
	}
	pos, err := a.hdr.Locate(i)
	if err != nil {
		return zero, err
	}
	return a.buf.data[pos], nil
}

// Set writes v at logical row-major flat index i.
func (a Array[T]) Set(i int, v T) error {
	if a.IsEmpty() {
		return newError("set", ErrEmptyOperation, "flat index %d", i)
	}
	pos, err := a.hdr.Locate(i)
	if err != nil {
		return err
	}
	a.buf.data[pos] = v
	return nil
}

// Value returns the element addressed by subscripts. Fewer subscripts than the
// rank address the leading axes only; the addressed sub-array must then hold a
// single element.
//
// Example:
//
//	a, _ := FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	v, _ := a.Value(1, 2) // 6
func (a Array[T]) Value(subs ...int) (T, error) {
	var zero T
	if a.IsEmpty() {
		return zero, newError("value", ErrEmptyOperation, "subscripts %v", subs)
	}
	h, err := a.hdr.Subarray(subs...)
	if err != nil {
		return zero, err
	}
	return Array[T]{hdr: h, buf: a.buf}.Scalar()
}

// Scalar casts a single-element array to its element value.
func (a Array[T]) Scalar() (T, error) {
	var zero T
	switch a.Total() {
	case 0:
		return zero, newError("scalar", ErrEmptyOperation, "")
	case 1:
		return a.buf.data[a.hdr.locate(0)], nil
	default:
		return zero, newError("scalar", ErrInvalidCast, "array of dims %v is not scalar", a.hdr.dims)
	}
}

// Slice returns a view selecting one interval per leading axis.
//
// Example:
//
//	a := Arange[int](12)
//	m, _ := a.Reshape(3, 4)
//	v, _ := m.Slice(Between(0, 2), Range(0, 4, 2)) // dims [2 2]: 0 2 4 6
func (a Array[T]) Slice(ivs ...Interval) (Array[T], error) {
	h, err := a.hdr.Slice(ivs...)
	if err != nil {
		return Array[T]{}, err
	}
	return a.view(h), nil
}

// Subarray returns a view with the leading axes fixed at the given indices.
func (a Array[T]) Subarray(subs ...int) (Array[T], error) {
	h, err := a.hdr.Subarray(subs...)
	if err != nil {
		return Array[T]{}, err
	}
	return a.view(h), nil
}

// Squeeze returns a view without unit dimensions.
func (a Array[T]) Squeeze() Array[T] {
	return a.view(a.hdr.Squeeze())
}

// ExpandDims returns a view with a unit axis inserted at axis.
func (a Array[T]) ExpandDims(axis int) (Array[T], error) {
	h, err := a.hdr.ExpandDims(axis)
	if err != nil {
		return Array[T]{}, err
	}
	return a.view(h), nil
}

// Transpose returns a view with permuted axes (reversed when perm is empty).
func (a Array[T]) Transpose(perm ...int) (Array[T], error) {
	h, err := a.hdr.Transpose(perm...)
	if err != nil {
		return Array[T]{}, err
	}
	return a.view(h), nil
}

// Reshape returns an array with the same elements and new dimensions.
// Contiguous arrays are reshaped as views; others are copied first.
func (a Array[T]) Reshape(dims ...int) (Array[T], error) {
	src := a
	if !a.hdr.IsContiguous() {
		src = a.Clone()
	}
	h, err := src.hdr.Reshape(dims...)
	if err != nil {
		return Array[T]{}, err
	}
	if src.buf != a.buf {
		return Array[T]{hdr: h, buf: src.buf}, nil
	}
	return a.view(h), nil
}

// Clone returns a contiguous copy of the array with its own storage.
// Nested arrays are copied shallowly: inner arrays keep sharing their storage.
func (a Array[T]) Clone() Array[T] {
	c, err := newArray[T](a.hdr.dims)
	if err != nil {
		panic(err) // dims come from a valid header
	}
	if a.IsEmpty() {
		return c
	}
	for i, pos := range a.hdr.Offsets() {
		c.buf.data[i] = a.buf.data[pos]
	}
	return c
}

// Values returns the elements in row-major order as a new slice.
func (a Array[T]) Values() []T {
	out := make([]T, 0, a.Total())
	for _, pos := range a.hdr.Offsets() {
		out = append(out, a.buf.data[pos])
	}
	return out
}

// Depth returns the number of nesting levels of the array type: 0 when T is not
// an Array, otherwise one more than T's depth. It depends only on the type and
// is valid on the zero value.
func (a Array[T]) Depth() int {
	return a.depth()
}

// IsFlat reports whether Depth is 0.
func (a Array[T]) IsFlat() bool {
	return a.depth() == 0
}

// nester is implemented by every Array instantiation.
type nester interface {
	depth() int
}

func (Array[T]) depth() int {
	var zero T
	if n, ok := any(zero).(nester); ok {
		return n.depth() + 1
	}
	return 0
}

// String returns a short description of the array.
func (a Array[T]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.hdr.dims)
}

// sameDims reports whether two arrays have identical dimensions.
func sameDims(a, b []int) bool {
	return slices.Equal(a, b)
}

// AnyValues returns the elements in row-major order boxed as any. It lets code
// that does not know the element type (formatters, encoders) walk nested arrays.
func (a Array[T]) AnyValues() []any {
	out := make([]any, 0, a.Total())
	for _, pos := range a.hdr.Offsets() {
		out = append(out, a.buf.data[pos])
	}
	return out
}
