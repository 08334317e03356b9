package arrnd

import (
	"fmt"
	"iter"
	"slices"
)

// Header describes how an array's logical layout maps onto its storage:
// dimension sizes, per-axis strides (in elements, not bytes) and a base offset.
//
// A Header is never modified after construction. View operations (Slice,
// Subarray, Transpose, ...) return a new Header that addresses the same storage.
type Header struct {
	dims    []int
	strides []int
	offset  int
	sliced  bool
}

// NewHeader creates a row-major header for the given dimensions.
// Rank 0 or any zero dimension describes an empty array.
func NewHeader(dims ...int) (Header, error) {
	for i, d := range dims {
		if d < 0 {
			return Header{}, newError("header", ErrIndexOutOfRange, "negative dimension at index %d: %d", i, d)
		}
	}
	return Header{
		dims:    slices.Clone(dims),
		strides: rowMajorStrides(dims),
	}, nil
}

// rowMajorStrides calculates row-major strides: stride[i] = product of all dimensions after i.
func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	if len(dims) == 0 {
		return strides
	}
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}
	return strides
}

// Dims returns a copy of the dimension sizes.
func (h Header) Dims() []int {
	return slices.Clone(h.dims)
}

// Strides returns a copy of the per-axis strides.
func (h Header) Strides() []int {
	return slices.Clone(h.strides)
}

// Offset returns the storage position of the first element.
func (h Header) Offset() int {
	return h.offset
}

// Rank returns the number of axes.
func (h Header) Rank() int {
	return len(h.dims)
}

// Total returns the number of addressable elements.
// It is 0 for rank 0 and whenever any dimension is 0.
func (h Header) Total() int {
	if len(h.dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range h.dims {
		n *= d
	}
	return n
}

// IsEmpty reports whether the header addresses no elements.
func (h Header) IsEmpty() bool {
	return h.Total() == 0
}

// IsScalar reports whether the header addresses exactly one element.
func (h Header) IsScalar() bool {
	return h.Total() == 1
}

// IsSliced reports whether the header was derived by slicing another header.
func (h Header) IsSliced() bool {
	return h.sliced
}

// IsContiguous reports whether elements are laid out in default row-major order
// without gaps. Strides of unit axes are ignored.
func (h Header) IsContiguous() bool {
	if h.IsEmpty() {
		return true
	}
	expected := rowMajorStrides(h.dims)
	for i, d := range h.dims {
		if d != 1 && h.strides[i] != expected[i] {
			return false
		}
	}
	return true
}

// Squeeze drops unit dimensions. Remaining axes keep their strides, so the
// squeezed header addresses exactly the same storage positions. A header made
// only of unit dimensions squeezes to rank 1 {1}; a rank 0 header is returned
// unchanged.
func (h Header) Squeeze() Header {
	if len(h.dims) == 0 {
		return h
	}
	out := Header{offset: h.offset, sliced: h.sliced}
	for i, d := range h.dims {
		if d != 1 {
			out.dims = append(out.dims, d)
			out.strides = append(out.strides, h.strides[i])
		}
	}
	if len(out.dims) == 0 {
		out.dims = []int{1}
		out.strides = []int{1}
	}
	return out
}

// Slice builds a view header from one interval per leading axis. Axes without an
// interval are taken whole. Supplying more intervals than the rank is an error.
//
// For each sliced axis:
//
//	size   = ceil((stop - start) / step)
//	stride = stride * step
//	offset += start * stride
func (h Header) Slice(ivs ...Interval) (Header, error) {
	if len(ivs) > len(h.dims) {
		return Header{}, newError("slice", ErrIndexOutOfRange, "%d intervals for rank %d", len(ivs), len(h.dims))
	}
	out := Header{
		dims:    slices.Clone(h.dims),
		strides: slices.Clone(h.strides),
		offset:  h.offset,
		sliced:  true,
	}
	for axis, iv := range ivs {
		start, stop, step, err := iv.Resolve(h.dims[axis])
		if err != nil {
			return Header{}, fmt.Errorf("slice axis %d: %w", axis, err)
		}
		out.dims[axis] = (stop - start + step - 1) / step
		out.strides[axis] = h.strides[axis] * step
		out.offset += start * h.strides[axis]
	}
	return out, nil
}

// Subarray fixes the leading axes to the given indices and drops them.
// Negative indices count from the end of the axis. Fixing every axis yields
// a single element header {1}.
func (h Header) Subarray(subs ...int) (Header, error) {
	if len(subs) > len(h.dims) {
		return Header{}, newError("subarray", ErrIndexOutOfRange, "%d subscripts for rank %d", len(subs), len(h.dims))
	}
	offset := h.offset
	for axis, s := range subs {
		n := h.dims[axis]
		if s < 0 {
			s += n
		}
		if s < 0 || s >= n {
			return Header{}, newError("subarray", ErrIndexOutOfRange, "index %d out of bounds for axis %d (size %d)", subs[axis], axis, n)
		}
		offset += s * h.strides[axis]
	}
	if len(subs) == 0 {
		return h, nil
	}
	out := Header{
		dims:    slices.Clone(h.dims[len(subs):]),
		strides: slices.Clone(h.strides[len(subs):]),
		offset:  offset,
		sliced:  true,
	}
	if len(out.dims) == 0 {
		out.dims = []int{1}
		out.strides = []int{1}
	}
	return out, nil
}

// ExpandDims inserts a unit axis at the given position (negative counts from the end).
func (h Header) ExpandDims(axis int) (Header, error) {
	rank := len(h.dims)
	if axis < 0 {
		axis += rank + 1
	}
	if axis < 0 || axis > rank {
		return Header{}, newError("expand_dims", ErrIndexOutOfRange, "axis %d for rank %d", axis, rank)
	}
	stride := 1
	if axis < rank {
		stride = h.strides[axis] * h.dims[axis]
	}
	out := Header{offset: h.offset, sliced: h.sliced}
	out.dims = slices.Insert(slices.Clone(h.dims), axis, 1)
	out.strides = slices.Insert(slices.Clone(h.strides), axis, stride)
	return out, nil
}

// Transpose permutes the axes. With no arguments the axes are reversed.
func (h Header) Transpose(perm ...int) (Header, error) {
	rank := len(h.dims)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return Header{}, newError("transpose", ErrShapeMismatch, "permutation of length %d for rank %d", len(perm), rank)
	}
	seen := make([]bool, rank)
	out := Header{
		dims:    make([]int, rank),
		strides: make([]int, rank),
		offset:  h.offset,
		sliced:  true,
	}
	for i, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return Header{}, newError("transpose", ErrIndexOutOfRange, "invalid permutation %v", perm)
		}
		seen[p] = true
		out.dims[i] = h.dims[p]
		out.strides[i] = h.strides[p]
	}
	return out, nil
}

// Reshape returns a row-major header with new dimensions over the same storage.
// The header must be contiguous and the element count must not change.
func (h Header) Reshape(dims ...int) (Header, error) {
	nh, err := NewHeader(dims...)
	if err != nil {
		return Header{}, err
	}
	if nh.Total() != h.Total() {
		return Header{}, newError("reshape", ErrShapeMismatch, "cannot reshape %v (%d elements) to %v", h.dims, h.Total(), dims)
	}
	if !h.IsContiguous() {
		return Header{}, newError("reshape", ErrShapeMismatch, "header %v is not contiguous", h.dims)
	}
	nh.offset = h.offset
	nh.sliced = h.sliced
	return nh, nil
}

// Locate maps a logical row-major flat index to its storage position.
func (h Header) Locate(i int) (int, error) {
	if i < 0 || i >= h.Total() {
		return 0, newError("locate", ErrIndexOutOfRange, "flat index %d out of bounds [0, %d)", i, h.Total())
	}
	return h.locate(i), nil
}

// locate is Locate without bounds checks.
func (h Header) locate(i int) int {
	pos := h.offset
	for axis := len(h.dims) - 1; axis >= 0; axis-- {
		d := h.dims[axis]
		pos += (i % d) * h.strides[axis]
		i /= d
	}
	return pos
}

// Offsets iterates the header in row-major order (last axis fastest), yielding
// the logical flat index and the storage position of each element.
func (h Header) Offsets() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := h.Total()
		if n == 0 {
			return
		}
		rank := len(h.dims)
		idx := make([]int, rank)
		pos := h.offset
		for i := 0; i < n; i++ {
			if !yield(i, pos) {
				return
			}
			for axis := rank - 1; axis >= 0; axis-- {
				idx[axis]++
				pos += h.strides[axis]
				if idx[axis] < h.dims[axis] {
					break
				}
				pos -= idx[axis] * h.strides[axis]
				idx[axis] = 0
			}
		}
	}
}

// String returns a human-readable representation of the header.
func (h Header) String() string {
	return fmt.Sprintf("Header{dims: %v, strides: %v, offset: %d}", h.dims, h.strides, h.offset)
}
