package arrnd

import "sync/atomic"

// Filter is a pending selection of elements of an array, created by Select,
// SelectMask or SelectFunc. It holds no elements of its own: it is consumed by
// exactly one of Assign, AssignValues, Update, UpdateScalar or Collect, which
// read or scatter through the owning array's storage. Any further use reports
// ErrFilterConsumed.
//
// Example:
//
//	a, _ := arrnd.FromSlice([]int{6}, []int{1, 2, 3, 4, 5, 6})
//	_ = a.SelectFunc(func(x int) bool { return x > 3 }).Assign(0) // [1 2 3 0 0 0]
type Filter[T any] struct {
	owner     Array[T]
	positions []int // Storage positions in selection order
	err       error // Deferred selection error
	used      atomic.Bool
}

// Select selects elements by logical flat index, in the given order.
func (a Array[T]) Select(indices ...int) *Filter[T] {
	f := &Filter[T]{owner: a}
	f.positions = make([]int, 0, len(indices))
	for _, i := range indices {
		pos, err := a.hdr.Locate(i)
		if err != nil {
			f.err = err
			return f
		}
		f.positions = append(f.positions, pos)
	}
	return f
}

// SelectMask selects the elements where mask is true, in row-major order.
// The mask must have the same dims as the array.
func (a Array[T]) SelectMask(mask Array[bool]) *Filter[T] {
	f := &Filter[T]{owner: a}
	if !sameDims(a.hdr.dims, mask.hdr.dims) {
		f.err = newError("select_mask", ErrShapeMismatch, "mask dims %v, array dims %v", mask.hdr.dims, a.hdr.dims)
		return f
	}
	walk([]Header{a.hdr, mask.hdr}, func(_ int, pos []int) {
		if mask.buf.data[pos[1]] {
			f.positions = append(f.positions, pos[0])
		}
	})
	return f
}

// SelectFunc selects the elements satisfying pred, in row-major order.
func (a Array[T]) SelectFunc(pred func(T) bool) *Filter[T] {
	f := &Filter[T]{owner: a}
	for _, pos := range a.hdr.Offsets() {
		if pred(a.buf.data[pos]) {
			f.positions = append(f.positions, pos)
		}
	}
	return f
}

// Len returns the number of selected elements.
func (f *Filter[T]) Len() int {
	return len(f.positions)
}

// consume marks the filter used and returns any deferred selection error.
func (f *Filter[T]) consume(op string) error {
	if !f.used.CompareAndSwap(false, true) {
		return newError(op, ErrFilterConsumed, "")
	}
	return f.err
}

// Assign writes v at every selected position.
func (f *Filter[T]) Assign(v T) error {
	if err := f.consume("assign"); err != nil {
		return err
	}
	for _, pos := range f.positions {
		f.owner.buf.data[pos] = v
	}
	return nil
}

// AssignValues scatters vs into the selected positions in selection order.
// len(vs) must equal the number of selected elements.
func (f *Filter[T]) AssignValues(vs []T) error {
	if err := f.consume("assign_values"); err != nil {
		return err
	}
	if len(vs) != len(f.positions) {
		return newError("assign_values", ErrShapeMismatch, "%d values for %d selected elements", len(vs), len(f.positions))
	}
	for k, pos := range f.positions {
		f.owner.buf.data[pos] = vs[k]
	}
	return nil
}

// Update combines every selected element with the corresponding element of
// rhs and writes the result back. rhs is broadcast against a 1-D array of the
// selected elements, so a single-element rhs updates them all.
//
// Example:
//
//	inc := arrnd.Must(arrnd.FromSlice([]int{1}, []int{10}))
//	err := a.Select(0, 2).Update(inc, func(x, y int) int { return x + y })
func (f *Filter[T]) Update(rhs Array[T], op func(x, y T) T) error {
	if err := f.consume("update"); err != nil {
		return err
	}
	sel := Must(NewHeader(len(f.positions)))
	hr, err := broadcastHeader(rhs.hdr, sel.dims)
	if err != nil {
		return err
	}
	walk([]Header{sel, hr}, func(k int, pos []int) {
		p := f.positions[k]
		f.owner.buf.data[p] = op(f.owner.buf.data[p], rhs.buf.data[pos[1]])
	})
	return nil
}

// UpdateScalar combines every selected element with v and writes the result back.
func (f *Filter[T]) UpdateScalar(v T, op func(x, y T) T) error {
	if err := f.consume("update"); err != nil {
		return err
	}
	for _, pos := range f.positions {
		f.owner.buf.data[pos] = op(f.owner.buf.data[pos], v)
	}
	return nil
}

// Collect copies the selected elements into a new 1-D array.
func (f *Filter[T]) Collect() (Array[T], error) {
	if err := f.consume("collect"); err != nil {
		return Array[T]{}, err
	}
	out := Must(newArray[T]([]int{len(f.positions)}))
	for k, pos := range f.positions {
		out.buf.data[k] = f.owner.buf.data[pos]
	}
	return out, nil
}
