package arrnd

// Dot computes the matrix product over the two trailing axes of a and b:
// {..., m, k} · {..., k, n} → {..., m, n}. Leading (batch) axes broadcast.
// A rank 1 left operand is a row {1, k}; a rank 1 right operand is a column {k, 1}.
//
// The product is an outer broadcast multiply {..., m, k, 1} × {..., 1, k, n}
// summed over the shared k axis, so it runs entirely on the traversal
// primitives. For nested operands use Lift2(Dot[T]).
//
// Example:
//
//	a, _ := arrnd.FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6})
//	b, _ := arrnd.FromSlice([]int{3, 1}, []int{1, 2, 3})
//	c, _ := arrnd.Dot(a, b) // dims [2 1]: 14 32
func Dot[T Number](a, b Array[T]) (Array[T], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Array[T]{}, newError("dot", ErrEmptyOperation, "dims %v · %v", a.hdr.dims, b.hdr.dims)
	}

	ha := a.hdr
	if ha.Rank() == 1 {
		ha = Must(ha.ExpandDims(0))
	}
	hb := b.hdr
	if hb.Rank() == 1 {
		hb = Must(hb.ExpandDims(1))
	}

	k := ha.dims[ha.Rank()-1]
	if hb.dims[hb.Rank()-2] != k {
		return Array[T]{}, newError("dot", ErrShapeMismatch, "inner dimensions differ: %v · %v", a.hdr.dims, b.hdr.dims)
	}

	lhs := Array[T]{hdr: Must(ha.ExpandDims(-1)), buf: a.buf}
	rhs := Array[T]{hdr: Must(hb.ExpandDims(-3)), buf: b.buf}
	prod, err := Mul(lhs, rhs)
	if err != nil {
		return Array[T]{}, err
	}
	return SumAxis(prod, -2)
}
