package arrnd

import "slices"

// Broadcast returns the dims two operands share once aligned on their last
// axis. Paired sizes must match or one of them must be 1, which stretches;
// axes present on only one side are copied as they are. A rank 0 (empty)
// operand pairs only with another rank 0 operand.
//
//	{3, 1} with {3, 5}    gives {3, 5}
//	{2, 3, 4} with {4}    gives {2, 3, 4}
//	{3, 4} with {3, 5}    fails with ErrShapeMismatch
func Broadcast(a, b []int) ([]int, error) {
	if len(a) == 0 || len(b) == 0 {
		if len(a) == 0 && len(b) == 0 {
			return []int{}, nil
		}
		return nil, newError("broadcast", ErrShapeMismatch, "cannot broadcast %v against %v", a, b)
	}

	long, short := a, b
	if len(short) > len(long) {
		long, short = short, long
	}
	out := slices.Clone(long)
	lead := len(long) - len(short)
	for i, d := range short {
		switch o := out[lead+i]; {
		case o == d || d == 1:
		case o == 1:
			out[lead+i] = d
		default:
			return nil, newError("broadcast", ErrShapeMismatch, "%v vs %v (axis %d: %d vs %d)", a, b, lead+i, o, d)
		}
	}
	return out, nil
}

// broadcastHeader stretches h to dims. Stretched and padded axes get stride 0,
// so the returned header revisits the same storage positions along them.
func broadcastHeader(h Header, dims []int) (Header, error) {
	if slices.Equal(h.dims, dims) {
		return h, nil
	}
	rank := len(dims)
	pad := rank - len(h.dims)
	if pad < 0 || len(h.dims) == 0 {
		return Header{}, newError("broadcast", ErrShapeMismatch, "cannot broadcast %v to %v", h.dims, dims)
	}

	strides := make([]int, rank)
	for i := 0; i < rank; i++ {
		inIdx := i - pad
		switch {
		case inIdx < 0:
			strides[i] = 0
		case h.dims[inIdx] == dims[i]:
			strides[i] = h.strides[inIdx]
		case h.dims[inIdx] == 1:
			strides[i] = 0
		default:
			return Header{}, newError("broadcast", ErrShapeMismatch, "cannot broadcast %v to %v (dimension %d: %d vs %d)",
				h.dims, dims, i, h.dims[inIdx], dims[i])
		}
	}
	return Header{
		dims:    slices.Clone(dims),
		strides: strides,
		offset:  h.offset,
		sliced:  true,
	}, nil
}
