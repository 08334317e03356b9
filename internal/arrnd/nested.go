package arrnd

import "fmt"

// Nested arrays are dispatched two ways.
//
// Lift and Lift2 are the typed path: every call adds one nesting level to an
// operation, so the target level is fixed by the program text and the result
// type is checked by the compiler. Level 2 of a reduction over
// Array[Array[Array[int]]] is Lift(Lift(op)).
//
// ApplyLevel, ForEachLevel and Flatten are the run-time path: the level is an
// ordinary int and the leaf element type is asserted when the level is
// reached. They cost an interface call per inner array and report
// ErrInvalidCast instead of a compile error on a wrong leaf type.

// Lift turns an operation on arrays of T into one on arrays of arrays of T
// that runs op on every inner array, keeping the outer shape.
//
// Example:
//
//	sums := arrnd.Lift(func(x arrnd.Array[int]) (int, error) { return arrnd.Sum(x), nil })
//	out, _ := sums(grid) // one sum per inner array
func Lift[T, U any](op func(Array[T]) (U, error)) func(Array[Array[T]]) (Array[U], error) {
	return func(a Array[Array[T]]) (Array[U], error) {
		out := Must(newArray[U](a.hdr.dims))
		for i, pos := range a.hdr.Offsets() {
			v, err := op(a.buf.data[pos])
			if err != nil {
				return Array[U]{}, fmt.Errorf("element %d: %w", i, err)
			}
			out.buf.data[i] = v
		}
		return out, nil
	}
}

// Lift2 turns a binary operation on arrays into one on arrays of arrays. The
// outer shapes are broadcast and op runs on every corresponding pair of inner
// arrays.
func Lift2[T, V, U any](op func(Array[T], Array[V]) (U, error)) func(Array[Array[T]], Array[Array[V]]) (Array[U], error) {
	return func(a Array[Array[T]], b Array[Array[V]]) (Array[U], error) {
		ha, hb, err := broadcastPair(a.hdr, b.hdr)
		if err != nil {
			return Array[U]{}, err
		}
		out := Must(newArray[U](ha.dims))
		var firstErr error
		walk([]Header{ha, hb}, func(i int, pos []int) {
			if firstErr != nil {
				return
			}
			v, err := op(a.buf.data[pos[0]], b.buf.data[pos[1]])
			if err != nil {
				firstErr = fmt.Errorf("element %d: %w", i, err)
				return
			}
			out.buf.data[i] = v
		})
		if firstErr != nil {
			return Array[U]{}, firstErr
		}
		return out, nil
	}
}

// descender is implemented by every Array instantiation.
type descender interface {
	nester
	descend(level int, leaf func(any) error) error
}

// descend calls leaf on every array found level nesting levels below a.
func (a Array[T]) descend(level int, leaf func(any) error) error {
	if level == 0 {
		return leaf(a)
	}
	for _, pos := range a.hdr.Offsets() {
		inner, ok := any(a.buf.data[pos]).(descender)
		if !ok {
			return newError("descend", ErrIndexOutOfRange, "element type %T is not an array", a.buf.data[pos])
		}
		if err := inner.descend(level-1, leaf); err != nil {
			return err
		}
	}
	return nil
}

// checkLevel validates a target level against the array type's depth.
func checkLevel(op string, level, depth int) error {
	if level < 0 || level > depth {
		return newError(op, ErrIndexOutOfRange, "level %d outside [0, %d]", level, depth)
	}
	return nil
}

// leafArray asserts that x is an array of E.
func leafArray[E any](op string, level int, x any) (Array[E], error) {
	arr, ok := x.(Array[E])
	if !ok {
		var zero E
		return Array[E]{}, newError(op, ErrInvalidCast, "arrays at level %d are %T, not elements of %T", level, x, zero)
	}
	return arr, nil
}

// ApplyLevel updates, in place, every element found at the given nesting level.
// Level 0 is a's own elements.
//
// Example:
//
//	var grid arrnd.Array[arrnd.Array[int]]
//	err := arrnd.ApplyLevel(grid, 1, func(x int) int { return x * 2 })
func ApplyLevel[E, T any](a Array[T], level int, f func(E) E) error {
	if err := checkLevel("apply_level", level, a.Depth()); err != nil {
		return err
	}
	return a.descend(level, func(x any) error {
		arr, err := leafArray[E]("apply_level", level, x)
		if err != nil {
			return err
		}
		arr.Apply(f)
		return nil
	})
}

// ForEachLevel calls f on every element found at the given nesting level, in
// row-major order at every level.
func ForEachLevel[E, T any](a Array[T], level int, f func(E)) error {
	if err := checkLevel("for_each_level", level, a.Depth()); err != nil {
		return err
	}
	return a.descend(level, func(x any) error {
		arr, err := leafArray[E]("for_each_level", level, x)
		if err != nil {
			return err
		}
		ForEach(arr, f)
		return nil
	})
}

// Flatten collects every element found at the given nesting level.
func Flatten[E, T any](a Array[T], level int) ([]E, error) {
	var out []E
	err := ForEachLevel(a, level, func(x E) {
		out = append(out, x)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
