package arrnd

// Number is a constraint for element types that support arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Zeros creates an array of zero values.
//
// Example:
//
//	a, _ := arrnd.Zeros[float64](3, 4)
func Zeros[T any](dims ...int) (Array[T], error) {
	return newArray[T](dims)
}

// Fill creates an array filled with a specific value.
//
// Example:
//
//	a, _ := arrnd.Fill([]int{2, 2}, 3.14)
func Fill[T any](dims []int, value T) (Array[T], error) {
	a, err := newArray[T](dims)
	if err != nil {
		return Array[T]{}, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = value
	}
	return a, nil
}

// FromSlice creates an array from a Go slice in row-major order.
// The slice is copied into the array's storage.
func FromSlice[T any](dims []int, data []T) (Array[T], error) {
	a, err := newArray[T](dims)
	if err != nil {
		return Array[T]{}, err
	}
	if a.Total() != len(data) {
		return Array[T]{}, newError("from_slice", ErrShapeMismatch, "dims %v require %d elements, but got %d", dims, a.Total(), len(data))
	}
	copy(a.buf.data, data)
	return a, nil
}

// Generate creates an array whose i-th row-major element is f(i).
func Generate[T any](dims []int, f func(i int) T) (Array[T], error) {
	a, err := newArray[T](dims)
	if err != nil {
		return Array[T]{}, err
	}
	for i := range a.buf.data {
		a.buf.data[i] = f(i)
	}
	return a, nil
}

// Arange creates a 1-D array holding 0, 1, ..., n-1.
//
// Example:
//
//	a := arrnd.Arange[int32](4) // [0 1 2 3]
func Arange[T Number](n int) Array[T] {
	a, err := Generate([]int{max(n, 0)}, func(i int) T { return T(i) })
	if err != nil {
		panic(err) // a non-negative single dimension is always valid
	}
	return a
}

// Must returns v or panics with err. Intended for tests and static data.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
