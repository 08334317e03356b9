package arrnd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Dims())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.Values())

	_, err = FromSlice([]int{2, 2}, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestCreation(t *testing.T) {
	z := Must(Zeros[float64](2, 2))
	assert.Equal(t, []float64{0, 0, 0, 0}, z.Values())

	f := Must(Fill([]int{3}, "x"))
	assert.Equal(t, []string{"x", "x", "x"}, f.Values())

	g := Must(Generate([]int{2, 2}, func(i int) int { return i * i }))
	assert.Equal(t, []int{0, 1, 4, 9}, g.Values())

	assert.Equal(t, []int32{0, 1, 2, 3}, Arange[int32](4).Values())
	assert.True(t, Arange[int](0).IsEmpty())
}

func TestAtSet(t *testing.T) {
	a := Must(FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6}))

	v, err := a.At(4)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	require.NoError(t, a.Set(4, 50))
	v, _ = a.At(4)
	assert.Equal(t, 50, v)

	_, err = a.At(6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, a.Set(-1, 0), ErrIndexOutOfRange)

	var empty Array[int]
	_, err = empty.At(0)
	assert.ErrorIs(t, err, ErrEmptyOperation)
}

func TestAtThroughStrides(t *testing.T) {
	a := Must(FromSlice([]int{3, 4}, []int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}))
	tr := Must(a.Transpose())

	var got []int
	for i := 0; i < tr.Total(); i++ {
		v, err := tr.At(i)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11}, got)
}

func TestValue(t *testing.T) {
	a := Must(FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6}))

	v, err := a.Value(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	// Partial subscripts address the leading axes; the rest must be a single element.
	col := Must(FromSlice([]int{3, 1}, []int{7, 8, 9}))
	v, err = col.Value(2)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = a.Value(1)
	assert.ErrorIs(t, err, ErrInvalidCast)

	_, err = a.Value(1, 2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.Value(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestScalar(t *testing.T) {
	s := Must(FromSlice([]int{1, 1}, []int{42}))
	v, err := s.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Arange[int](3).Scalar()
	assert.ErrorIs(t, err, ErrInvalidCast)

	_, err = Array[int]{}.Scalar()
	assert.ErrorIs(t, err, ErrEmptyOperation)
}

func TestSliceSharesStorage(t *testing.T) {
	a := Must(FromSlice([]int{3, 4}, []int{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}))

	v, err := a.Slice(Between(1, 3), Range(0, 4, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, v.Dims())
	assert.Equal(t, []int{4, 6, 8, 10}, v.Values())
	assert.True(t, v.IsSliced())
	assert.False(t, a.IsSliced())
	assert.True(t, v.SharesStorage(a))
	assert.Equal(t, 2, a.Refs())

	require.NoError(t, v.Set(0, 100))
	got, _ := a.Value(1, 0)
	assert.Equal(t, 100, got, "writes through a view reach the owner")

	// Views are invisible to value semantics.
	expected := Must(FromSlice([]int{2, 2}, []int{100, 6, 8, 10}))
	assert.True(t, Equal(v, expected))
}

func TestRoundTripSlicing(t *testing.T) {
	a := Must(Generate([]int{4, 5, 6}, func(i int) int { return i }))
	ivs := []Interval{Range(1, 4, 2), Full(), Range(0, 6, 4)}

	v := Must(a.Slice(ivs...))
	dims := v.Dims()
	require.Equal(t, []int{2, 5, 2}, dims)

	i := 0
	for x := 0; x < dims[0]; x++ {
		for y := 0; y < dims[1]; y++ {
			for z := 0; z < dims[2]; z++ {
				got, err := v.At(i)
				require.NoError(t, err)
				want, err := a.Value(1+2*x, y, 4*z)
				require.NoError(t, err)
				assert.Equal(t, want, got)
				i++
			}
		}
	}
}

func TestSliceOfSlice(t *testing.T) {
	a := Arange[int](20)
	v := Must(a.Slice(Range(2, 20, 3))) // 2 5 8 11 14 17
	w := Must(v.Slice(Range(1, 6, 2)))  // 5 11 17
	assert.Equal(t, []int{5, 11, 17}, w.Values())
	assert.Equal(t, 3, a.Refs())
}

func TestSqueeze(t *testing.T) {
	a := Must(Generate([]int{2, 1, 3}, func(i int) int { return i }))
	sq := a.Squeeze()
	assert.Equal(t, []int{2, 3}, sq.Dims())
	assert.Equal(t, a.Total(), sq.Total())
	assert.Equal(t, a.Values(), sq.Values())

	// Without unit axes squeeze is the identity.
	b := Must(Generate([]int{2, 3}, func(i int) int { return i }))
	assert.True(t, Equal(b.Squeeze(), b))
}

func TestReshape(t *testing.T) {
	a := Arange[int](6)
	m, err := a.Reshape(2, 3)
	require.NoError(t, err)
	assert.True(t, m.SharesStorage(a))

	tr := Must(m.Transpose())
	r, err := tr.Reshape(6)
	require.NoError(t, err)
	assert.False(t, r.SharesStorage(a), "non-contiguous arrays are copied before reshaping")
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, r.Values())

	_, err = a.Reshape(4)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestClone(t *testing.T) {
	a := Arange[int](6)
	v := Must(a.Slice(Range(0, 6, 2)))
	c := v.Clone()
	assert.False(t, c.SharesStorage(a))
	assert.True(t, c.IsContiguous())
	assert.False(t, c.IsSliced())
	assert.Equal(t, []int{0, 2, 4}, c.Values())

	require.NoError(t, c.Set(0, 9))
	got, _ := a.At(0)
	assert.Equal(t, 0, got)
}

func TestRelease(t *testing.T) {
	a := Arange[int](4)
	v := Must(a.Slice(From(1)))
	require.Equal(t, 2, a.Refs())

	a.Release()
	assert.Equal(t, 1, v.Refs())
	assert.Equal(t, []int{1, 2, 3}, v.Values(), "a view keeps the storage alive")
}

func TestReleaseKeepsCopiesReadable(t *testing.T) {
	b := Must(FromSlice([]int{2}, []int{1, 2}))
	c := b
	b.Release()
	assert.Equal(t, 0, c.Refs())

	v, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	b.Release()
	assert.Equal(t, 0, c.Refs(), "the count never goes negative")
}

func TestReleaseKeepsNestedElementsReadable(t *testing.T) {
	x := Must(FromSlice([]int{2}, []int{1, 2}))
	grid := Must(FromSlice([]int{1}, []Array[int]{x}))
	x.Release()

	inner, err := grid.At(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, inner.Values())
	assert.Equal(t, 3, Sum(inner))
}

func TestConcurrentViewRefCount(t *testing.T) {
	a := Arange[int](100)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := Must(a.Slice(From(1)))
			v.Release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, a.Refs())
}

func TestElements(t *testing.T) {
	a := Must(FromSlice([]int{2, 2}, []int{1, 2, 3, 4}))
	tr := Must(a.Transpose())
	var got []int
	for i, v := range tr.Elements() {
		assert.Equal(t, len(got), i)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 2, 4}, got)
}

func TestString(t *testing.T) {
	a := Must(Zeros[int](2, 3))
	assert.Equal(t, "Array[int][2 3]", a.String())
}
