package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/ndarray/internal/arrnd"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		array    Array
		opts     []Option
		expected string
	}{
		{"vector", arrnd.Must(arrnd.FromSlice([]int{3}, []int{1, 2, 3})), nil, "[1 2 3]"},
		{"column", arrnd.Must(arrnd.FromSlice([]int{3, 1}, []int{1, 2, 3})), nil, "[[1] [2] [3]]"},
		{"matrix dims", arrnd.Must(arrnd.FromSlice([]int{2, 2}, []int{1, 2, 3, 4})), []Option{WithDims()}, "{2,2} [[1 2] [3 4]]"},
		{"floats", arrnd.Must(arrnd.FromSlice([]int{2}, []float64{0.5, 1.0 / 3})), []Option{WithPrecision(3)}, "[0.5 0.333]"},
		{"strings", arrnd.Must(arrnd.FromSlice([]int{2}, []string{"a", "b c"})), nil, `["a" "b c"]`},
		{"empty", arrnd.Array[int]{}, nil, "[]"},
		{"empty dims", arrnd.Must(arrnd.Zeros[int](2, 0)), []Option{WithDims()}, "{2,0} []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.array, tt.opts...))
		})
	}
}

func TestFormatView(t *testing.T) {
	a := arrnd.Must(arrnd.FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6}))
	tr := arrnd.Must(a.Transpose())
	assert.Equal(t, "[[1 4] [2 5] [3 6]]", Format(tr))
}

func TestFormatNested(t *testing.T) {
	x := arrnd.Must(arrnd.FromSlice([]int{2}, []int{1, 2}))
	y := arrnd.Must(arrnd.FromSlice([]int{1}, []int{3}))
	grid := arrnd.Must(arrnd.FromSlice([]int{2}, []arrnd.Array[int]{x, y}))

	assert.Equal(t, "[[1 2] [3]]", Format(grid))
	assert.Equal(t, "{2} [{2} [1 2] {1} [3]]", Format(grid, WithDims()))
}
