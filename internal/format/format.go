// Package format renders arrays as deterministic text.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Array is the read-only view of an array that the formatter needs.
// Every arrnd.Array instantiation satisfies it, including nested ones.
type Array interface {
	Dims() []int
	AnyValues() []any
}

type options struct {
	dims      bool
	precision int
}

// Option configures Format.
type Option func(*options)

// WithDims prefixes the output with the dimensions, e.g. "{2,3} [[...]]".
func WithDims() Option {
	return func(o *options) { o.dims = true }
}

// WithPrecision sets the number of significant digits for floats.
// The default (-1) prints the shortest exact representation.
func WithPrecision(p int) Option {
	return func(o *options) { o.precision = p }
}

// Format renders a in nested brackets, row-major, one bracket level per axis:
//
//	{3}    → [1 2 3]
//	{3, 1} → [[1] [2] [3]]
//	empty  → []
//
// Elements that are arrays themselves are rendered recursively.
func Format(a Array, opts ...Option) string {
	o := options{precision: -1}
	for _, opt := range opts {
		opt(&o)
	}
	var sb strings.Builder
	write(&sb, a, &o)
	return sb.String()
}

func write(sb *strings.Builder, a Array, o *options) {
	dims := a.Dims()
	if o.dims {
		sb.WriteString("{")
		for i, d := range dims {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(d))
		}
		sb.WriteString("} ")
	}
	values := a.AnyValues()
	if len(values) == 0 {
		sb.WriteString("[]")
		return
	}
	writeAxis(sb, dims, values, o)
}

// writeAxis writes values laid out row-major over dims.
func writeAxis(sb *strings.Builder, dims []int, values []any, o *options) {
	sb.WriteString("[")
	if len(dims) == 1 {
		for i, v := range values {
			if i > 0 {
				sb.WriteString(" ")
			}
			writeValue(sb, v, o)
		}
	} else {
		step := len(values) / dims[0]
		for i := 0; i < dims[0]; i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			writeAxis(sb, dims[1:], values[i*step:(i+1)*step], o)
		}
	}
	sb.WriteString("]")
}

func writeValue(sb *strings.Builder, v any, o *options) {
	switch x := v.(type) {
	case Array:
		inner := *o
		write(sb, x, &inner)
	case float64:
		sb.WriteString(strconv.FormatFloat(x, 'g', o.precision, 64))
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(x), 'g', o.precision, 32))
	case string:
		sb.WriteString(strconv.Quote(x))
	default:
		fmt.Fprint(sb, x)
	}
}
