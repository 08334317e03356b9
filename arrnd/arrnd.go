// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package arrnd

import (
	"cmp"

	"github.com/born-ml/ndarray/internal/arrnd"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Type aliases for public API

// Array is an N-dimensional view over shared storage.
type Array[T any] = arrnd.Array[T]

// Header describes dims, strides and offset of an array view.
type Header = arrnd.Header

// Interval selects a strided half-open range along one axis.
type Interval = arrnd.Interval

// Filter is a single-use scatter proxy returned by the Select methods.
type Filter[T any] = arrnd.Filter[T]

// Error is the concrete error returned by array operations.
type Error = arrnd.Error

// Number is the constraint for arithmetic element types.
type Number = arrnd.Number

// Float is the constraint for floating-point element types.
type Float = arrnd.Float

// ParallelConfig controls chunked parallel transforms.
type ParallelConfig = parallel.Config

// Error kinds.
var (
	ErrShapeMismatch   = arrnd.ErrShapeMismatch
	ErrIndexOutOfRange = arrnd.ErrIndexOutOfRange
	ErrInvalidCast     = arrnd.ErrInvalidCast
	ErrEmptyOperation  = arrnd.ErrEmptyOperation
	ErrFilterConsumed  = arrnd.ErrFilterConsumed
)

// NewHeader creates a row-major header for dims.
func NewHeader(dims ...int) (Header, error) { return arrnd.NewHeader(dims...) }

// Broadcast computes the broadcast of two dims lists.
func Broadcast(a, b []int) ([]int, error) { return arrnd.Broadcast(a, b) }

// DefaultParallelConfig returns a parallel config sized for the current machine.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// Intervals

// Full selects a whole axis.
func Full() Interval { return arrnd.Full() }

// At selects a single index; negative counts from the end.
func At(i int) Interval { return arrnd.At(i) }

// From selects [i, len).
func From(i int) Interval { return arrnd.From(i) }

// Until selects [0, i).
func Until(i int) Interval { return arrnd.Until(i) }

// Between selects [start, stop).
func Between(start, stop int) Interval { return arrnd.Between(start, stop) }

// Range selects [start, stop) with a step.
func Range(start, stop, step int) Interval { return arrnd.Range(start, stop, step) }

// Creation

// Zeros creates an array of zero values.
func Zeros[T any](dims ...int) (Array[T], error) { return arrnd.Zeros[T](dims...) }

// Fill creates an array with every element set to value.
func Fill[T any](dims []int, value T) (Array[T], error) { return arrnd.Fill(dims, value) }

// FromSlice creates an array from a copy of data laid out row-major.
func FromSlice[T any](dims []int, data []T) (Array[T], error) { return arrnd.FromSlice(dims, data) }

// Generate creates an array whose i-th row-major element is f(i).
func Generate[T any](dims []int, f func(i int) T) (Array[T], error) {
	return arrnd.Generate(dims, f)
}

// Arange creates the rank 1 array 0, 1, ..., n-1.
func Arange[T Number](n int) Array[T] { return arrnd.Arange[T](n) }

// Must panics if err is non-nil.
func Must[T any](v T, err error) T { return arrnd.Must(v, err) }

// Traversal

// Transform maps f over a into a new array.
func Transform[T, U any](a Array[T], f func(T) U) Array[U] { return arrnd.Transform(a, f) }

// TransformWith maps f over the broadcast pair (a, b).
func TransformWith[T, V, U any](a Array[T], b Array[V], f func(T, V) U) (Array[U], error) {
	return arrnd.TransformWith(a, b, f)
}

// TransformParallel is Transform split into chunks per cfg. f must be safe for concurrent use.
func TransformParallel[T, U any](a Array[T], cfg ParallelConfig, f func(T) U) Array[U] {
	return arrnd.TransformParallel(a, cfg, f)
}

// ApplyWith updates a in place with f(a, b), b broadcast to a's dims.
func ApplyWith[T, V any](a Array[T], b Array[V], f func(T, V) T) (Array[T], error) {
	return arrnd.ApplyWith(a, b, f)
}

// ForEach calls f on every element in row-major order.
func ForEach[T any](a Array[T], f func(T)) { arrnd.ForEach(a, f) }

// Reduce folds a with f seeded by its first element.
func Reduce[T any](a Array[T], f func(acc, x T) T) (T, error) { return arrnd.Reduce(a, f) }

// Fold folds a with f starting from seed.
func Fold[T, U any](a Array[T], seed U, f func(acc U, x T) U) U { return arrnd.Fold(a, seed, f) }

// ReduceAxis reduces along one axis, removing it.
func ReduceAxis[T any](a Array[T], axis int, f func(acc, x T) T) (Array[T], error) {
	return arrnd.ReduceAxis(a, axis, f)
}

// FoldAxis folds along one axis from a single seed.
func FoldAxis[T, U any](a Array[T], axis int, seed U, f func(acc U, x T) U) (Array[U], error) {
	return arrnd.FoldAxis(a, axis, seed, f)
}

// FoldAxisWith folds along one axis with per-position seeds.
func FoldAxisWith[T, U any](a Array[T], axis int, seeds Array[U], f func(acc U, x T) U) (Array[U], error) {
	return arrnd.FoldAxisWith(a, axis, seeds, f)
}

// All reports whether pred holds for every element.
func All[T any](a Array[T], pred func(T) bool) bool { return arrnd.All(a, pred) }

// Any reports whether pred holds for some element.
func Any[T any](a Array[T], pred func(T) bool) bool { return arrnd.Any(a, pred) }

// Count returns the number of elements satisfying pred.
func Count[T any](a Array[T], pred func(T) bool) int { return arrnd.Count(a, pred) }

// Numeric

// Sum returns the sum of all elements.
func Sum[T Number](a Array[T]) T { return arrnd.Sum(a) }

// Prod returns the product of all elements.
func Prod[T Number](a Array[T]) T { return arrnd.Prod(a) }

// Min returns the smallest element.
func Min[T cmp.Ordered](a Array[T]) (T, error) { return arrnd.Min(a) }

// Max returns the largest element.
func Max[T cmp.Ordered](a Array[T]) (T, error) { return arrnd.Max(a) }

// SumAxis sums along one axis.
func SumAxis[T Number](a Array[T], axis int) (Array[T], error) { return arrnd.SumAxis(a, axis) }

// Add returns a + b with broadcasting.
func Add[T Number](a, b Array[T]) (Array[T], error) { return arrnd.Add(a, b) }

// Sub returns a - b with broadcasting.
func Sub[T Number](a, b Array[T]) (Array[T], error) { return arrnd.Sub(a, b) }

// Mul returns a * b with broadcasting.
func Mul[T Number](a, b Array[T]) (Array[T], error) { return arrnd.Mul(a, b) }

// Div returns a / b with broadcasting.
func Div[T Number](a, b Array[T]) (Array[T], error) { return arrnd.Div(a, b) }

// Scale returns a * s.
func Scale[T Number](a Array[T], s T) Array[T] { return arrnd.Scale(a, s) }

// Equal reports whether a and b have the same dims and elements.
func Equal[T comparable](a, b Array[T]) bool { return arrnd.Equal(a, b) }

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, V any](a Array[T], b Array[V], eq func(T, V) bool) bool {
	return arrnd.EqualFunc(a, b, eq)
}

// AllClose reports whether a and b are element-wise equal within default tolerances.
func AllClose[T Float](a, b Array[T]) bool { return arrnd.AllClose(a, b) }

// Dot computes the batched matrix product over the trailing two axes.
func Dot[T Number](a, b Array[T]) (Array[T], error) { return arrnd.Dot(a, b) }

// Nesting

// Lift turns an operation on Array[T] into one on Array[Array[T]].
func Lift[T, U any](op func(Array[T]) (U, error)) func(Array[Array[T]]) (Array[U], error) {
	return arrnd.Lift(op)
}

// Lift2 turns a binary operation into one over nested arrays with broadcast outer dims.
func Lift2[T, V, U any](op func(Array[T], Array[V]) (U, error)) func(Array[Array[T]], Array[Array[V]]) (Array[U], error) {
	return arrnd.Lift2(op)
}

// ApplyLevel applies f in place to the elements found level arrays deep.
func ApplyLevel[E, T any](a Array[T], level int, f func(E) E) error {
	return arrnd.ApplyLevel(a, level, f)
}

// ForEachLevel visits the elements found level arrays deep.
func ForEachLevel[E, T any](a Array[T], level int, f func(E)) error {
	return arrnd.ForEachLevel(a, level, f)
}

// Flatten collects the elements found level arrays deep in row-major order.
func Flatten[E, T any](a Array[T], level int) ([]E, error) { return arrnd.Flatten[E](a, level) }
