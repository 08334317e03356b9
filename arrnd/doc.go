// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arrnd provides generic N-dimensional arrays for Go.
//
// # Overview
//
// An Array[T] is a small value: a shape header (dims, strides, offset) and a
// pointer to reference-counted storage. Slicing, transposing, squeezing and
// expanding produce views that share storage with their source; writes
// through a view are visible through every other view of the same storage.
//
//   - Views: Slice with Interval values, Subarray with leading subscripts
//   - Broadcasting: NumPy-style, right-aligned, for every binary operation
//   - Traversal: Transform, Apply, Reduce, Fold, along the whole array or one axis
//   - Nesting: Array[Array[T]] with Lift / Lift2 and runtime level dispatch
//   - Scatter: Select / SelectMask / SelectFunc return single-use filters
//   - Dot: batched matrix product over the trailing two axes
//
// # Basic Usage
//
//	a := arrnd.Must(arrnd.FromSlice([]int{2, 3}, []int{1, 2, 3, 4, 5, 6}))
//	b := arrnd.Must(arrnd.FromSlice([]int{3, 1}, []int{1, 2, 3}))
//
//	c, err := arrnd.Dot(a, b) // dims [2 1]: 14 32
//	if err != nil {
//	    return err
//	}
//
//	col := arrnd.Must(a.Slice(arrnd.Full(), arrnd.At(1))) // view: 2 5
//	_ = a.SelectFunc(func(x int) bool { return x > 4 }).Assign(0)
//
// # Errors
//
// Fallible operations return an error that matches one of ErrShapeMismatch,
// ErrIndexOutOfRange, ErrInvalidCast, ErrEmptyOperation or ErrFilterConsumed
// with errors.Is. The concrete type is *Error, which names the failing operation.
//
// # Concurrency
//
// Reference counts are atomic, so views may be created and released from
// several goroutines. Element reads and writes are not synchronized.
package arrnd
