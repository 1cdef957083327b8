// SPDX-License-Identifier: MIT

// Package grid: domain types. Grid itself, the Coord pair yielded by Cells,
// and the internal random-access capability of slice-backed sources.

package grid

import "iter"

// Coord is a (column,row) position. Col comes first to match the argument
// order of every accessor in this package.
type Coord struct {
	Col, Row int
}

// Grid adapts a flat, row-major sequence to two-dimensional addressing.
//   - columns is fixed at construction; zero or negative values are accepted
//     but every operation dividing by it panics with ErrInvalidColumns.
//   - seq is the element sequence all lazy views are derived from.
//   - acc is non-nil when the source supports O(1) indexed access; derived
//     views remap it so they keep O(1) access and write-through.
type Grid[T any] struct {
	columns int
	rows    int // row-count hint, DefaultRows when unknown
	seq     iter.Seq[T]
	acc     *access[T]
}

// access is the random-access capability of a slice-backed source.
type access[T any] struct {
	n   int            // number of addressable elements
	at  func(i int) T  // element at flat offset i, 0 <= i < n
	ptr func(i int) *T // address of element i; nil when items are not addressable
}

// remap derives a capability of length n whose offset i reads the parent's
// offset f(i).
func (a *access[T]) remap(n int, f func(int) int) *access[T] {
	out := &access[T]{
		n:  n,
		at: func(i int) T { return a.at(f(i)) },
	}
	if a.ptr != nil {
		out.ptr = func(i int) *T { return a.ptr(f(i)) }
	}

	return out
}

// values yields the addressable elements in order.
func (a *access[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.n; i++ {
			if !yield(a.at(i)) {
				return
			}
		}
	}
}
