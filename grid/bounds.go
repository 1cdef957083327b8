// SPDX-License-Identifier: MIT

// Package grid: range bounds over row or column indices.
//
// Bounds mirror the usual half-open/closed/unbounded range forms and resolve
// into a concrete [start,end) against a maximum. An unbounded start is 0; an
// unbounded end is the maximum (the column count for columns, math.MaxInt for
// rows, where the source length is the only real ceiling).

package grid

import (
	"fmt"
	"math"
)

// BoundKind selects how a Bound's value is interpreted.
type BoundKind uint8

const (
	// Unbounded means the range extends to its natural limit (0 or max).
	Unbounded BoundKind = iota
	// Inclusive means the value itself belongs to the range.
	Inclusive
	// Exclusive means the range stops just before (or starts just after) the value.
	Exclusive
)

// Bound is one end of a range.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Included returns an inclusive bound at v.
func Included(v int) Bound { return Bound{Kind: Inclusive, Value: v} }

// Excluded returns an exclusive bound at v.
func Excluded(v int) Bound { return Bound{Kind: Exclusive, Value: v} }

// Bounds is a range over row or column indices. The zero value is the full range.
type Bounds struct {
	Start, End Bound
}

// Span returns [start, end).
func Span(start, end int) Bounds { return Bounds{Included(start), Excluded(end)} }

// Closed returns [start, end].
func Closed(start, end int) Bounds { return Bounds{Included(start), Included(end)} }

// From returns [start, max).
func From(start int) Bounds { return Bounds{Start: Included(start)} }

// To returns [0, end).
func To(end int) Bounds { return Bounds{End: Excluded(end)} }

// Through returns [0, end].
func Through(end int) Bounds { return Bounds{End: Included(end)} }

// Full returns [0, max).
func Full() Bounds { return Bounds{} }

// String renders b in interval notation, e.g. "[1,3)" or "[2,∞)".
func (b Bounds) String() string {
	var lo, hi string
	switch b.Start.Kind {
	case Inclusive:
		lo = fmt.Sprintf("[%d", b.Start.Value)
	case Exclusive:
		lo = fmt.Sprintf("(%d", b.Start.Value)
	default:
		lo = "[0"
	}
	switch b.End.Kind {
	case Inclusive:
		hi = fmt.Sprintf("%d]", b.End.Value)
	case Exclusive:
		hi = fmt.Sprintf("%d)", b.End.Value)
	default:
		hi = "∞)"
	}

	return lo + "," + hi
}

// Resolve converts b into a concrete half-open [start,end) within [0,limit].
//
// Errors:
//   - ErrBoundsOutOfRange when start < 0, start > end, end > limit, or an
//     inclusive/exclusive value overflows on the +1 adjustment.
//
// Complexity: O(1).
func (b Bounds) Resolve(limit int) (start, end int, err error) {
	switch b.Start.Kind {
	case Inclusive:
		start = b.Start.Value
	case Exclusive:
		if b.Start.Value == math.MaxInt {
			return 0, 0, ErrBoundsOutOfRange
		}
		start = b.Start.Value + 1
	default:
		start = 0
	}

	switch b.End.Kind {
	case Inclusive:
		if b.End.Value == math.MaxInt {
			return 0, 0, ErrBoundsOutOfRange
		}
		end = b.End.Value + 1
	case Exclusive:
		end = b.End.Value
	default:
		end = limit
	}

	if start < 0 || start > end || end > limit {
		return 0, 0, ErrBoundsOutOfRange
	}

	return start, end, nil
}
