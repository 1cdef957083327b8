// SPDX-License-Identifier: MIT

// Package grid layers two-dimensional (column,row) addressing on top of
// one-dimensional iteration.
//
// What:
//
//   - Grid[T] pairs a sequence source (iter.Seq[T]) with a fixed column count
//     and treats the flat, row-major sequence as a grid: offset = row*columns + col.
//   - Rows, columns, row/column ranges, sub-rectangles, both diagonals and the
//     transpose are derived as lazy sequence views; nothing is copied until a
//     consumer pulls (IntoTranspose and Collect are the explicit eager steps).
//   - Two attachment paths share one type: New takes ownership of a sequence,
//     FromSlice borrows an indexable buffer (O(1) Get, Ptr and Set that write
//     through to the caller's slice), and Refs yields pointers into a buffer
//     so every view can mutate it in place.
//
// Why:
//
//   - Parsed tables, image rows, game boards and sensor frames usually arrive
//     as flat buffers; the grid gives them 2D semantics without reshaping.
//
// Replay:
//
//   - A view can be iterated again exactly when its source can. Slices and
//     generator functions replay; seq.Once-style consuming sources do not.
//     Transpose drains each column separately and therefore needs a replayable
//     source; IntoTranspose collects once and works with any source.
//
// Preconditions:
//
//   - Shape violations are programmer errors and panic with an error value
//     wrapping one of the sentinels in errors.go (ErrInvalidColumns,
//     ErrColumnOutOfRange, ErrNegativeIndex, ErrBoundsOutOfRange,
//     ErrRaggedTranspose, ErrNotAddressable). Use the Validate* helpers to
//     check shapes up front when the input comes from users.
//   - A coordinate that is valid but past the end of the data is not an error:
//     Get reports false and the views simply end early.
//
// Complexity:
//
//   - IndexToFlat / IndexFromFlat: O(1).
//   - Get on slice-backed grids: O(1); on sequence-backed grids: O(offset).
//   - Row, Col, diagonals: O(offset) pulls to reach the first element, O(1) per
//     element afterwards; slice-backed grids index directly.
//   - Transpose: O(columns·n) pulls; IntoTranspose: O(n) time and memory.
package grid
