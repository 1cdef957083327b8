// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Non-panicking shape checks mirroring the preconditions of the grid views.
//  - Callers holding user-supplied shapes validate first, then invoke the
//    panicking operations knowing they cannot fail.
//
// All validators are pure, O(1) and return plain sentinels.

package grid

// ValidateColumns checks that a column count can be divided by.
// Returns ErrInvalidColumns when columns <= 0.
func ValidateColumns(columns int) error {
	if columns <= 0 {
		return ErrInvalidColumns
	}

	return nil
}

// ValidateColumn checks 0 <= col < columns, the precondition of Get, Col and
// the diagonals. Returns ErrNegativeIndex or ErrColumnOutOfRange.
func ValidateColumn(col, columns int) error {
	if col < 0 {
		return ErrNegativeIndex
	}
	if col >= columns {
		return ErrColumnOutOfRange
	}

	return nil
}

// ValidateBounds checks that b resolves against limit (columns for ColRange,
// math.MaxInt for RowRange). Returns ErrBoundsOutOfRange.
func ValidateBounds(b Bounds, limit int) error {
	_, _, err := b.Resolve(limit)

	return err
}

// ValidateTransposable checks that a source of length n can be eagerly
// transposed with the given column count.
// Returns ErrInvalidColumns or ErrRaggedTranspose.
func ValidateTransposable(n, columns int) error {
	if err := ValidateColumns(columns); err != nil {
		return err
	}
	if n%columns != 0 {
		return ErrRaggedTranspose
	}

	return nil
}
