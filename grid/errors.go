// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every precondition failure in this package panics with an error that wraps
// exactly one of these sentinels, so a recovering caller can match it with
// errors.Is. Validators return the same sentinels without panicking.

package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColumns indicates an operation that divides by the column
	// count was invoked on a grid with columns <= 0.
	ErrInvalidColumns = errors.New("grid: columns must be > 0")

	// ErrColumnOutOfRange indicates a column index outside [0, columns).
	ErrColumnOutOfRange = errors.New("grid: column index out of range")

	// ErrNegativeIndex indicates a negative row, column or flat offset.
	ErrNegativeIndex = errors.New("grid: negative index")

	// ErrBoundsOutOfRange indicates a malformed range: start > end,
	// negative start, or end past the declared maximum.
	ErrBoundsOutOfRange = errors.New("grid: bounds out of range")

	// ErrRaggedTranspose indicates an eager transpose of a source whose
	// length is not a multiple of the column count.
	ErrRaggedTranspose = errors.New("grid: length not divisible by columns")

	// ErrNotAddressable indicates Ptr/Set on a grid whose source is not an
	// addressable buffer.
	ErrNotAddressable = errors.New("grid: source is not addressable")
)

// ---------- method tags for wrapped errors ----------

const (
	ctxIndexFromFlat = "IndexFromFlat"
	ctxGet           = "Get"
	ctxPtr           = "Ptr"
	ctxSet           = "Set"
	ctxRow           = "Row"
	ctxCol           = "Col"
	ctxRowRange      = "RowRange"
	ctxColRange      = "ColRange"
	ctxDiagFwd       = "DiagFwd"
	ctxDiagBwd       = "DiagBwd"
	ctxCells         = "Cells"
	ctxIntoTranspose = "IntoTranspose"
)

// gridErrorf wraps err with the method tag and call-site arguments,
// e.g. "Grid.Col(7): grid: column index out of range".
func gridErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Grid.%s(%s): %w", method, strings.Join(parts, ","), err)
}
