// SPDX-License-Identifier: MIT

package gridtext

import "errors"

var (
	// ErrEmpty indicates the input held no records.
	ErrEmpty = errors.New("gridtext: no records")
	// ErrRaggedRow indicates a record whose field count differs from the
	// first record's, other than a short final record.
	ErrRaggedRow = errors.New("gridtext: record length differs from first record")
)
