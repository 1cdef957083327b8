// SPDX-License-Identifier: MIT

package heatmap

import "errors"

var (
	// ErrEmptyGrid indicates a nil grid, a grid without columns, or one without cells.
	ErrEmptyGrid = errors.New("heatmap: grid has no cells")
	// ErrNotRectangular indicates a partial last row.
	ErrNotRectangular = errors.New("heatmap: grid length is not a multiple of its columns")
)
