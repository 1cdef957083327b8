// SPDX-License-Identifier: MIT

// Package heatmap renders a numeric grid.Grid as a heat map image with
// gonum.org/v1/plot.
//
// Surface adapts a rectangular *grid.Grid[float64] to plotter.GridXYZ:
// column c maps to X = c, row r to Y = r, and the cell value to Z. Rows are
// drawn top to bottom so the image reads like the grid does.
//
// Render saves to a file whose extension picks the format (png, svg, pdf,
// ...); Encode writes to an io.Writer in a named format. NaN cells are left
// transparent.
package heatmap
