// SPDX-License-Identifier: MIT

// Package gridtext reads delimited text into a grid.Grid and writes a grid
// back out, one record per row.
//
// The column count comes from the first record. Every following record must
// match it, except the last, which may be shorter: it becomes the partial
// last row that grid.Grid permits.
//
//	g, err := gridtext.ParseInts(strings.NewReader("1,2,3\n4,5,6\n"))
//	// g.Columns() == 3, g.Row(1) yields 4 5 6
//
// Parsing goes through encoding/csv, so quoted fields, custom separators
// (WithComma) and comment lines (WithComment) behave as they do there.
// Field parse failures are reported with their line and field number and
// wrap the parser's error.
package gridtext
