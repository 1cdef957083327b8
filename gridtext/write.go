// SPDX-License-Identifier: MIT

package gridtext

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/itergrid/grid"
)

// Write emits g as delimited text, one record per row, formatting each
// cell with format. A partial last row is written as a short record, so
// Parse reads the output back into the same shape. A record made of a single
// empty field is written as "" so it does not read back as a blank line.
// Only WithComma applies; other options are ignored.
//
// Errors: grid.ErrInvalidColumns when g has no columns; write errors from w.
func Write[T any](w io.Writer, g *grid.Grid[T], format func(T) string, opts ...Option) error {
	columns := g.Columns()
	if err := grid.ValidateColumns(columns); err != nil {
		return fmt.Errorf("gridtext: %w", err)
	}
	o := gatherOptions(opts)

	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	record := make([]string, 0, columns)
	for at, v := range g.Cells() {
		record = append(record, format(v))
		if at.Col < columns-1 {
			continue
		}
		if err := writeRecord(w, cw, record); err != nil {
			return fmt.Errorf("gridtext: row %d: %w", at.Row, err)
		}
		record = record[:0]
	}
	if len(record) > 0 {
		if err := writeRecord(w, cw, record); err != nil {
			return fmt.Errorf("gridtext: last row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// writeRecord writes record through cw, except a lone empty field: csv.Writer
// emits that as an empty line, which csv.Reader skips.
func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")

	return err
}

// WriteFloats writes g with the shortest representation that round-trips.
func WriteFloats(w io.Writer, g *grid.Grid[float64], opts ...Option) error {
	return Write(w, g, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }, opts...)
}

// WriteInts writes g in base 10.
func WriteInts(w io.Writer, g *grid.Grid[int], opts ...Option) error {
	return Write(w, g, strconv.Itoa, opts...)
}
