// SPDX-License-Identifier: MIT

package gridtext

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/itergrid/grid"
)

// Parse reads every record from r, converts each field with parse and
// returns a slice-backed grid whose column count is the first record's
// length. The grid carries a rows hint equal to the number of data records.
//
// Errors: ErrEmpty when r holds no data records; ErrRaggedRow (with the line
// number) when a record other than the last is shorter, or any record is
// longer, than the first; csv syntax errors; parse errors wrapped with their
// line and 1-based field number.
func Parse[T any](r io.Reader, parse func(string) (T, error), opts ...Option) (*grid.Grid[T], error) {
	o := gatherOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.Comment = o.comment
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var (
		buf     []T
		columns int
		rows    int
		short   int // line of a short record, which must be the last
	)
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gridtext: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if short > 0 {
			return nil, fmt.Errorf("gridtext: line %d: %w", short, ErrRaggedRow)
		}
		switch {
		case first:
			columns = len(rec)
			if o.header {
				continue
			}
		case len(rec) > columns:
			return nil, fmt.Errorf("gridtext: line %d: %d fields, want %d: %w", line, len(rec), columns, ErrRaggedRow)
		case len(rec) < columns:
			short = line
		}

		for i, field := range rec {
			if o.trimSpace {
				field = strings.TrimSpace(field)
			}
			v, err := parse(field)
			if err != nil {
				return nil, fmt.Errorf("gridtext: line %d, field %d: %w", line, i+1, err)
			}
			buf = append(buf, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, ErrEmpty
	}

	return grid.FromSlice(buf, columns, grid.WithRows(rows)), nil
}

// ParseInts parses base-10 integers.
func ParseInts(r io.Reader, opts ...Option) (*grid.Grid[int], error) {
	return Parse(r, strconv.Atoi, opts...)
}

// ParseFloats parses 64-bit floats in any syntax strconv.ParseFloat accepts.
func ParseFloats(r io.Reader, opts ...Option) (*grid.Grid[float64], error) {
	return Parse(r, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, opts...)
}

// ParseStrings keeps every field as is.
func ParseStrings(r io.Reader, opts ...Option) (*grid.Grid[string], error) {
	return Parse(r, func(s string) (string, error) { return s, nil }, opts...)
}
