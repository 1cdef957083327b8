// SPDX-License-Identifier: MIT

// Package grid: functional options for grid construction.
// Options only carry hints; they never change index arithmetic.

package grid

// DefaultRows marks the row count as unknown; it is derived from the source
// length when the source is a slice and left unknown otherwise.
const DefaultRows = -1

const panicRowsInvalid = "grid: WithRows: rows must be >= 0"

// Option configures a Grid at construction time.
type Option func(*options)

type options struct {
	rows int // row-count hint, DefaultRows when absent
}

// WithRows records the expected number of rows. The hint is reported by
// RowCount and carried through row-preserving views; it is never used to
// truncate the source. Panics when n < 0 (programmer error).
func WithRows(n int) Option {
	if n < 0 {
		panic(panicRowsInvalid)
	}

	return func(o *options) { o.rows = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) options {
	o := options{rows: DefaultRows}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
