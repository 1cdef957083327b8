// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth and DefaultHeight size the image unless WithSize overrides them.
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	// DefaultColors is the number of palette steps.
	DefaultColors = 64
)

// Option configures Plot, Render and Encode.
type Option func(*options)

type options struct {
	width, height vg.Length
	title         string
	colors        int
	lo, hi        float64
	fixedRange    bool
}

// WithSize sets the image size. Panics unless both are positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("heatmap: WithSize(%v, %v): size must be positive", width, height))
	}

	return func(o *options) { o.width, o.height = width, height }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithColors sets the number of palette steps. Panics when n < 2.
func WithColors(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("heatmap: WithColors(%d): need at least 2 colors", n))
	}

	return func(o *options) { o.colors = n }
}

// WithRange pins the color scale to [lo, hi] instead of the data range.
// Values outside it take the palette's end colors.
// Panics unless lo < hi and both are finite.
func WithRange(lo, hi float64) Option {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic(fmt.Sprintf("heatmap: WithRange(%v, %v): need finite lo < hi", lo, hi))
	}

	return func(o *options) { o.lo, o.hi, o.fixedRange = lo, hi, true }
}

func gatherOptions(opts []Option) options {
	o := options{
		width:  DefaultWidth,
		height: DefaultHeight,
		colors: DefaultColors,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
