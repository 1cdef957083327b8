// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/itergrid/grid"
)

// Plot builds a heat map plot of g without writing it anywhere.
// The color scale spans the data range unless WithRange pins it; a constant
// grid gets a unit-wide range so every cell takes the lowest color.
func Plot(g *grid.Grid[float64], opts ...Option) (*plot.Plot, error) {
	o := gatherOptions(opts)
	s, err := NewSurface(g)
	if err != nil {
		return nil, err
	}

	lo, hi := o.lo, o.hi
	if !o.fixedRange {
		var ok bool
		if lo, hi, ok = s.Range(); !ok {
			lo, hi = 0, 1
		}
		if lo == hi {
			hi = lo + 1
		}
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(lo)
	cm.SetMax(hi)
	pal := cm.Palette(o.colors)
	colors := pal.Colors()

	hm := plotter.NewHeatMap(s, pal)
	hm.Min, hm.Max = lo, hi
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.Transparent

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(hm)

	return p, nil
}

// Render draws g and saves it to path; the extension selects the format.
func Render(g *grid.Grid[float64], path string, opts ...Option) error {
	o := gatherOptions(opts)
	p, err := Plot(g, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("heatmap: save %s: %w", path, err)
	}

	return nil
}

// Encode draws g and writes it to w in format ("png", "svg", "pdf", ...).
func Encode(w io.Writer, g *grid.Grid[float64], format string, opts ...Option) error {
	o := gatherOptions(opts)
	p, err := Plot(g, opts...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("heatmap: format %q: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("heatmap: write %s: %w", format, err)
	}

	return nil
}
