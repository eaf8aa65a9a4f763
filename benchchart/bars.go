// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/keysolve/benchplot/benchmath"
)

// histBars draws one histogram series as bars with Poisson error
// whiskers. Unlike plotter.BarChart, which positions bars in display
// units, offsets and widths here are in data coordinates so the two
// series of a bucket stay paired under resizing.
type histBars struct {
	freq, errs []float64
	offset     float64 // bar center offset from the bucket index, in bucket units
	width      float64 // bar width in bucket units
	color      color.Color
	errStyle   draw.LineStyle
}

func newHistBars(h *benchmath.Hist, offset, width float64, col color.Color, lw vg.Length) *histBars {
	return &histBars{
		freq:     h.Freq,
		errs:     h.Err,
		offset:   offset,
		width:    width,
		color:    col,
		errStyle: draw.LineStyle{Color: color.Black, Width: lw},
	}
}

// Plot implements the plot.Plotter interface.
func (b *histBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, f := range b.freq {
		if f == 0 {
			continue
		}
		x := float64(i) + b.offset
		xlo := trX(x - b.width/2)
		xhi := trX(x + b.width/2)
		y0, y1 := trY(0), trY(f)
		pts := []vg.Point{
			{X: xlo, Y: y0},
			{X: xlo, Y: y1},
			{X: xhi, Y: y1},
			{X: xhi, Y: y0},
		}
		c.FillPolygon(b.color, c.ClipPolygonY(pts))

		e := b.errs[i]
		whisk := c.ClipLinesY([]vg.Point{
			{X: trX(x), Y: trY(f - e)},
			{X: trX(x), Y: trY(f + e)},
		})
		c.StrokeLines(b.errStyle, whisk...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *histBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = b.offset - b.width/2
	xmax = float64(len(b.freq)-1) + b.offset + b.width/2
	for i, f := range b.freq {
		if hi := f + b.errs[i]; hi > ymax {
			ymax = hi
		}
	}
	return xmin, xmax, 0, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *histBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.color, pts)
}

// A cornerLabel draws a sub-figure label such as "(a)" at a fixed
// position given as a fraction of the plot area, not in data
// coordinates.
type cornerLabel struct {
	text string
	x, y float64
	left bool // anchor the text's left edge instead of its right
	top  bool // anchor the text's top edge instead of its bottom
}

// Plot implements the plot.Plotter interface.
func (l *cornerLabel) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := plt.X.Label.TextStyle
	sty.XAlign, sty.YAlign = draw.XRight, draw.YBottom
	if l.left {
		sty.XAlign = draw.XLeft
	}
	if l.top {
		sty.YAlign = draw.YTop
	}
	pt := vg.Point{
		X: c.Min.X + vg.Length(l.x)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(l.y)*(c.Max.Y-c.Min.Y),
	}
	c.FillText(sty, pt, l.text)
}
