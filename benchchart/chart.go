// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders the key-search benchmark figures.
//
// There are two figures. SolveTime plots measured solve times against
// problem size on log-log axes with a quartile band and a dashed n²
// reference line. CandKeysHist plots the rank-deficit distributions
// of all trials and of the re-run hard subset as grouped histogram
// bars with Poisson error bars. Both come in a single-panel form and
// a stacked two-panel form that adds the mean number of candidate
// keys checked per problem size.
//
// Figures are written as vector PDF for inclusion in the paper or as
// PNG, selected by the format argument; WriteFigure picks the format
// from an output file's extension. Fonts, colors, and widths come
// from a Style, either the built-in DefaultStyle or a YAML style
// sheet loaded over it.
package benchchart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/keysolve/benchplot/benchcsv"
)

const pngDPI = 300

// WriteFigure creates the file at path and renders a figure into it.
// render receives the open file and the figure format named by the
// path's extension, "pdf" for solvetime.pdf.
func WriteFigure(path string, render func(w io.Writer, format string) error) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// newCanvas returns a canvas of the style's figure size that encodes
// itself in the given format, "pdf" or "png".
func newCanvas(format string, sty Style) (vg.CanvasWriterTo, error) {
	w := vg.Length(sty.Width) * vg.Inch
	h := vg.Length(sty.Height) * vg.Inch
	switch format {
	case "pdf":
		return vgpdf.New(w, h), nil
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
			vgimg.UseDPI(pngDPI), vgimg.UseBackgroundColor(color.White))}, nil
	}
	return nil, fmt.Errorf("unknown figure format %q", format)
}

// newPlot returns an empty plot with the style's fonts applied.
func newPlot(sty Style) *plot.Plot {
	p := plot.New()
	size := vg.Points(sty.FontSize)
	p.X.Label.TextStyle.Font.Size = size
	p.Y.Label.TextStyle.Font.Size = size
	p.X.Tick.Label.Font.Size = size
	p.Y.Tick.Label.Font.Size = size
	p.Legend.TextStyle.Font.Size = size
	p.Legend.Padding = vg.Points(2)
	return p
}

// solveTimeSizes are the problem sizes called out on the x axis of
// the solve-time figure.
var solveTimeSizes = []float64{50, 100, 200, 500}

// sizeTicks returns the solve-time x ticks with plain decimal labels,
// or with no labels for the upper panel of a shared x axis.
func sizeTicks(labels bool) plot.ConstantTicks {
	ts := make([]plot.Tick, len(solveTimeSizes))
	for i, v := range solveTimeSizes {
		ts[i].Value = v
		if labels {
			ts[i].Label = strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return plot.ConstantTicks(ts)
}

// binTicks returns one labeled tick per histogram bucket.
func binTicks(n int) plot.ConstantTicks {
	ts := make([]plot.Tick, n)
	for i := range ts {
		ts[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(i)}
	}
	return plot.ConstantTicks(ts)
}

// keysLine builds the candidate-keys panel shared by the two-panel
// figure variants: mean keys checked against problem size on a fixed
// 0 to 9 scale. A zero marker radius draws a plain line.
func keysLine(d *benchcsv.Timing, sty Style, col color.Color, marker vg.Length, xlabel, ylabel string) (*plot.Plot, error) {
	p := newPlot(sty)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	xys := make(plotter.XYs, d.Len())
	for i := range xys {
		xys[i].X = float64(d.N[i])
		xys[i].Y = d.Keys[i]
	}
	if marker > 0 {
		ln, sc, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = col
		ln.LineStyle.Width = vg.Points(sty.LineWidth)
		sc.GlyphStyle = draw.GlyphStyle{Color: col, Radius: marker, Shape: draw.CircleGlyph{}}
		p.Add(ln, sc)
	} else {
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = col
		ln.LineStyle.Width = vg.Points(sty.LineWidth)
		p.Add(ln)
	}

	if p.X.Min == p.X.Max {
		p.X.Min--
		p.X.Max++
	} else {
		span := p.X.Max - p.X.Min
		p.X.Min -= 0.05 * span
		p.X.Max += 0.05 * span
	}
	p.Y.Min, p.Y.Max = 0, 9
	return p, nil
}
