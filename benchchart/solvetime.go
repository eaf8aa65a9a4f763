// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-gg/generic/slice"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/keysolve/benchplot/benchcsv"
	"github.com/keysolve/benchplot/benchmath"
)

// SolveTime renders the solve-time figure to w: median solve times
// against problem size on log-log axes, the first-to-third-quartile
// band, and a dashed reference line fit·n². With keysPanel the paper
// layout is produced, stacking a candidate-keys panel under the time
// panel on a shared x axis; without it the times are drawn as lone
// markers with a dark edge.
//
// All sizes, times, and quartiles must be positive, or the log axes
// have nothing to show for them.
func SolveTime(w io.Writer, format string, d *benchcsv.Timing, fit float64, sty Style, keysPanel bool) error {
	if err := sty.validate(); err != nil {
		return err
	}
	if d.Len() == 0 {
		return benchmath.ErrNoSamples
	}
	for i, n := range d.N {
		if n <= 0 {
			return fmt.Errorf("size %d is %d: %w", i, n, benchmath.ErrNonPositive)
		}
		if d.Time[i] <= 0 || d.ErrLow[i] <= 0 || d.ErrHigh[i] <= 0 {
			return fmt.Errorf("record %d has a non-positive time: %w", i, benchmath.ErrNonPositive)
		}
	}
	if fit <= 0 {
		return fmt.Errorf("fit coefficient is %g: %w", fit, benchmath.ErrNonPositive)
	}
	seriesCol, err := parseColor(sty.SeriesColor)
	if err != nil {
		return err
	}
	fitCol, err := parseColor(sty.FitColor)
	if err != nil {
		return err
	}
	keysCol, err := parseColor(sty.KeysColor)
	if err != nil {
		return err
	}

	var xs []float64
	slice.Convert(&xs, d.N)
	// The shared x range, padded in log space so end markers clear
	// the frame.
	xmin := slice.Min(xs).(float64) / 1.15
	xmax := slice.Max(xs).(float64) * 1.15

	tp := newPlot(sty)
	tp.X.Scale = plot.LogScale{}
	tp.Y.Scale = plot.LogScale{}
	tp.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	tp.X.Tick.Marker = sizeTicks(!keysPanel)
	tp.Y.Label.Text = "Solve time [s]"

	band := make(plotter.XYs, 0, 2*d.Len())
	for i := range xs {
		band = append(band, plotter.XY{X: xs[i], Y: d.ErrLow[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: xs[i], Y: d.ErrHigh[i]})
	}
	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return err
	}
	poly.Color = withAlpha(seriesCol, sty.BandAlpha)
	poly.LineStyle.Width = 0

	ref := make(plotter.XYs, d.Len())
	for i, x := range xs {
		ref[i] = plotter.XY{X: x, Y: fit * x * x}
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return err
	}
	refLine.LineStyle = draw.LineStyle{
		Color:  fitCol,
		Width:  vg.Points(sty.LineWidth),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}

	times := make(plotter.XYs, d.Len())
	for i, x := range xs {
		times[i] = plotter.XY{X: x, Y: d.Time[i]}
	}

	tp.Add(poly, refLine)
	marker := vg.Points(sty.MarkerSize)
	if keysPanel {
		ln, sc, err := plotter.NewLinePoints(times)
		if err != nil {
			return err
		}
		ln.LineStyle.Color = seriesCol
		ln.LineStyle.Width = vg.Points(sty.LineWidth)
		sc.GlyphStyle = draw.GlyphStyle{Color: seriesCol, Radius: marker, Shape: draw.CircleGlyph{}}
		tp.Add(ln, sc)
		tp.Legend.Add("Solve time", ln, sc)
	} else {
		fill, err := plotter.NewScatter(times)
		if err != nil {
			return err
		}
		fill.GlyphStyle = draw.GlyphStyle{Color: seriesCol, Radius: marker, Shape: draw.CircleGlyph{}}
		edge, err := plotter.NewScatter(times)
		if err != nil {
			return err
		}
		edge.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: marker, Shape: draw.RingGlyph{}}
		tp.Add(fill, edge)
		tp.Legend.Add("Solve time", fill, edge)
	}
	tp.Legend.Add("∝ n²", refLine)
	tp.Legend.Top = true
	tp.Legend.Left = true

	tp.X.Min, tp.X.Max = xmin, xmax
	if tp.Y.Min == tp.Y.Max {
		tp.Y.Min /= 2
		tp.Y.Max *= 2
	} else {
		tp.Y.Min /= 1.3
		tp.Y.Max *= 1.3
	}

	can, err := newCanvas(format, sty)
	if err != nil {
		return err
	}
	dc := draw.New(can)

	if !keysPanel {
		tp.X.Label.Text = "Problem size n (qubit count)"
		tp.Draw(dc)
		_, err = can.WriteTo(w)
		return err
	}

	tp.Add(&cornerLabel{text: "(a)", x: 0.98, y: 0.02})

	kp, err := keysLine(d, sty, keysCol, 0, "Problem size (number of qubits)", "Keys\nchecked")
	if err != nil {
		return err
	}
	kp.X.Scale = plot.LogScale{}
	kp.X.Tick.Marker = sizeTicks(true)
	kp.X.Min, kp.X.Max = xmin, xmax
	kp.Add(&cornerLabel{text: "(b)", x: 0.98, y: 0.06})

	// Stack the panels 2.5:1 with the time panel on top.
	h := dc.Max.Y - dc.Min.Y
	split := h / 3.5
	tp.Draw(draw.Crop(dc, 0, 0, split, 0))
	kp.Draw(draw.Crop(dc, 0, 0, 0, split-h))
	_, err = can.WriteTo(w)
	return err
}
