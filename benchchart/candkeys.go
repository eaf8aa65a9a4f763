// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/keysolve/benchplot/benchcsv"
	"github.com/keysolve/benchplot/benchmath"
)

// CandKeysHist renders the candidate-keys figure to w: grouped
// histogram bars of the rank-deficit distributions for all trials and
// for the re-run hard subset, with Poisson error whiskers and one
// labeled tick per bucket. hardLabel names the second series in the
// legend. With keys non-nil the benchmark layout is produced,
// stacking a panel of mean candidate keys checked per problem size
// above the histogram.
func CandKeysHist(w io.Writer, format string, all, hard *benchmath.Hist, keys *benchcsv.Timing, sty Style, hardLabel string) error {
	if err := sty.validate(); err != nil {
		return err
	}
	if all.Len() == 0 || hard.Len() == 0 {
		return benchmath.ErrNoSamples
	}
	seriesCol, err := parseColor(sty.SeriesColor)
	if err != nil {
		return err
	}
	altCol, err := parseColor(sty.AltColor)
	if err != nil {
		return err
	}
	keysCol, err := parseColor(sty.KeysColor)
	if err != nil {
		return err
	}

	hp := newPlot(sty)
	hp.X.Label.Text = "n - rank(M)"
	hp.Y.Label.Text = "Relative frequency"

	lw := vg.Points(sty.LineWidth)
	allBars := newHistBars(all, -sty.BarWidth/2, sty.BarWidth, seriesCol, lw)
	hardBars := newHistBars(hard, +sty.BarWidth/2, sty.BarWidth, altCol, lw)
	hp.Add(allBars, hardBars)
	hp.Legend.Add("All", allBars)
	hp.Legend.Add(hardLabel, hardBars)
	hp.Legend.Top = true
	hp.X.Tick.Marker = binTicks(all.Len())
	hp.X.Min -= 0.3
	hp.X.Max += 0.3
	hp.Y.Min = 0

	can, err := newCanvas(format, sty)
	if err != nil {
		return err
	}
	dc := draw.New(can)

	if keys == nil {
		hp.Draw(dc)
		_, err = can.WriteTo(w)
		return err
	}

	kp, err := keysLine(keys, sty, keysCol, vg.Points(sty.MarkerSize), "Problem size n", "Candidates\nchecked")
	if err != nil {
		return err
	}
	kp.Add(&cornerLabel{text: "(a)", x: 0.02, y: 0.94, left: true, top: true})
	hp.Add(&cornerLabel{text: "(b)", x: 0.02, y: 0.94, left: true, top: true})

	// Stack the panels 1:3 with the histogram on the bottom.
	h := dc.Max.Y - dc.Min.Y
	split := h / 4
	kp.Draw(draw.Crop(dc, 0, 0, h-split, 0))
	hp.Draw(draw.Crop(dc, 0, 0, 0, -split))
	_, err = can.WriteTo(w)
	return err
}
