// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotcandkeys renders the candidate-keys figure from rank-deficit
// records.
//
// Usage:
//
//	plotcandkeys [-i file] [-timing file] [-o file] [-hardlabel label] [-style file]
//
// The input file holds exactly two lines of comma-separated integers:
// the rank deficits n - rank(M) observed across all trials, and the
// rank deficits of the subset of trials that had to be re-run. Blank
// lines are tolerated only after the second record.
//
// Plotcandkeys bins both sequences into log2-scaled histograms and
// draws them as paired bars with Poisson error bars, one pair per
// rank-deficit bucket. With -timing it also reads timing records (the
// plottiming input format) and stacks a panel above the histogram
// showing the mean number of candidate keys checked at each problem
// size.
//
// The output format is chosen by the -o file extension, either .pdf
// or .png. The -style flag overlays figure settings from a YAML file;
// see package benchchart for the available settings.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/keysolve/benchplot/benchchart"
	"github.com/keysolve/benchplot/benchcsv"
	"github.com/keysolve/benchplot/benchmath"
)

func main() {
	log.SetPrefix("plotcandkeys: ")
	log.SetFlags(0)
	if err := plotcandkeys(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// plotcandkeys runs the tool on the given command line.
func plotcandkeys(args []string) error {
	flags := flag.NewFlagSet("plotcandkeys", flag.ExitOnError)
	input := flags.String("i", "candkeys.csv", "read rank-deficit records from `file`")
	timing := flags.String("timing", "", "read timing records from `file` and add a candidate-keys panel")
	output := flags.String("o", "candkeys.pdf", "write the figure to `file` (.pdf or .png)")
	hardLabel := flags.String("hardlabel", "", "legend `label` for the re-run series (default \"Hard\", or Re-run with -timing)")
	styleFile := flags.String("style", "", "overlay figure settings from YAML `file`")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: plotcandkeys [flags]\n")
		flags.PrintDefaults()
	}
	flags.Parse(args)
	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(2)
	}

	ck, err := benchcsv.ReadCandKeysFile(*input)
	if err != nil {
		return err
	}
	all, err := benchmath.Log2Hist(ck.All)
	if err != nil {
		return fmt.Errorf("binning %s all trials: %w", *input, err)
	}
	hard, err := benchmath.Log2Hist(ck.Hard)
	if err != nil {
		return fmt.Errorf("binning %s re-run trials: %w", *input, err)
	}

	var tim *benchcsv.Timing
	if *timing != "" {
		tim, err = benchcsv.ReadTimingFile(*timing)
		if err != nil {
			return err
		}
	}
	sty := figureStyle(tim != nil)
	if *styleFile != "" {
		sty, err = benchchart.LoadStyle(*styleFile, sty)
		if err != nil {
			return err
		}
	}
	label := seriesLabel(*hardLabel, tim != nil)

	err = benchchart.WriteFigure(*output, func(w io.Writer, format string) error {
		return benchchart.CandKeysHist(w, format, all, hard, tim, sty, label)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	return nil
}

// figureStyle returns the built-in theme adjusted for the selected
// variant. The histogram alone is small; the stacked two-panel figure
// is taller than it is wide and uses small markers.
func figureStyle(withTiming bool) benchchart.Style {
	sty := benchchart.DefaultStyle()
	if withTiming {
		sty.Width, sty.Height = 4, 5.3
		sty.MarkerSize = 1
	} else {
		sty.Width, sty.Height = 3, 2.5
	}
	return sty
}

// seriesLabel resolves the legend label for the re-run series. An
// explicit label wins; otherwise each variant keeps its usual text.
func seriesLabel(label string, withTiming bool) string {
	if label != "" {
		return label
	}
	if withTiming {
		return "Re-run"
	}
	return `"Hard"`
}
