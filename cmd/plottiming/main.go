// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plottiming renders the solve-time figure from solver timing records.
//
// Usage:
//
//	plottiming [-i file] [-o file] [-keys] [-style file]
//
// The input file holds one timing record per line with five
// comma-separated fields: the raw problem size as logged by the
// solver, the median solve time in seconds, the lower and upper bounds
// of its error band, and the mean number of candidate keys checked.
// There is no header; every line must be a record.
//
// Plottiming plots solve time against problem size on log-log axes,
// with the error band shaded and a fitted n² reference line drawn
// underneath. With -keys it stacks a second panel below the first
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
	log.SetPrefix("plottiming: ")
	log.SetFlags(0)
	if err := plottiming(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// plottiming runs the tool on the given command line.
func plottiming(args []string) error {
	flags := flag.NewFlagSet("plottiming", flag.ExitOnError)
	input := flags.String("i", "timing.csv", "read timing records from `file`")
	output := flags.String("o", "solvetime.pdf", "write the figure to `file` (.pdf or .png)")
	keys := flags.Bool("keys", false, "add a candidate-keys panel below the solve-time panel")
	styleFile := flags.String("style", "", "overlay figure settings from YAML `file`")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: plottiming [flags]\n")
		flags.PrintDefaults()
	}
	flags.Parse(args)
	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(2)
	}

	d, err := benchcsv.ReadTimingFile(*input)
	if err != nil {
		return err
	}
	fit, err := benchmath.FitSquare(d.N, d.Time)
	if err != nil {
		return fmt.Errorf("fitting %s: %w", *input, err)
	}

	sty := figureStyle(*keys)
	if *styleFile != "" {
		sty, err = benchchart.LoadStyle(*styleFile, sty)
		if err != nil {
			return err
		}
	}

	err = benchchart.WriteFigure(*output, func(w io.Writer, format string) error {
		return benchchart.SolveTime(w, format, d, fit, sty, *keys)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	return nil
}

// figureStyle returns the built-in theme adjusted for the selected
// variant. The stacked two-panel figure keeps the default palette and
// gets extra height; the single panel recolors the series and draws
// larger markers.
func figureStyle(keysPanel bool) benchchart.Style {
	sty := benchchart.DefaultStyle()
	if keysPanel {
		sty.Height = 3.5
	} else {
		sty.SeriesColor = "#1e90ff" // dodger blue
		sty.MarkerSize = 2.5
	}
	return sty
}
