// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// A Style configures the look of a figure. Colors are "#rrggbb" hex
// strings so they can be written in a style sheet.
type Style struct {
	Width  float64 `yaml:"width"`  // figure width in inches
	Height float64 `yaml:"height"` // figure height in inches

	FontSize   float64 `yaml:"fontsize"`   // label, tick, and legend font size in points
	LineWidth  float64 `yaml:"linewidth"`  // data and reference line width in points
	MarkerSize float64 `yaml:"markersize"` // data marker radius in points
	BarWidth   float64 `yaml:"barwidth"`   // histogram bar width in bucket units
	BandAlpha  float64 `yaml:"bandalpha"`  // quartile band opacity in [0, 1]

	SeriesColor string `yaml:"seriescolor"` // solve times and the all-trials bars
	AltColor    string `yaml:"altcolor"`    // hard-subset bars
	KeysColor   string `yaml:"keyscolor"`   // candidate-keys line
	FitColor    string `yaml:"fitcolor"`    // n² reference line
}

// DefaultStyle returns the built-in figure theme. Callers adjust the
// size for the figure variant they render.
func DefaultStyle() Style {
	return Style{
		Width:       3.5,
		Height:      3,
		FontSize:    10,
		LineWidth:   1.5,
		MarkerSize:  2,
		BarWidth:    0.4,
		BandAlpha:   0.3,
		SeriesColor: "#1f77b4",
		AltColor:    "#ff7f0e",
		KeysColor:   "#2ca02c",
		FitColor:    "#000000",
	}
}

// LoadStyle reads the YAML style sheet at path and overlays it on
// base. Keys absent from the sheet keep base's values.
func LoadStyle(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	sty := base
	if err := yaml.Unmarshal(data, &sty); err != nil {
		return base, fmt.Errorf("parsing style %s: %w", path, err)
	}
	if err := sty.validate(); err != nil {
		return base, fmt.Errorf("style %s: %w", path, err)
	}
	return sty, nil
}

func (s *Style) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("figure size %gin x %gin is not positive", s.Width, s.Height)
	}
	if s.FontSize < 0 || s.LineWidth < 0 || s.MarkerSize < 0 {
		return fmt.Errorf("negative font, line, or marker size")
	}
	if s.BarWidth <= 0 || s.BarWidth > 1 {
		return fmt.Errorf("bar width %g is outside (0, 1]", s.BarWidth)
	}
	if s.BandAlpha < 0 || s.BandAlpha > 1 {
		return fmt.Errorf("band opacity %g is outside [0, 1]", s.BandAlpha)
	}
	return nil
}

// parseColor converts a "#rrggbb" hex string to an opaque color.
func parseColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(255*alpha + 0.5)
	return c
}
