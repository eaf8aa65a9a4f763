// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"errors"
	"strings"
	"testing"
)

func TestFitSquare(t *testing.T) {
	// Data that follows t = k·n² exactly gives back k exactly.
	ns := []int{2, 4, 8, 16}
	ts := make([]float64, len(ns))
	const k = 0.25
	for i, n := range ns {
		ts[i] = k * float64(n) * float64(n)
	}
	got, err := FitSquare(ns, ts)
	if err != nil {
		t.Fatal(err)
	}
	if got != k {
		t.Errorf("got %v, want %v", got, k)
	}

	// Mixed ratios average.
	got, err = FitSquare([]int{1, 2}, []float64{1, 8})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(got, 1.5) {
		t.Errorf("got %v, want 1.5", got)
	}
}

func TestFitSquareErrors(t *testing.T) {
	if _, err := FitSquare([]int{1, 2}, []float64{1}); err == nil || !strings.Contains(err.Error(), "mismatched lengths") {
		t.Errorf("mismatched lengths: got error %v", err)
	}
	if _, err := FitSquare(nil, nil); !errors.Is(err, ErrNoSamples) {
		t.Errorf("empty input: got error %v, want ErrNoSamples", err)
	}
	if _, err := FitSquare([]int{0}, []float64{1}); !errors.Is(err, ErrNonPositive) {
		t.Errorf("zero size: got error %v, want ErrNonPositive", err)
	}
	if _, err := FitSquare([]int{4, -2}, []float64{1, 1}); !errors.Is(err, ErrNonPositive) {
		t.Errorf("negative size: got error %v, want ErrNonPositive", err)
	}
}
