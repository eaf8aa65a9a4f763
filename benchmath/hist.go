// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath provides the statistical transforms behind the
// benchmark figures: power-of-two histograms of rank deficits and the
// quadratic-growth fit of solve times.
package benchmath

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrNoSamples indicates an empty sample sequence.
	ErrNoSamples = errors.New("no samples")
	// ErrNonPositive indicates a sample outside the domain of the
	// transform, such as a zero rank deficit fed to a logarithm.
	ErrNonPositive = errors.New("non-positive sample")
)

// A Hist is a histogram over power-of-two buckets: bucket e counts
// the samples x with floor(log2(x)) == e. Buckets are dense from 0
// through the largest occupied exponent, so two histograms drawn side
// by side line up bucket for bucket.
type Hist struct {
	Freq []float64 // relative frequency per bucket, sums to 1
	Err  []float64 // Poisson uncertainty per bucket, sqrt(count)/total
}

// Len returns the number of buckets.
func (h *Hist) Len() int { return len(h.Freq) }

// Log2Hist buckets xs by integer log2 and normalizes the counts by
// len(xs). It returns ErrNoSamples if xs is empty and ErrNonPositive
// if any sample is zero or negative.
func Log2Hist(xs []int) (*Hist, error) {
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}
	maxExp := 0
	for i, x := range xs {
		if x <= 0 {
			return nil, fmt.Errorf("sample %d is %d: %w", i, x, ErrNonPositive)
		}
		if e := log2int(x); e > maxExp {
			maxExp = e
		}
	}
	counts := make([]int, maxExp+1)
	for _, x := range xs {
		counts[log2int(x)]++
	}
	h := &Hist{
		Freq: make([]float64, maxExp+1),
		Err:  make([]float64, maxExp+1),
	}
	total := float64(len(xs))
	for e, c := range counts {
		h.Freq[e] = float64(c) / total
		h.Err[e] = math.Sqrt(float64(c)) / total
	}
	return h, nil
}

// log2int returns floor(log2(x)) for x > 0. Unlike going through
// math.Log2, this is exact for every int.
func log2int(x int) int {
	return bits.Len(uint(x)) - 1
}
