// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// FitSquare returns the coefficient c of the model t ≈ c·n²,
// estimated as the mean of t[i]/n[i]² over all samples. The estimate
// is a plain method of moments, not a least-squares regression.
func FitSquare(ns []int, ts []float64) (float64, error) {
	if len(ns) != len(ts) {
		return 0, fmt.Errorf("mismatched lengths: %d sizes, %d times", len(ns), len(ts))
	}
	if len(ns) == 0 {
		return 0, ErrNoSamples
	}
	ratios := make([]float64, len(ns))
	for i, n := range ns {
		if n <= 0 {
			return 0, fmt.Errorf("size %d is %d: %w", i, n, ErrNonPositive)
		}
		ratios[i] = ts[i] / (float64(n) * float64(n))
	}
	return stats.Mean(ratios), nil
}
