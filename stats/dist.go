// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, all methods are defined for all
// values of the random variable; the PMF is 0 and the CDF is
// constant between the points of the distribution's support.
type DiscreteDist interface {
	// PMF returns the value of the probability mass function
	// of this distribution at k.
	PMF(k float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at k. This is the sum of
	// the PMF at every point of the support <= k.
	CDF(k float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Step returns the interval between points of the
	// distribution's support.
	Step() float64
}

// Center rounds x to the nearest integer, rounding half-integers up.
// It is floor(x + 0.5), so Center(2.5) = 3 and Center(-2.5) = -2.
func Center(x float64) float64 {
	return math.Floor(x + 0.5)
}

// CenteredPMF returns d's PMF as a step function of a continuous
// variable. Each step is centered on a point of the support, so the
// curve lines up with a histogram whose bars are centered on the
// integers.
func CenteredPMF(d DiscreteDist) func(x float64) float64 {
	return func(x float64) float64 {
		return d.PMF(Center(x))
	}
}
