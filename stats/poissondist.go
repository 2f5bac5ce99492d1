// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// PoissonDist is a Poisson distribution.
type PoissonDist struct {
	// Lambda is the expected number of events in an interval.
	// Lambda >= 0. Lambda = 0 puts all weight on 0.
	Lambda float64
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist) PMF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	lg, _ := math.Lgamma(k + 1)
	return math.Exp(k*math.Log(d.Lambda) - d.Lambda - lg)
}

// CDF is the probability of k or fewer events.
func (d PoissonDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	}
	if d.Lambda == 0 {
		return 1
	}
	return mathext.GammaIncRegComp(k+1, d.Lambda)
}

// Bounds returns [0, hi] where hi is more than ten standard
// deviations above the mean.
func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 10*math.Sqrt(d.Lambda) + 10)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 {
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	return d.Lambda
}

// PoissonPoint returns the Poisson PMF with rate lambda, evaluated at
// Center(x).
func PoissonPoint(x, lambda float64) float64 {
	return PoissonDist{Lambda: lambda}.PMF(Center(x))
}
