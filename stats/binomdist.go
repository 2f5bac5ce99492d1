// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/statsplus/mathx"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	c := mathx.Choose(d.N, ki)
	if !math.IsInf(c, 1) {
		return c * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
	}
	// The coefficient overflowed. 0 < ki < d.N here, so
	// neither log term multiplies 0 by -Inf.
	return math.Exp(mathx.Lchoose(d.N, ki) + float64(ki)*math.Log(d.P) + float64(d.N-ki)*math.Log1p(-d.P))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}

	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() distuv.Normal {
	return distuv.Normal{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}

// BinomialPoint returns the binomial PMF for floor(n) trials with
// success probability p, evaluated at Center(k).
//
// Plotting BinomialPoint as a continuous function of k draws each
// step of the PMF centered on its integer, with the steps changing
// at half-integers. The coefficient is the generalized binomial
// coefficient, so BinomialPoint is 0 wherever Center(k) falls outside
// [0, floor(n)], including for any negative n. BinomialPoint is NaN
// if n or k is NaN.
func BinomialPoint(n, p, k float64) float64 {
	if math.IsNaN(n) || math.IsNaN(k) {
		return math.NaN()
	}
	n = math.Floor(n)
	k = Center(k)
	if k < 0 || k > n {
		return 0
	}
	if n <= math.MaxInt32 {
		return BinomialDist{N: int(n), P: p}.PMF(k)
	}
	// Too many trials for BinomialDist. The coefficient
	// overflows, so work in log space.
	switch p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == n {
			return 1
		}
		return 0
	}
	return math.Exp(mathx.LchooseReal(n, k) + k*math.Log(p) + (n-k)*math.Log1p(-p))
}
