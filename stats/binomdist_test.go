// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDistLarge(t *testing.T) {
	// Choose(5000, 2500) overflows float64.
	dist := BinomialDist{N: 5000, P: 0.5}
	ref := distuv.Binomial{N: 5000, P: 0.5}
	for _, k := range []float64{0, 2400, 2500, 2600, 5000} {
		want, got := ref.Prob(k), dist.PMF(k)
		if !aeq(want, got) {
			t.Errorf("%+v.PMF(%v) = %v, want %v", dist, k, got, want)
		}
	}
}

func TestBinomialPoint(t *testing.T) {
	pmf := func(k float64) float64 { return BinomialPoint(5, 0.2, k) }
	testFunc(t, "BinomialPoint(5, 0.2)", pmf,
		map[float64]float64{
			-0.6: 0,
			-0.5: 0.32768,
			0:    0.32768,
			0.49: 0.32768,
			1.49: 0.4096,
			1.5:  0.2048,
			2:    0.2048,
			2.4:  0.2048,
			2.5:  0.0512,
			2.6:  0.0512,
			5.49: math.Pow(0.2, 5),
			5.5:  0,
		})

	// N is floored to a trial count.
	if got, want := BinomialPoint(5.9, 0.2, 2), BinomialPoint(5, 0.2, 2); got != want {
		t.Errorf("BinomialPoint(5.9, 0.2, 2) = %v, want %v", got, want)
	}
	for _, k := range []float64{-1, 0, 1} {
		if got := BinomialPoint(-1, 0.5, k); got != 0 {
			t.Errorf("BinomialPoint(-1, 0.5, %v) = %v, want 0", k, got)
		}
	}
	if got := BinomialPoint(4, 0, -1); got != 0 {
		t.Errorf("BinomialPoint(4, 0, -1) = %v, want 0", got)
	}
	for _, nk := range [][2]float64{{5, math.NaN()}, {math.NaN(), 2}} {
		if got := BinomialPoint(nk[0], 0.2, nk[1]); !math.IsNaN(got) {
			t.Errorf("BinomialPoint(%v, 0.2, %v) = %v, want NaN", nk[0], nk[1], got)
		}
	}
}

func TestBinomialPointHuge(t *testing.T) {
	// More trials than BinomialDist can represent.
	for _, n := range []float64{math.MaxInt32, 1 << 31, 1 << 33} {
		k := math.Floor(n / 2)
		// Stirling's approximation of C(n, n/2) / 2^n.
		want := math.Sqrt(2/(math.Pi*n)) * (1 - 1/(4*n))
		got := BinomialPoint(n, 0.5, k)
		if math.IsNaN(got) || math.Abs(got/want-1) > 1e-3 {
			t.Errorf("BinomialPoint(%v, 0.5, %v) = %v, want %v", n, k, got, want)
		}
	}

	n := float64(1 << 31)
	testFunc(t, "BinomialPoint(2^31, 0)", func(k float64) float64 { return BinomialPoint(n, 0, k) },
		map[float64]float64{0: 1, 1: 0, n: 0})
	testFunc(t, "BinomialPoint(2^31, 1)", func(k float64) float64 { return BinomialPoint(n, 1, k) },
		map[float64]float64{0: 0, n - 1: 0, n: 1})
}

func TestBinomialPointSum(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20, 100} {
		for _, p := range []float64{0, 0.1, 0.5, 0.73, 1} {
			ref := distuv.Binomial{N: float64(n), P: p}
			sum := 0.0
			for k := 0; k <= n; k++ {
				got := BinomialPoint(float64(n), p, float64(k))
				// distuv is NaN at the edges of p.
				if want := ref.Prob(float64(k)); !math.IsNaN(want) && !aeq(want, got) {
					t.Errorf("BinomialPoint(%d, %v, %d) = %v, want %v", n, p, k, got, want)
				}
				sum += got
			}
			if !aeq(1, sum) {
				t.Errorf("BinomialPoint(%d, %v, k) sums to %v, want 1", n, p, sum)
			}
		}
	}
}
