// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against each input/output pair in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF and is flat between points of the support.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()

	if got := dist.CDF(lo - step); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, lo-step, got)
	}
	sum := 0.0
	for k := lo; k <= hi; k += step {
		sum += dist.PMF(k)
		if got := dist.CDF(k); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k, got, sum)
		}
		if got := dist.CDF(k + step/2); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k+step/2, got, sum)
		}
	}
	if !aeq(1, sum) {
		t.Errorf("%s: PMF sums to %v over bounds [%v, %v], want 1", name, sum, lo, hi)
	}
}
