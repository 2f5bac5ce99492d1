// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// smallChoose is the largest k for which Choose uses the
// multiplicative formula directly.
const smallChoose = 100

// Choose returns the binomial coefficient of n and k.
//
// Choose returns 0 if k < 0, n < 0, or k > n.
func Choose(n, k int) float64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if k > smallChoose {
		return math.Exp(Lchoose(n, k))
	}
	res := 1.0
	for i := 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}
	return res
}

// Lchoose returns math.Log(Choose(n, k)).
//
// Lchoose returns -Inf if k < 0, n < 0, or k > n.
func Lchoose(n, k int) float64 {
	return LchooseReal(float64(n), float64(k))
}

// ChooseReal returns the binomial coefficient of n and k generalized
// to real arguments,
//
//	Γ(n+1) / (Γ(k+1) Γ(n-k+1))
//
// For integral n and k this equals Choose(n, k). ChooseReal returns 0
// if k < 0, n < 0, or k > n.
func ChooseReal(n, k float64) float64 {
	if math.IsNaN(n) || math.IsNaN(k) {
		return math.NaN()
	}
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if n == math.Trunc(n) && k == math.Trunc(k) && n <= math.MaxInt32 {
		return Choose(int(n), int(k))
	}
	return math.Exp(LchooseReal(n, k))
}

// LchooseReal returns math.Log(ChooseReal(n, k)).
func LchooseReal(n, k float64) float64 {
	if k < 0 || n < 0 || k > n {
		return math.Inf(-1)
	}
	// B(n-k+1, k+1) = Γ(n-k+1) Γ(k+1) / ((n+1) Γ(n+1)).
	return -math.Log(n+1) - mathext.Lbeta(n-k+1, k+1)
}
