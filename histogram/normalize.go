// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmpty is returned when normalizing a histogram whose
	// total count is not positive.
	ErrEmpty = errors.New("histogram: no data to normalize")

	// ErrZeroWidth is returned when normalizing a histogram with
	// a zero-width bar to a density.
	ErrZeroWidth = errors.New("histogram: zero-width bar")
)

// Headroom above the tallest bar, as a multiple of its height.
const (
	PMFHeadroom = 1.15
	PDFHeadroom = 1.25
)

// Normalized is a histogram rescaled to approximate a distribution.
type Normalized struct {
	// Heights[i] is the new height of bar i.
	Heights []float64

	// Widths[i] is the width of bar i.
	Widths []float64

	// YMax is a suggested upper bound for the vertical axis. The
	// lower bound is 0.
	YMax float64
}

// ToPMF rescales r so its bar heights sum to 1. The height of each
// bar is the fraction of the data falling in that bar.
func ToPMF(r Result) (Normalized, error) {
	total, err := total(r)
	if err != nil {
		return Normalized{}, err
	}
	n := newNormalized(r)
	for i, b := range r.Bars {
		n.Heights[i] = b.Count / total
	}
	n.YMax = PMFHeadroom * floats.Max(n.Heights)
	return n, nil
}

// ToPDF rescales r so the areas of its bars sum to 1. The area of
// each bar is the fraction of the data falling in that bar.
func ToPDF(r Result) (Normalized, error) {
	total, err := total(r)
	if err != nil {
		return Normalized{}, err
	}
	n := newNormalized(r)
	for i, b := range r.Bars {
		if n.Widths[i] == 0 {
			return Normalized{}, fmt.Errorf("%w: bar %d at %v", ErrZeroWidth, i, b.Left)
		}
		n.Heights[i] = (b.Count / total) / n.Widths[i]
	}
	n.YMax = PDFHeadroom * floats.Max(n.Heights)
	return n, nil
}

func total(r Result) (float64, error) {
	var t float64
	for i, b := range r.Bars {
		if !(b.Count >= 0) || math.IsInf(b.Count, 1) {
			return 0, fmt.Errorf("histogram: invalid count %v in bar %d", b.Count, i)
		}
		t += b.Count
	}
	if !(t > 0) {
		return 0, ErrEmpty
	}
	return t, nil
}

func newNormalized(r Result) Normalized {
	n := Normalized{
		Heights: make([]float64, len(r.Bars)),
		Widths:  make([]float64, len(r.Bars)),
	}
	for i, b := range r.Bars {
		n.Widths[i] = b.Width()
	}
	return n
}
