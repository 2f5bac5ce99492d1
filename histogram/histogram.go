// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram bins samples and rescales the bins to approximate
// a probability mass or density function.
package histogram // import "github.com/aclements/statsplus/histogram"

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the number of bins used when Options specifies
// neither Bins nor Edges.
const DefaultBins = 10

// Options controls how Compute bins its data.
type Options struct {
	// Bins is the number of equal-width bins spanning Range. If
	// Bins is 0, DefaultBins is used. Bins is ignored if Edges is
	// set.
	Bins int

	// Edges, if non-empty, gives the bin boundaries explicitly.
	// It must be sorted and have at least two elements. Bin i
	// covers [Edges[i], Edges[i+1]).
	Edges []float64

	// Range, if non-nil, is the span covered by Bins equal-width
	// bins. Otherwise the span is the minimum and maximum of the
	// data, or [0, 1] for no data.
	Range *Range

	// Weights, if non-nil, gives the weight of each data point.
	// It must be the same length as the data, and each weight must
	// be finite and non-negative.
	Weights []float64
}

// Range is a closed interval [Lo, Hi].
type Range struct {
	Lo, Hi float64
}

// A Bar is one bin of a histogram.
type Bar struct {
	// Count is the total weight of the data falling in this bar.
	Count float64

	// Left and Right are the boundaries of this bar.
	Left, Right float64
}

// Width returns the width of bar b.
func (b Bar) Width() float64 {
	return b.Right - b.Left
}

// Result is a binned histogram.
type Result struct {
	// Counts[i] is Bars[i].Count.
	Counts []float64

	// Edges are the len(Bars)+1 bin boundaries.
	Edges []float64

	Bars []Bar
}

// Compute bins data according to opts.
//
// Each bin covers the half-open interval [left, right), except the
// last, which also includes its right edge. Data outside the edges
// is not counted.
func Compute(data []float64, opts Options) (Result, error) {
	if opts.Weights != nil && len(opts.Weights) != len(data) {
		return Result{}, fmt.Errorf("histogram: %d weights for %d data points", len(opts.Weights), len(data))
	}
	for _, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Result{}, fmt.Errorf("histogram: non-finite data point %v", x)
		}
	}
	for i, w := range opts.Weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return Result{}, fmt.Errorf("histogram: invalid weight %v for data point %d", w, i)
		}
	}
	edges, err := opts.edges(data)
	if err != nil {
		return Result{}, err
	}
	lo, hi := edges[0], edges[len(edges)-1]

	// stat.Histogram wants sorted data within the
	// dividers.
	idx := make([]int, 0, len(data))
	for i, x := range data {
		if lo <= x && x <= hi {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool { return data[idx[i]] < data[idx[j]] })
	xs := make([]float64, len(idx))
	var ws []float64
	if opts.Weights != nil {
		ws = make([]float64, len(idx))
	}
	for i, j := range idx {
		xs[i] = data[j]
		if ws != nil {
			ws[i] = opts.Weights[j]
		}
	}

	dividers := append([]float64(nil), edges...)
	dividers[len(dividers)-1] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, xs, ws)

	bars := make([]Bar, len(counts))
	for i, c := range counts {
		bars[i] = Bar{Count: c, Left: edges[i], Right: edges[i+1]}
	}
	return Result{Counts: counts, Edges: edges, Bars: bars}, nil
}

func (o Options) edges(data []float64) ([]float64, error) {
	if len(o.Edges) > 0 {
		if len(o.Edges) < 2 {
			return nil, fmt.Errorf("histogram: need at least 2 edges, got %d", len(o.Edges))
		}
		for _, e := range o.Edges {
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return nil, fmt.Errorf("histogram: non-finite edge %v", e)
			}
		}
		if !sort.Float64sAreSorted(o.Edges) {
			return nil, fmt.Errorf("histogram: edges are not sorted")
		}
		return append([]float64(nil), o.Edges...), nil
	}

	bins := o.Bins
	if bins == 0 {
		bins = DefaultBins
	} else if bins < 0 {
		return nil, fmt.Errorf("histogram: invalid bin count %d", bins)
	}

	var lo, hi float64
	switch {
	case o.Range != nil:
		lo, hi = o.Range.Lo, o.Range.Hi
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, fmt.Errorf("histogram: non-finite range [%v, %v]", lo, hi)
		}
		if lo > hi {
			return nil, fmt.Errorf("histogram: range [%v, %v] is inverted", lo, hi)
		}
	case len(data) == 0:
		lo, hi = 0, 1
	default:
		lo, hi = floats.Min(data), floats.Max(data)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := floats.Span(make([]float64, bins+1), lo, hi)
	// The outer edges must be exact so the extreme data points
	// are counted.
	edges[0], edges[bins] = lo, hi
	return edges, nil
}
