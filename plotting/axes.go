// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting draws normalized histograms and distribution
// curves.
package plotting // import "github.com/aclements/statsplus/plotting"

import (
	"image/color"

	"github.com/aclements/statsplus/histogram"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// A Rect is a drawn histogram bar.
type Rect interface {
	Height() float64
	SetHeight(h float64)
	Width() float64
}

// An Axis is a set of axes that can draw histograms.
type Axis interface {
	// Hist bins data, draws the bins, and returns the binned
	// histogram along with one Rect per bar.
	Hist(data []float64, opts histogram.Options) (histogram.Result, []Rect, error)

	// SetYLim sets the range of the vertical axis.
	SetYLim(lo, hi float64)
}

// HistColor is the fill color of histograms drawn by Axes.
var HistColor color.Color = color.Gray{Y: 192}

// Axes is an Axis drawing onto a gonum plot.
type Axes struct {
	Plot *plot.Plot

	// Hists are the histograms drawn by Hist, in order.
	Hists []*plotter.Histogram
}

// NewAxes returns Axes drawing onto a new, empty plot.
func NewAxes() *Axes {
	return &Axes{Plot: plot.New()}
}

func (a *Axes) Hist(data []float64, opts histogram.Options) (histogram.Result, []Rect, error) {
	r, err := histogram.Compute(data, opts)
	if err != nil {
		return histogram.Result{}, nil, err
	}

	// h.Width stays 0. The bars may have different widths, and
	// each bin carries its own bounds.
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(r.Bars)),
		FillColor: HistColor,
		LineStyle: plotter.DefaultLineStyle,
	}
	rects := make([]Rect, len(r.Bars))
	for i, b := range r.Bars {
		h.Bins[i] = plotter.HistogramBin{Min: b.Left, Max: b.Right, Weight: b.Count}
		rects[i] = binRect{&h.Bins[i]}
	}
	a.Plot.Add(h)
	a.Hists = append(a.Hists, h)
	return r, rects, nil
}

func (a *Axes) SetYLim(lo, hi float64) {
	a.Plot.Y.Min, a.Plot.Y.Max = lo, hi
}

type binRect struct {
	b *plotter.HistogramBin
}

func (r binRect) Height() float64 {
	return r.b.Weight
}

func (r binRect) SetHeight(h float64) {
	r.b.Weight = h
}

func (r binRect) Width() float64 {
	return r.b.Max - r.b.Min
}
