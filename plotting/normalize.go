// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotting

import (
	"fmt"

	"github.com/aclements/statsplus/histogram"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// NormalizeToPMF draws a histogram of data on ax whose bar heights
// are the probability of falling in each bar. It sets the vertical
// range of ax to leave headroom above the tallest bar.
//
// It returns the raw histogram and its normalization.
func NormalizeToPMF(ax Axis, data []float64, opts histogram.Options) (histogram.Result, histogram.Normalized, error) {
	return normalize(ax, data, opts, histogram.ToPMF)
}

// NormalizeToPDF is like NormalizeToPMF, but the area of each bar is
// the probability of falling in that bar.
func NormalizeToPDF(ax Axis, data []float64, opts histogram.Options) (histogram.Result, histogram.Normalized, error) {
	return normalize(ax, data, opts, histogram.ToPDF)
}

func normalize(ax Axis, data []float64, opts histogram.Options, f func(histogram.Result) (histogram.Normalized, error)) (histogram.Result, histogram.Normalized, error) {
	r, rects, err := ax.Hist(data, opts)
	if err != nil {
		return histogram.Result{}, histogram.Normalized{}, err
	}
	if len(rects) != len(r.Bars) {
		return r, histogram.Normalized{}, fmt.Errorf("plotting: axis drew %d bars for %d bins", len(rects), len(r.Bars))
	}
	n, err := f(r)
	if err != nil {
		return r, histogram.Normalized{}, err
	}
	for i, rect := range rects {
		rect.SetHeight(n.Heights[i])
	}
	ax.SetYLim(0, n.YMax)
	return r, n, nil
}

// AddCurve draws f over [lo, hi] on p, evaluated at the given number
// of samples. Step functions such as stats.CenteredPMF need many
// samples to keep their edges sharp.
func AddCurve(p *plot.Plot, f func(x float64) float64, lo, hi float64, samples int) *plotter.Function {
	fn := plotter.NewFunction(f)
	fn.XMin, fn.XMax = lo, hi
	if samples > 0 {
		fn.Samples = samples
	}
	p.Add(fn)
	return fn
}
