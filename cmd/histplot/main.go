// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// histplot reads newline-separated numbers from stdin and plots their
// histogram normalized to a probability mass or density function,
// optionally overlaid with a theoretical distribution.
//
// Usage:
//
//	histplot [flags] < data
//
// For example, to compare coin flip counts against their binomial
// distribution:
//
//	histplot -mode pmf -edges -0.5:10.5:11 -binom 10,0.5 -o flips.png < flips
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/statsplus/histogram"
	"github.com/aclements/statsplus/plotting"
	"github.com/aclements/statsplus/stats"
	"github.com/op/go-logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"
)

const progName = "histplot"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

type config struct {
	mode    string
	bins    int
	rng     string
	edges   string
	binom   string
	poisson float64
	// withPoisson is set if -poisson was given, since lambda = 0
	// is a valid rate.
	withPoisson bool
	samples     int
	out         string
	width       float64
	height      float64
	title       string
	debug       bool
}

func main() {
	startLogging()

	var cfg config
	flag.StringVar(&cfg.mode, "mode", "pmf", "normalize to `pmf` or pdf")
	flag.IntVar(&cfg.bins, "bins", 0, "number of equal-width bins (default 10)")
	flag.StringVar(&cfg.rng, "range", "", "`lo,hi` span of the bins (default data min,max)")
	flag.StringVar(&cfg.edges, "edges", "", "explicit bin edges as `e0,e1,...` or lo:hi:n")
	flag.StringVar(&cfg.binom, "binom", "", "overlay a binomial distribution with `N,p`")
	flag.Float64Var(&cfg.poisson, "poisson", 0, "overlay a Poisson distribution with rate `lambda`")
	flag.IntVar(&cfg.samples, "samples", 1000, "curve samples")
	flag.StringVar(&cfg.out, "o", "hist.png", "output `file`; the extension selects the format")
	flag.Float64Var(&cfg.width, "w", 4, "image width in inches")
	flag.Float64Var(&cfg.height, "h", 3, "image height in inches")
	flag.StringVar(&cfg.title, "title", "", "plot title")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "poisson" {
			cfg.withPoisson = true
		}
	})

	if cfg.debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, os.Stdin); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cfg config, r io.Reader) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	data, err := readInput(r)
	if err != nil {
		return err
	}
	log.Debugf("read %d values", len(data))

	ax := plotting.NewAxes()
	ax.Plot.Title.Text = cfg.title

	var res histogram.Result
	var norm histogram.Normalized
	switch cfg.mode {
	case "pmf":
		res, norm, err = plotting.NormalizeToPMF(ax, data, opts)
		ax.Plot.Y.Label.Text = "probability"
	case "pdf":
		res, norm, err = plotting.NormalizeToPDF(ax, data, opts)
		ax.Plot.Y.Label.Text = "density"
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		return err
	}
	for i, b := range res.Bars {
		log.Debugf("bar [%g, %g) count %g height %g", b.Left, b.Right, b.Count, norm.Heights[i])
	}

	lo, hi := res.Edges[0], res.Edges[len(res.Edges)-1]
	if cfg.binom != "" {
		n, p, err := parsePair(cfg.binom)
		if err != nil {
			return fmt.Errorf("-binom: %w", err)
		}
		plotting.AddCurve(ax.Plot, func(k float64) float64 { return stats.BinomialPoint(n, p, k) }, lo, hi, cfg.samples)
		log.Infof("overlaid binomial N=%g p=%g", n, p)
	}
	if cfg.withPoisson {
		lambda := cfg.poisson
		if !(lambda >= 0) {
			return fmt.Errorf("-poisson: invalid rate %v", lambda)
		}
		plotting.AddCurve(ax.Plot, func(x float64) float64 { return stats.PoissonPoint(x, lambda) }, lo, hi, cfg.samples)
		log.Infof("overlaid Poisson lambda=%g", lambda)
	}

	if err := ax.Plot.Save(vg.Length(cfg.width)*vg.Inch, vg.Length(cfg.height)*vg.Inch, cfg.out); err != nil {
		return err
	}
	log.Infof("wrote %s: %d values in %d bars", cfg.out, len(data), len(res.Bars))
	return nil
}

func (cfg config) options() (histogram.Options, error) {
	opts := histogram.Options{Bins: cfg.bins}
	if cfg.rng != "" {
		lo, hi, err := parsePair(cfg.rng)
		if err != nil {
			return opts, fmt.Errorf("-range: %w", err)
		}
		opts.Range = &histogram.Range{Lo: lo, Hi: hi}
	}
	if cfg.edges != "" {
		edges, err := parseEdges(cfg.edges)
		if err != nil {
			return opts, fmt.Errorf("-edges: %w", err)
		}
		opts.Edges = edges
	}
	return opts, nil
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

func parsePair(s string) (float64, float64, error) {
	fs, err := parseFloats(s, ",")
	if err != nil {
		return 0, 0, err
	}
	if len(fs) != 2 {
		return 0, 0, fmt.Errorf("want 2 comma-separated values, got %q", s)
	}
	return fs[0], fs[1], nil
}

// parseEdges parses either a comma-separated list of edges or lo:hi:n,
// which is n equal-width bins spanning [lo, hi].
func parseEdges(s string) ([]float64, error) {
	if !strings.Contains(s, ":") {
		return parseFloats(s, ",")
	}
	fs, err := parseFloats(s, ":")
	if err != nil {
		return nil, err
	}
	if len(fs) != 3 || fs[2] < 1 || fs[2] != float64(int(fs[2])) {
		return nil, fmt.Errorf("want lo:hi:n, got %q", s)
	}
	return floats.Span(make([]float64, int(fs[2])+1), fs[0], fs[1]), nil
}

func parseFloats(s, sep string) ([]float64, error) {
	var fs []float64
	for _, f := range strings.Split(s, sep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		fs = append(fs, v)
	}
	return fs, nil
}
