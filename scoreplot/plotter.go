// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scoreplot draws evaluation charts for binary classification
// models: bad-rate trends, correlation heatmaps, value proportions,
// ROC curves, and binned score diagnostics.
//
// Each plot function aggregates its input table, draws the result on
// a new Axes, and passes the result through the Plotter's Cosmetics
// so every chart uses the theme font and an outside legend. Functions
// that can return several charts, or the aggregated table, return a
// Tuple; a single item is returned unwrapped.
//
// The aggregations are exported separately (AggregateBadRate,
// CorrMatrix, ProportionTable, AggregateBins) for callers that only
// want the numbers.
package scoreplot

import (
	"io"
	"log/slog"

	"github.com/amphibian-go/toadplot/theme"
)

// A Plotter draws charts with a fixed theme. It is safe for
// concurrent use; every call draws on its own Axes.
type Plotter struct {
	Cosmetics
	log *slog.Logger
}

// An Option configures a Plotter.
type Option func(*Plotter)

// WithLogger sets the logger a Plotter reports aggregation details
// to. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(p *Plotter) { p.log = l }
}

// New returns a Plotter using th. If th is nil, it uses
// theme.Default().
func New(th *theme.Theme, opts ...Option) *Plotter {
	if th == nil {
		th = theme.Default()
	}
	p := &Plotter{
		Cosmetics: Cosmetics{Theme: th},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// axes returns a new Axes of the theme's default figure size.
func (p *Plotter) axes() *Axes {
	w, h := p.Theme.FigSize()
	return p.sizedAxes(w, h)
}

func (p *Plotter) sizedAxes(w, h float64) *Axes {
	return NewFigure(w, h, p.Theme.DPI())
}
