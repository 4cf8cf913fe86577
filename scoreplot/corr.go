// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"errors"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/amphibian-go/toadplot/frame"
	"github.com/amphibian-go/toadplot/internal/series"
)

// CorrOptions configures Corr.
type CorrOptions struct {
	// FigSize is the figure width and height in inches. It
	// defaults to 20x15.
	FigSize [2]float64
}

var defaultCorrSize = [2]float64{20, 15}

// CorrMatrix returns the names of the numeric columns of t and their
// pairwise Pearson correlation coefficients. Other columns are
// ignored. Each pair of columns is correlated over the rows where
// neither is NaN; pairs with fewer than two such rows or with a
// constant column have a NaN coefficient.
func CorrMatrix(t *table.Table) ([]string, [][]float64, error) {
	var names []string
	var cols [][]float64
	for _, name := range t.Columns() {
		col := t.Column(name)
		if !frame.IsNumeric(col) {
			continue
		}
		xs, err := frame.ToFloats(col)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		cols = append(cols, xs)
	}
	if len(names) == 0 {
		return nil, nil, errors.New("corr: no numeric columns")
	}

	m := make([][]float64, len(cols))
	for i := range m {
		m[i] = make([]float64, len(cols))
	}
	for i := range cols {
		for j := 0; j <= i; j++ {
			r := pearson(cols[i], cols[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			m[i][j], m[j][i] = r, r
		}
	}
	return names, m, nil
}

func pearson(xs, ys []float64) float64 {
	var a, b []float64
	for i := range xs {
		if !math.IsNaN(xs[i]) && !math.IsNaN(ys[i]) {
			a = append(a, xs[i])
			b = append(b, ys[i])
		}
	}
	if len(a) < 2 {
		return math.NaN()
	}
	sa, sb := stats.StdDev(a), stats.StdDev(b)
	if sa == 0 || sb == 0 {
		return math.NaN()
	}
	ma, mb := stats.Mean(a), stats.Mean(b)
	var cov float64
	for i := range a {
		cov += (a[i] - ma) * (b[i] - mb)
	}
	cov /= float64(len(a) - 1)
	return math.Max(-1, math.Min(1, cov/(sa*sb)))
}

// UpperMask returns an n×n mask that is true on and above the
// diagonal.
func UpperMask(n int) [][]bool {
	mask := make([][]bool, n)
	for i := range mask {
		mask[i] = make([]bool, n)
		for j := i; j < n; j++ {
			mask[i][j] = true
		}
	}
	return mask
}

// Corr plots the correlation matrix of t's numeric columns as a
// heatmap. Only the strict lower triangle is drawn. Cells are
// labeled with their coefficient and colored on the theme's diverging
// colormap from -1 to 1.
func (p *Plotter) Corr(t *table.Table, o CorrOptions) (Result, error) {
	names, m, err := CorrMatrix(t)
	if err != nil {
		return nil, err
	}
	size := o.FigSize
	if size[0] <= 0 || size[1] <= 0 {
		size = defaultCorrSize
	}
	p.log.Debug("correlation matrix", "columns", len(names))

	return p.Wrap(func() (Result, error) {
		a := p.sizedAxes(size[0], size[1])
		a.heatmap = &series.Heatmap{
			Name:    "corr",
			XLabels: names,
			YLabels: names,
			Values:  m,
			Mask:    UpperMask(len(names)),
			Color:   p.Theme.Heatmap,
			Min:     -1,
			Max:     1,
			Format:  "%.2f",
			Shrink:  0.5,
			Gap:     1,
		}
		return a, nil
	})
}
