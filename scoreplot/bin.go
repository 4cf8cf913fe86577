// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"github.com/aclements/go-gg/table"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	binBarColor  = drawing.ColorFromHex("82C6E2")
	binLineColor = drawing.ColorFromHex("D65F5F")
)

// AggregateBins groups t by the bin column x and returns a table with
// columns x, "sum", "count", "badrate", and "prop", where prop is each
// bin's share of all rows.
func AggregateBins(t *table.Table, x, target string) (*table.Table, error) {
	agg, err := AggregateBadRate(t, BadRateOptions{X: x, Target: target})
	if err != nil {
		return nil, err
	}
	counts := agg.MustColumn("count").([]int)
	total := 0
	for _, c := range counts {
		total += c
	}
	props := make([]float64, len(counts))
	for i, c := range counts {
		props[i] = ratio(float64(c), total)
	}
	return table.NewBuilder(agg).Add("prop", props).Done(), nil
}

// Bin plots each bin's share of rows as bars and its bad rate as a
// line on a second y axis, with every value labeled. It returns the
// bar chart's Axes; the line is on its Twin.
func (p *Plotter) Bin(t *table.Table, x, target string) (Result, error) {
	agg, err := AggregateBins(t, x, target)
	if err != nil {
		return nil, err
	}
	p.log.Debug("aggregated bins", "x", x, "bins", agg.Len())

	return p.Wrap(func() (Result, error) {
		prop := p.axes()
		if err := p.barplot(prop, agg, x, "prop", style{color: &binBarColor}); err != nil {
			return nil, err
		}
		Annotate(prop)

		rate := prop.Twin()
		rate.SetGrid(false)
		if err := p.lineplot(rate, agg, x, "badrate", style{color: &binLineColor}); err != nil {
			return nil, err
		}
		Annotate(rate)
		p.ResetTickLabels(rate)
		return prop, nil
	})
}
