// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/frame"
)

// BadRateOptions configures BadRate and AggregateBadRate.
type BadRateOptions struct {
	// X is the column plotted on the x axis.
	X string

	// Target is the 0/1 target column. It defaults to "target".
	Target string

	// TargetValues, if non-nil, supplies the target values
	// directly instead of Target. It must have one element per
	// row.
	TargetValues table.Slice

	// By optionally splits the rows into one line per distinct
	// value of this column.
	By string

	// Freq, if set, bins X as a datetime into periods of this
	// frequency, such as "D", "W", "M", "2M", or "Q". Format is
	// the time layout used to parse X; if empty, common layouts
	// are tried.
	Freq   string
	Format string

	// ReturnCounts adds a bar chart of group sizes to the result.
	ReturnCounts bool
	// ReturnProportion adds a "prop" column and a bar chart of
	// each group's share of its x value.
	ReturnProportion bool
	// ReturnFrame returns the aggregated table in place of the
	// bad rate chart.
	ReturnFrame bool
}

func (o BadRateOptions) target() string {
	if o.Target == "" {
		return "target"
	}
	return o.Target
}

type rateGroup struct {
	by, x interface{}
	sum   float64
	count int
}

// AggregateBadRate groups t by (By, X) and returns a table with
// columns By (if set), X, "sum", "count", and "badrate", plus "prop"
// if o.ReturnProportion is set. Rows are sorted by By then X.
//
// The badrate of a group with no counted rows is NaN. When Freq is
// set and By is not, periods between the first and last one that have
// no rows are included with a count of 0. Rows with a NaN target are
// not counted. Rows whose X or By value is missing (NaN or nil) belong
// to no group and are dropped.
func AggregateBadRate(t *table.Table, o BadRateOptions) (*table.Table, error) {
	if o.X == "" {
		return nil, errors.New("badrate: no x column")
	}
	target := o.target()
	if o.TargetValues != nil {
		var err error
		t, target, err = frame.WithValues(t, "target", o.TargetValues)
		if err != nil {
			return nil, fmt.Errorf("badrate: %w", err)
		}
	}
	ys, err := frame.Floats(t, target)
	if err != nil {
		return nil, fmt.Errorf("badrate: %w", err)
	}
	xcol, err := frame.Column(t, o.X)
	if err != nil {
		return nil, fmt.Errorf("badrate: %w", err)
	}

	var freq frame.Freq
	if o.Freq != "" {
		if freq, err = frame.ParseFreq(o.Freq); err != nil {
			return nil, fmt.Errorf("badrate: %w", err)
		}
		ts, err := frame.ParseTimes(xcol, o.Format)
		if err != nil {
			return nil, fmt.Errorf("badrate: column %q: %w", o.X, err)
		}
		xcol = freq.Bin(ts)
	}
	xv := frame.Values(xcol)

	var bycol table.Slice
	var bv []interface{}
	if o.By != "" {
		if bycol, err = frame.Column(t, o.By); err != nil {
			return nil, fmt.Errorf("badrate: %w", err)
		}
		bv = frame.Values(bycol)
	}

	// Group rows.
	type key struct{ by, x interface{} }
	index := make(map[key]*rateGroup)
	var groups []*rateGroup
	group := func(by, x interface{}) *rateGroup {
		k := key{frame.Key(by), frame.Key(x)}
		g := index[k]
		if g == nil {
			g = &rateGroup{by: by, x: x}
			index[k] = g
			groups = append(groups, g)
		}
		return g
	}
	for i, x := range xv {
		var by interface{}
		if bv != nil {
			by = bv[i]
			if frame.Missing(by) {
				continue
			}
		}
		if frame.Missing(x) {
			continue
		}
		g := group(by, x)
		if !math.IsNaN(ys[i]) {
			g.sum += ys[i]
			g.count++
		}
	}

	// Fill in empty periods.
	if o.Freq != "" && o.By == "" && len(xv) > 0 {
		ts := xcol.([]time.Time)
		first, last := ts[0], ts[0]
		for _, tm := range ts {
			if tm.Before(first) {
				first = tm
			}
			if tm.After(last) {
				last = tm
			}
		}
		for _, start := range freq.Span(first, last) {
			group(nil, start)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if c := frame.Compare(groups[i].by, groups[j].by); c != 0 {
			return c < 0
		}
		return frame.Compare(groups[i].x, groups[j].x) < 0
	})

	n := len(groups)
	var (
		byOut   = make([]interface{}, n)
		xOut    = make([]interface{}, n)
		sums    = make([]float64, n)
		counts  = make([]int, n)
		rates   = make([]float64, n)
		props   = make([]float64, n)
		xTotals = make(map[interface{}]int)
	)
	for i, g := range groups {
		byOut[i], xOut[i] = g.by, g.x
		sums[i], counts[i] = g.sum, g.count
		rates[i] = ratio(g.sum, g.count)
		xTotals[frame.Key(g.x)] += g.count
	}
	for i, g := range groups {
		props[i] = ratio(float64(g.count), xTotals[frame.Key(g.x)])
	}

	var b table.Builder
	if o.By != "" {
		b.Add(o.By, frame.FromValues(bycol, byOut))
	}
	b.Add(o.X, frame.FromValues(xcol, xOut))
	b.Add("sum", sums)
	b.Add("count", counts)
	b.Add("badrate", rates)
	if o.ReturnProportion {
		b.Add("prop", props)
	}
	return b.Done(), nil
}

// ratio returns num/den, or NaN if den is 0.
func ratio(num float64, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / float64(den)
}

// BadRate plots the bad rate of each X value as a line, with one line
// per By group. The result holds, in order, the bad rate chart
// ("badrate"), a bar chart of group counts ("count") if
// o.ReturnCounts, a bar chart of each By group's share of its X value
// ("prop") if o.ReturnProportion, and the aggregated table ("frame")
// if o.ReturnFrame. The table takes the place of the bad rate chart:
// with ReturnFrame the line chart is not returned. A result with one
// item is returned unwrapped.
//
// Lines get distinct markers unless there are more than
// Theme.MaxStyle() By groups, in which case every line uses circles.
// Empty periods appear as gaps in the line.
func (p *Plotter) BadRate(t *table.Table, o BadRateOptions) (Result, error) {
	agg, err := AggregateBadRate(t, o)
	if err != nil {
		return nil, err
	}
	s := style{hue: o.By, markers: true}
	if o.Freq != "" {
		freq, _ := frame.ParseFreq(o.Freq)
		s.layout = freq.Layout()
	}
	if o.By != "" {
		col := agg.MustColumn(o.By)
		styles := len(frame.Distinct(frame.Values(col)))
		s.circles = styles > p.Theme.MaxStyle()
		p.log.Debug("bad rate styles", "by", o.By, "styles", styles, "circles", s.circles)
	}
	p.log.Debug("aggregated bad rate", "x", o.X, "groups", agg.Len())

	return p.Wrap(func() (Result, error) {
		var res Tuple
		if !o.ReturnFrame {
			rate := p.axes()
			if err := p.lineplot(rate, agg, o.X, "badrate", s); err != nil {
				return nil, err
			}
			res = append(res, Named{"badrate", rate})
		}

		bars := s
		bars.markers = false
		if o.ReturnCounts {
			a := p.axes()
			if err := p.barplot(a, agg, o.X, "count", bars); err != nil {
				return nil, err
			}
			res = append(res, Named{"count", a})
		}
		if o.ReturnProportion {
			a := p.axes()
			if err := p.barplot(a, agg, o.X, "prop", bars); err != nil {
				return nil, err
			}
			res = append(res, Named{"prop", a})
		}
		if o.ReturnFrame {
			res = append(res, Named{"frame", Frame{agg}})
		}
		return unpack(res), nil
	})
}
