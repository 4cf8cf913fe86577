// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/frame"
	"github.com/amphibian-go/toadplot/internal/series"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// style controls how lineplot and barplot map a table to marks.
type style struct {
	// hue names the column that splits rows into colored groups.
	hue string
	// layout formats time-valued x categories.
	layout string
	// color, if set, overrides the palette.
	color *drawing.Color
	// markers assigns a marker per hue group. Lines get no marker
	// if it is false.
	markers bool
	// circles forces every group to use the circle marker.
	circles bool
}

func (s style) marker(group int) Marker {
	switch {
	case !s.markers:
		return NoMarker
	case s.circles:
		return Circle
	}
	return series.Markers[group%len(series.Markers)]
}

func (p *Plotter) color(s style, group int) drawing.Color {
	if s.color != nil {
		return *s.color
	}
	return p.Theme.Color(group)
}

// categories maps the distinct values of a column to x positions 0,
// 1, ... in key order.
type categories struct {
	labels []string
	index  map[interface{}]int
}

func newCategories(vals []interface{}, layout string) categories {
	keys := frame.Distinct(vals)
	c := categories{index: make(map[interface{}]int)}
	for i, k := range keys {
		c.labels = append(c.labels, frame.Label(k, layout))
		c.index[frame.Key(k)] = i
	}
	return c
}

func (c categories) pos(v interface{}) float64 {
	return float64(c.index[frame.Key(v)])
}

// hueGroups partitions the rows of t by column hue, in key order. If
// hue is "", all rows form one group with a nil key.
func hueGroups(t *table.Table, hue string) ([]interface{}, [][]int, error) {
	if hue == "" {
		rows := make([]int, t.Len())
		for i := range rows {
			rows[i] = i
		}
		return []interface{}{nil}, [][]int{rows}, nil
	}
	col, err := frame.Column(t, hue)
	if err != nil {
		return nil, nil, err
	}
	vals := frame.Values(col)
	keys := frame.Distinct(vals)
	index := make(map[interface{}]int)
	for i, k := range keys {
		index[frame.Key(k)] = i
	}
	groups := make([][]int, len(keys))
	for i, v := range vals {
		g := index[frame.Key(v)]
		groups[g] = append(groups[g], i)
	}
	return keys, groups, nil
}

// xy returns the x categories and y values of t, and sets a's x axis
// to the categories.
func xy(a *Axes, t *table.Table, x, y string, layout string) ([]interface{}, categories, []float64, error) {
	xcol, err := frame.Column(t, x)
	if err != nil {
		return nil, categories{}, nil, err
	}
	ys, err := frame.Floats(t, y)
	if err != nil {
		return nil, categories{}, nil, err
	}
	xv := frame.Values(xcol)
	cats := newCategories(xv, layout)
	a.SetXCategories(cats.labels)
	if a.XLabel == "" {
		a.XLabel = x
	}
	a.YLabel = y
	return xv, cats, ys, nil
}

// lineplot draws y against categorical x, one line per hue group.
func (p *Plotter) lineplot(a *Axes, t *table.Table, x, y string, s style) error {
	xv, cats, ys, err := xy(a, t, x, y, s.layout)
	if err != nil {
		return err
	}
	keys, groups, err := hueGroups(t, s.hue)
	if err != nil {
		return err
	}
	for g, rows := range groups {
		sort.SliceStable(rows, func(i, j int) bool {
			return cats.pos(xv[rows[i]]) < cats.pos(xv[rows[j]])
		})
		l := Line{Color: p.color(s, g), Marker: s.marker(g)}
		if s.hue != "" {
			l.Label = frame.Label(keys[g], "")
		}
		for _, r := range rows {
			l.X = append(l.X, cats.pos(xv[r]))
			l.Y = append(l.Y, ys[r])
		}
		a.AddLine(l)
	}
	if s.hue != "" {
		a.SetLegendTitle(s.hue)
	}
	return nil
}

// barplot draws y against categorical x as bars, dodging hue groups
// side by side within each category.
func (p *Plotter) barplot(a *Axes, t *table.Table, x, y string, s style) error {
	xv, cats, ys, err := xy(a, t, x, y, s.layout)
	if err != nil {
		return err
	}
	keys, groups, err := hueGroups(t, s.hue)
	if err != nil {
		return err
	}
	w := barWidth / float64(len(groups))
	for g, rows := range groups {
		off := -barWidth/2 + w*(float64(g)+0.5)
		label := ""
		if s.hue != "" {
			label = frame.Label(keys[g], "")
		}
		for _, r := range rows {
			a.AddBar(Bar{
				Label:  label,
				X:      cats.pos(xv[r]) + off,
				Width:  w,
				Height: ys[r],
				Color:  p.color(s, g),
			})
		}
	}
	if s.hue != "" {
		a.SetLegendTitle(s.hue)
	}
	return nil
}
