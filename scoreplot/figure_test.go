// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/amphibian-go/toadplot/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

func renderPNG(t *testing.T, a *Axes) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, a.Render(&buf, PNG))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	f := a.Figure()
	assert.Equal(t, int(f.Width*f.DPI), img.Bounds().Dx())
	assert.Equal(t, int(f.Height*f.DPI), img.Bounds().Dy())
}

func renderSVG(t *testing.T, a *Axes) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, a.Render(&buf, SVG))
	assert.True(t, strings.Contains(buf.String(), "<svg"), "output is not SVG")
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{PNG, SVG} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestNiceTicks(t *testing.T) {
	for _, test := range []struct {
		lo, hi float64
	}{
		{0, 0.35},
		{-0.5, 0.25},
		{0, 1},
		{3, 3},
		{0, 1234},
		{math.Inf(1), math.Inf(-1)},
	} {
		ticks := niceTicks(test.lo, test.hi)
		require.GreaterOrEqual(t, len(ticks), 2, "%v", test)
		first, last := ticks[0].Value, ticks[len(ticks)-1].Value
		if !math.IsInf(test.lo, 0) {
			assert.LessOrEqual(t, first, test.lo, "%v", test)
			assert.GreaterOrEqual(t, last, test.hi, "%v", test)
		}
		assert.Less(t, first, last, "%v", test)
		for _, tick := range ticks {
			assert.NotEmpty(t, tick.Label)
		}
	}
}

func TestTwin(t *testing.T) {
	a := NewFigure(4, 3, 100)
	b := a.Twin()
	assert.Same(t, b, a.Twin())
	assert.Same(t, a.Figure(), b.Figure())
	a.SetXCategories([]string{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, b.XTickLabels())
}

func TestLegendPlacement(t *testing.T) {
	p := New(nil)
	a := p.axes()
	a.AddLine(Line{Label: "one", X: []float64{0, 1}, Y: []float64{0, 1}, Color: p.Theme.Color(0), Marker: Circle})
	a.AddLine(Line{Label: "two", X: []float64{0, 1}, Y: []float64{1, 0}, Color: p.Theme.Color(1), Marker: Square})

	inside := a.Figure().chart()
	require.Len(t, inside.Elements, 1)
	assert.Equal(t, chartPad, inside.Background.Padding.Right)

	p.FixAxes(a)
	outside := a.Figure().chart()
	require.Len(t, outside.Elements, 1)
	assert.Greater(t, outside.Background.Padding.Right, chartPad, "outside legend reserves space")

	renderPNG(t, a)
	renderSVG(t, a)
}

func TestRenderTheme(t *testing.T) {
	th, err := theme.New(theme.Config{Font: "liberation-sans", FigSize: [2]float64{6, 4}, DPI: 50})
	require.NoError(t, err)
	p := New(th)
	res, err := p.BadRate(loans(), BadRateOptions{X: "date", By: "grade", Freq: "W"})
	require.NoError(t, err)
	a := res.(*Axes)
	assert.Equal(t, 6.0, a.Figure().Width)
	renderPNG(t, a)
}

func TestSecondaryAxisRange(t *testing.T) {
	a := NewFigure(6, 4, 50)
	a.AddBar(Bar{X: 0, Width: 0.8, Height: 250})
	c := a.Figure().chart()

	ya := c.YAxisSecondary
	assert.Nil(t, ya.Ticks)
	require.NotNil(t, ya.Range)
	assert.Equal(t, 0.0, ya.Range.GetMin())
	assert.GreaterOrEqual(t, ya.Range.GetMax(), 250.0)
	tp, ok := ya.Range.(chart.TicksProvider)
	require.True(t, ok)
	ticks := tp.GetTicks(nil, chart.Style{}, nil)
	require.NotEmpty(t, ticks)
	assert.Equal(t, ya.Range.GetMax(), ticks[len(ticks)-1].Value)
	renderPNG(t, a)
}
