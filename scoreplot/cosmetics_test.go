// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/amphibian-go/toadplot/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixAxesNil(t *testing.T) {
	c := Cosmetics{Theme: theme.Default()}
	assert.Nil(t, c.FixAxes(nil))
	assert.Nil(t, c.ResetLegend(nil))
	assert.Nil(t, c.ResetTickLabels(nil))
	assert.Nil(t, Annotate(nil))
}

func TestFixAxes(t *testing.T) {
	th := theme.Default()
	c := Cosmetics{Theme: th}
	a := NewFigure(4, 3, 100)
	assert.Nil(t, a.TickFont())
	assert.False(t, a.Legend().Outside)
	assert.True(t, a.Legend().Frame)

	assert.Same(t, a, c.FixAxes(a))
	assert.Equal(t, th.Font(), a.TickFont())
	l := a.Legend()
	assert.True(t, l.Outside)
	assert.False(t, l.Frame)
	assert.Equal(t, th.Font(), l.Font)
	assert.Equal(t, th.FontSize(), l.FontSize)
}

func TestAnnotate(t *testing.T) {
	a := NewFigure(4, 3, 100)
	a.AddBar(Bar{X: 0, Width: 0.8, Height: 0.25})
	a.AddBar(Bar{X: 1, Width: 0.8, Height: -0.5})
	a.AddLine(Line{X: []float64{0, 1}, Y: []float64{0.3, -1}})
	Annotate(a)

	got := a.Annotations()
	require.Len(t, got, 4)
	want := []Annotation{
		{X: 0, Y: 0.3, Label: "0.30", Offset: 5, VAlign: AlignBottom},
		{X: 1, Y: -1, Label: "-1.00", Offset: -5, VAlign: AlignTop},
		{X: 0, Y: 0.25, Label: "0.25", Offset: 5, VAlign: AlignBottom},
		{X: 1, Y: -0.5, Label: "-0.50", Offset: -5, VAlign: AlignTop},
	}
	assert.Equal(t, want, got)
	renderPNG(t, a)
}

func TestTransform(t *testing.T) {
	a, b := NewFigure(1, 1, 10), NewFigure(1, 1, 10)
	tab := new(table.Builder).Add("x", []int{1}).Done()
	r := Tuple{{"a", a}, {"frame", Frame{tab}}, {"b", b}}

	var seen []*Axes
	out := Transform(r, func(x *Axes) *Axes {
		seen = append(seen, x)
		return x
	})
	assert.Equal(t, []*Axes{a, b}, seen)
	assert.Equal(t, r, out)

	assert.Nil(t, Transform(nil, func(x *Axes) *Axes { panic("called") }))
	assert.Equal(t, Frame{tab}, Transform(Frame{tab}, func(x *Axes) *Axes { panic("called") }))

	// assert.Nil would accept a nil *Axes wrapped in a Result.
	drop := func(*Axes) *Axes { return nil }
	assert.True(t, Transform(a, drop) == nil, "want untyped nil Result")
	out = Transform(r, drop)
	assert.True(t, out.(Tuple)[0].Value == nil, "want untyped nil Result in tuple")
}

func TestWrap(t *testing.T) {
	c := Cosmetics{Theme: theme.Default()}
	a := NewFigure(1, 1, 10)
	res, err := c.Wrap(func() (Result, error) { return unpack(Tuple{{"a", a}}), nil })
	require.NoError(t, err)
	assert.Same(t, a, res)
	assert.True(t, a.Legend().Outside)

	boom := errors.New("boom")
	_, err = c.Wrap(func() (Result, error) { return nil, boom })
	assert.Same(t, boom, err)
}
