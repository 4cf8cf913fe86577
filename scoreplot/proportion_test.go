// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionTable(t *testing.T) {
	tab, err := ProportionTable([]Series{
		{Values: []int{1, 1, 2}},
		{Values: []int{2, 2, 3}},
	}, []string{"A", "B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "A", "B", "B"}, tab.MustColumn("keys"))
	assert.Equal(t, []string{"1", "2", "2", "3"}, tab.MustColumn("value"))
	assert.InDeltaSlice(t, []float64{0.667, 0.333, 0.667, 0.333}, tab.MustColumn("proportion"), 1e-3)
}

func TestProportionTableKeys(t *testing.T) {
	tab, err := ProportionTable([]Series{
		{Name: "score", Values: []float64{1, math.NaN(), math.NaN(), 2}},
		{Values: []string{"x"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"score", "score", "score", "1"}, tab.MustColumn("keys"))
	// Missing values are counted, and ties are ordered by value.
	assert.Equal(t, []string{"NaN", "1", "2", "x"}, tab.MustColumn("value"))
	assert.Equal(t, []float64{0.5, 0.25, 0.25, 1}, tab.MustColumn("proportion"))

	tab, err = ProportionTable([]Series{
		{Name: "empty"},
		{Name: "none", Values: []string{}},
		{Name: "grade", Values: []string{"A"}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"grade"}, tab.MustColumn("keys"))
	assert.Equal(t, []float64{1}, tab.MustColumn("proportion"))

	_, err = ProportionTable([]Series{{Values: []int{1}}}, []string{"a", "b"})
	assert.Error(t, err)
}

func TestProportion(t *testing.T) {
	p := New(nil)
	res, err := p.Proportion([]Series{
		{Values: []int{1, 1, 2}},
		{Values: []int{2, 2, 3}},
	}, []string{"A", "B"})
	require.NoError(t, err)
	a := res.(*Axes)
	assert.Equal(t, []string{"1", "2", "3"}, a.XTickLabels())
	assert.Equal(t, []string{"A", "B"}, a.LegendLabels())
	require.Len(t, a.Bars(), 4)
	for _, b := range a.Bars() {
		assert.InDelta(t, 0.4, b.Width, 1e-12)
	}
	renderPNG(t, a)
}
