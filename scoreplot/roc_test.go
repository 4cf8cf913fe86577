// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"errors"
	"testing"

	"github.com/amphibian-go/toadplot/roc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestROC(t *testing.T) {
	p := New(nil)
	res, err := p.ROC([]float64{0.1, 0.4, 0.35, 0.8}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	a := res.(*Axes)
	require.Len(t, a.Lines(), 2)

	curve := a.Lines()[0]
	assert.Equal(t, "ROC (AUC = 0.750)", curve.Label)
	n := len(curve.X)
	assert.Equal(t, 0.0, curve.X[0])
	assert.Equal(t, 0.0, curve.Y[0])
	assert.Equal(t, 1.0, curve.X[n-1])
	assert.Equal(t, 1.0, curve.Y[n-1])
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, curve.X[i], curve.X[i-1])
		assert.GreaterOrEqual(t, curve.Y[i], curve.Y[i-1])
	}

	chance := a.Lines()[1]
	assert.Equal(t, []float64{0, 1}, chance.X)
	assert.Equal(t, []float64{0, 1}, chance.Y)
	assert.Equal(t, chanceColor, chance.Color)
	assert.NotEmpty(t, chance.Dash)
	assert.Equal(t, []string{curve.Label}, a.LegendLabels())
	assert.Nil(t, a.XTickLabels(), "ROC x axis is continuous")

	renderPNG(t, a)
}

func TestROCErrors(t *testing.T) {
	p := New(nil)
	_, err := p.ROC([]float64{0.1, 0.2}, []float64{1})
	assert.True(t, errors.Is(err, roc.ErrLength), "got %v", err)
	_, err = p.ROC([]float64{0.1, 0.2}, []float64{1, 1})
	assert.True(t, errors.Is(err, roc.ErrOneClass), "got %v", err)
}
