// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurve(t *testing.T) {
	fpr, tpr, thresholds, err := Curve([]float64{0.1, 0.4, 0.35, 0.8}, []float64{0, 0, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0.5, 0.5, 1}, fpr)
	assert.Equal(t, []float64{0, 0.5, 0.5, 1, 1}, tpr)
	require.Len(t, thresholds, 5)
	assert.True(t, math.IsInf(thresholds[0], 1))
	assert.Equal(t, []float64{0.8, 0.4, 0.35, 0.1}, thresholds[1:])

	for i := 1; i < len(fpr); i++ {
		if fpr[i] < fpr[i-1] || tpr[i] < tpr[i-1] {
			t.Errorf("curve not monotonic at %d: fpr %v tpr %v", i, fpr, tpr)
		}
	}
	assert.InDelta(t, 0.75, AUC(fpr, tpr), 1e-12)
}

func TestCurveTies(t *testing.T) {
	// All positives rank above all negatives. The two tied negatives
	// form a single point, and the middle positive is collinear with
	// its neighbors.
	scores := []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.2}
	labels := []float64{1, 1, 1, 0, 0, 0}
	fpr, tpr, thresholds, err := Curve(scores, labels)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 1.0 / 3, 1}, fpr, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 1, 1, 1}, tpr, 1e-12)
	assert.Equal(t, []float64{0.9, 0.7, 0.3, 0.2}, thresholds[1:])
	assert.InDelta(t, 1, AUC(fpr, tpr), 1e-12)
}

func TestCurveErrors(t *testing.T) {
	for _, test := range []struct {
		scores, labels []float64
		want           error
	}{
		{[]float64{1, 2}, []float64{1}, ErrLength},
		{[]float64{1, 2}, []float64{1, 2}, ErrLabel},
		{[]float64{1, 2}, []float64{1, 1}, ErrOneClass},
		{[]float64{1, 2}, []float64{0, 0}, ErrOneClass},
	} {
		_, _, _, err := Curve(test.scores, test.labels)
		if !errors.Is(err, test.want) {
			t.Errorf("Curve(%v, %v): want %v; got %v", test.scores, test.labels, test.want, err)
		}
	}
}
