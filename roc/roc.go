// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roc computes receiver operating characteristic curves for
// binary classifiers.
package roc

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrLength is returned when scores and labels differ in length.
	ErrLength = errors.New("scores and labels have different lengths")

	// ErrLabel is returned when a label is not 0 or 1.
	ErrLabel = errors.New("label is not 0 or 1")

	// ErrOneClass is returned when the labels contain only one
	// class, which leaves one of the rates undefined.
	ErrOneClass = errors.New("labels contain a single class")
)

// Curve returns the false positive rates, true positive rates, and
// decision thresholds of the ROC curve for scores against binary
// labels. Point i is the result of predicting positive for every
// score >= thresholds[i]. The first point is always (0, 0) with a
// threshold of +Inf and the last is (1, 1).
//
// Points that lie on a straight line between their neighbors are
// dropped since they do not change the shape of the curve.
func Curve(scores, labels []float64) (fpr, tpr, thresholds []float64, err error) {
	if len(scores) != len(labels) {
		return nil, nil, nil, fmt.Errorf("roc: %d scores, %d labels: %w", len(scores), len(labels), ErrLength)
	}
	for i, l := range labels {
		if l != 0 && l != 1 {
			return nil, nil, nil, fmt.Errorf("roc: label %d is %v: %w", i, l, ErrLabel)
		}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	// Accumulate true and false positives at each distinct score.
	var tps, fps, thresh []float64
	var tp, fp float64
	for k, i := range order {
		tp += labels[i]
		fp += 1 - labels[i]
		if k+1 < len(order) && scores[order[k+1]] == scores[i] {
			continue
		}
		tps = append(tps, tp)
		fps = append(fps, fp)
		thresh = append(thresh, scores[i])
	}
	if tp == 0 || fp == 0 {
		return nil, nil, nil, fmt.Errorf("roc: %v positives, %v negatives: %w", tp, fp, ErrOneClass)
	}

	tps, fps, thresh = dropCollinear(tps, fps, thresh)

	fpr = make([]float64, 0, len(fps)+1)
	tpr = make([]float64, 0, len(tps)+1)
	thresholds = make([]float64, 0, len(thresh)+1)
	fpr = append(fpr, 0)
	tpr = append(tpr, 0)
	thresholds = append(thresholds, math.Inf(1))
	for i := range tps {
		fpr = append(fpr, fps[i]/fp)
		tpr = append(tpr, tps[i]/tp)
		thresholds = append(thresholds, thresh[i])
	}
	return fpr, tpr, thresholds, nil
}

// dropCollinear removes interior points whose neighbors on both sides
// differ from it only along one axis in the same direction.
func dropCollinear(tps, fps, thresh []float64) ([]float64, []float64, []float64) {
	if len(tps) <= 2 {
		return tps, fps, thresh
	}
	keep := func(i int) bool {
		if i == 0 || i == len(tps)-1 {
			return true
		}
		// Second differences.
		return fps[i+1]-2*fps[i]+fps[i-1] != 0 || tps[i+1]-2*tps[i]+tps[i-1] != 0
	}
	var ot, of, oth []float64
	for i := range tps {
		if keep(i) {
			ot = append(ot, tps[i])
			of = append(of, fps[i])
			oth = append(oth, thresh[i])
		}
	}
	return ot, of, oth
}

// AUC returns the area under the curve through the points (xs[i],
// ys[i]) using the trapezoidal rule. xs must be monotonic.
func AUC(xs, ys []float64) float64 {
	var area float64
	for i := 1; i < len(xs) && i < len(ys); i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return area
}
