// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"fmt"

	"github.com/amphibian-go/toadplot/roc"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	chanceColor = drawing.Color{R: 255, A: 255}
	chanceDash  = []float64{6, 4}
)

// ROC plots the ROC curve of scores against 0/1 labels, with the
// area under the curve in its legend label, and a dashed red
// diagonal for a classifier with no skill.
func (p *Plotter) ROC(scores, labels []float64) (Result, error) {
	fpr, tpr, thresholds, err := roc.Curve(scores, labels)
	if err != nil {
		return nil, err
	}
	auc := roc.AUC(fpr, tpr)
	p.log.Debug("roc curve", "points", len(fpr), "thresholds", len(thresholds), "auc", auc)

	return p.Wrap(func() (Result, error) {
		a := p.axes()
		a.XLabel = "false positive rate"
		a.YLabel = "true positive rate"
		a.AddLine(Line{
			Label: fmt.Sprintf("ROC (AUC = %.3f)", auc),
			X:     fpr,
			Y:     tpr,
			Color: p.Theme.Color(0),
		})
		a.AddLine(Line{
			X:     []float64{0, 1},
			Y:     []float64{0, 1},
			Color: chanceColor,
			Dash:  chanceDash,
		})
		return a, nil
	})
}
