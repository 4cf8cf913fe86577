// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"fmt"
	"math"

	"github.com/amphibian-go/toadplot/theme"
)

// Cosmetics applies theme fonts and legend placement to Axes. All of
// its methods accept a nil *Axes and return it unchanged.
type Cosmetics struct {
	Theme *theme.Theme
}

// ResetTickLabels sets the font of a's tick labels to the theme font.
func (c Cosmetics) ResetTickLabels(a *Axes) *Axes {
	if a == nil {
		return nil
	}
	a.tickFont = c.Theme.Font()
	a.tickFontSize = c.Theme.FontSize()
	return a
}

// ResetLegend moves a's legend outside the plot area, centered
// against its right edge, with no background and the theme font.
func (c Cosmetics) ResetLegend(a *Axes) *Axes {
	if a == nil {
		return nil
	}
	a.legend.Outside = true
	a.legend.Frame = false
	a.legend.Font = c.Theme.Font()
	a.legend.FontSize = c.Theme.FontSize()
	return a
}

// FixAxes applies ResetTickLabels and ResetLegend.
func (c Cosmetics) FixAxes(a *Axes) *Axes {
	return c.ResetLegend(c.ResetTickLabels(a))
}

// Wrap calls fn and applies FixAxes to every Axes in its result.
func (c Cosmetics) Wrap(fn func() (Result, error)) (Result, error) {
	r, err := fn()
	if err != nil {
		return nil, err
	}
	return Transform(r, c.FixAxes), nil
}

// annotateOffset is the distance in pixels between a value and its
// label.
const annotateOffset = 5

// Annotate labels every line point and bar of a with its y value.
// Labels sit above their value, or below it if the value is
// negative. NaN values are not labeled.
func Annotate(a *Axes) *Axes {
	if a == nil {
		return nil
	}
	for _, l := range a.lines {
		for i, x := range l.X {
			if i < len(l.Y) && !math.IsNaN(l.Y[i]) {
				a.AddAnnotation(valueLabel(x, l.Y[i]))
			}
		}
	}
	for _, b := range a.bars {
		if !math.IsNaN(b.Height) {
			a.AddAnnotation(valueLabel(b.X, b.Height))
		}
	}
	return a
}

func valueLabel(x, y float64) Annotation {
	n := Annotation{X: x, Y: y, Label: fmt.Sprintf("%.2f", y), Offset: annotateOffset, VAlign: AlignBottom}
	if y < 0 {
		n.Offset = -annotateOffset
		n.VAlign = AlignTop
	}
	return n
}
