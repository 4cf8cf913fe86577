// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/wcharczuk/go-chart/v2"
)

// VAlign selects which edge of a label is placed at its anchor.
type VAlign int

const (
	// Bottom places the label's bottom edge at the anchor, so
	// the label sits above it.
	Bottom VAlign = iota
	// Top places the label's top edge at the anchor.
	Top
)

func (v VAlign) String() string {
	if v == Top {
		return "top"
	}
	return "bottom"
}

// An Annotation is a text label attached to a data point. The label
// is horizontally centered on the point and its anchor is Offset
// pixels above the point (below if Offset is negative).
type Annotation struct {
	X, Y   float64
	Label  string
	Offset int
	VAlign VAlign
}

// Annotations is a series of text labels.
type Annotations struct {
	Name  string
	YAxis chart.YAxisType
	Style chart.Style
	Items []Annotation
}

func (a Annotations) GetName() string           { return a.Name }
func (a Annotations) GetYAxis() chart.YAxisType { return a.YAxis }
func (a Annotations) GetStyle() chart.Style     { return a.Style }
func (a Annotations) Validate() error           { return nil }

func (a Annotations) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, defaults chart.Style) {
	style := a.Style.InheritFrom(defaults)
	r.SetFont(style.GetFont())
	r.SetFontSize(style.GetFontSize(8))
	r.SetFontColor(style.GetFontColor(chart.ColorBlack))
	for _, item := range a.Items {
		if !finite(item.X) || !finite(item.Y) {
			continue
		}
		px, py := point(box, xr, yr, item.X, item.Y)
		tb := r.MeasureText(item.Label)
		y := py - item.Offset
		if item.VAlign == Top {
			y += tb.Height()
		}
		r.Text(item.Label, px-tb.Width()/2, y)
	}
}
