// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// A LegendEntry is one row of a legend. Line entries show a short
// line segment with the marker; other entries show a filled patch.
type LegendEntry struct {
	Label  string
	Color  drawing.Color
	Line   bool
	Marker Marker
	Dash   []float64
}

// Legend is a chart.Renderable listing series labels.
type Legend struct {
	Title   string
	Entries []LegendEntry

	Font     *truetype.Font
	FontSize float64

	// Outside places the legend to the right of the canvas,
	// vertically centered, Offset pixels past its right edge.
	// Otherwise the legend is inside the upper right corner.
	Outside bool
	Offset  int

	// Frame draws a white background and a border.
	Frame bool
}

const (
	legendPad    = 5
	legendSwatch = 20
	legendMargin = 10
)

func (l Legend) fontSize() float64 {
	if l.FontSize > 0 {
		return l.FontSize
	}
	return 10
}

// rowHeight returns the height of one legend row in pixels.
func (l Legend) rowHeight(dpi float64) int {
	return TextHeight(l.fontSize(), dpi) + 2*legendPad
}

// Size returns the width and height of the legend box in pixels.
func (l Legend) Size(dpi float64) (w, h int) {
	if len(l.Entries) == 0 {
		return 0, 0
	}
	tw := 0
	for _, e := range l.Entries {
		if w := TextWidth(l.Font, l.fontSize(), dpi, e.Label); w > tw {
			tw = w
		}
	}
	w = legendPad + legendSwatch + legendPad + tw + legendPad
	rows := len(l.Entries)
	if l.Title != "" {
		rows++
		if tw := TextWidth(l.Font, l.fontSize(), dpi, l.Title) + 2*legendPad; tw > w {
			w = tw
		}
	}
	return w, rows*l.rowHeight(dpi) + legendPad
}

// Width returns the horizontal space the legend occupies outside
// the canvas, including its margin. It is 0 for inside legends.
func (l Legend) Width(dpi float64) int {
	if !l.Outside || len(l.Entries) == 0 {
		return 0
	}
	w, _ := l.Size(dpi)
	return l.Offset + legendMargin + w
}

// Render draws the legend. It has the signature of a
// chart.Renderable.
func (l Legend) Render(r chart.Renderer, box chart.Box, defaults chart.Style) {
	if len(l.Entries) == 0 {
		return
	}
	dpi := r.GetDPI()
	w, h := l.Size(dpi)
	var left, top int
	if l.Outside {
		left = box.Right + l.Offset + legendMargin
		top = box.Top + (box.Height()-h)/2
	} else {
		left = box.Right - w - legendMargin
		top = box.Top + legendMargin
	}

	if l.Frame {
		r.SetFillColor(drawing.ColorWhite)
		r.SetStrokeColor(chart.ColorAlternateGray)
		r.SetStrokeWidth(1)
		r.SetStrokeDashArray(nil)
		r.MoveTo(left, top)
		r.LineTo(left+w, top)
		r.LineTo(left+w, top+h)
		r.LineTo(left, top+h)
		r.Close()
		r.FillStroke()
	}

	f := l.Font
	if f == nil {
		f = defaults.Font
	}
	r.SetFont(f)
	r.SetFontSize(l.fontSize())
	r.SetFontColor(chart.ColorBlack)

	rh := l.rowHeight(dpi)
	textH := TextHeight(l.fontSize(), dpi)
	y := top + legendPad
	if l.Title != "" {
		r.Text(l.Title, left+legendPad, y+textH)
		y += rh
	}
	for _, e := range l.Entries {
		cx, cy := left+legendPad+legendSwatch/2, y+textH/2
		if e.Line {
			r.SetStrokeColor(e.Color)
			r.SetStrokeWidth(2)
			r.SetStrokeDashArray(e.Dash)
			r.MoveTo(left+legendPad, cy)
			r.LineTo(left+legendPad+legendSwatch, cy)
			r.Stroke()
			if e.Marker != NoMarker {
				r.SetStrokeDashArray(nil)
				r.SetStrokeWidth(1)
				r.SetStrokeColor(drawing.ColorWhite)
				r.SetFillColor(e.Color)
				e.Marker.Draw(r, cx, cy, 4)
			}
		} else {
			fillRect(r, left+legendPad+3, y, left+legendPad+legendSwatch-3, y+textH, e.Color)
		}
		r.SetFontColor(chart.ColorBlack)
		r.Text(e.Label, left+legendPad+legendSwatch+legendPad, y+textH)
		y += rh
	}
}
