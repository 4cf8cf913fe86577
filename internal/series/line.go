// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Marker is a point marker shape.
type Marker int

const (
	NoMarker Marker = iota
	Circle
	Cross
	Square
	Plus
	Diamond
	Triangle
)

// Markers is the order markers are assigned to successive styles.
var Markers = []Marker{Circle, Cross, Square, Plus, Diamond, Triangle}

func (m Marker) String() string {
	switch m {
	case NoMarker:
		return "none"
	case Circle:
		return "circle"
	case Cross:
		return "cross"
	case Square:
		return "square"
	case Plus:
		return "plus"
	case Diamond:
		return "diamond"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Draw draws m centered at (x, y) with the given radius in pixels
// using the renderer's current fill and stroke style.
func (m Marker) Draw(r chart.Renderer, x, y int, radius float64) {
	d := int(radius + 0.5)
	poly := func(pts ...int) {
		r.MoveTo(pts[0], pts[1])
		for i := 2; i < len(pts); i += 2 {
			r.LineTo(pts[i], pts[i+1])
		}
		r.Close()
		r.FillStroke()
	}
	switch m {
	case Circle:
		r.Circle(radius, x, y)
		r.FillStroke()
	case Square:
		poly(x-d, y-d, x+d, y-d, x+d, y+d, x-d, y+d)
	case Diamond:
		poly(x, y-d, x+d, y, x, y+d, x-d, y)
	case Triangle:
		poly(x, y-d, x+d, y+d, x-d, y+d)
	case Cross, Plus:
		t := d / 3
		if t < 1 {
			t = 1
		}
		if m == Plus {
			poly(x-t, y-d, x+t, y-d, x+t, y-t, x+d, y-t, x+d, y+t, x+t, y+t,
				x+t, y+d, x-t, y+d, x-t, y+t, x-d, y+t, x-d, y-t, x-t, y-t)
			return
		}
		poly(x-d, y-d+t, x-d+t, y-d, x, y-t, x+d-t, y-d, x+d, y-d+t, x+t, y,
			x+d, y+d-t, x+d-t, y+d, x, y+t, x-d+t, y+d, x-d, y+d-t, x-t, y)
	}
}

// Line is a polyline series. Points with a non-finite coordinate
// break the line into separate runs and get no marker.
type Line struct {
	Name    string
	YAxis   chart.YAxisType
	Style   chart.Style
	Marker  Marker
	XValues []float64
	YValues []float64
}

func (l Line) GetName() string           { return l.Name }
func (l Line) GetYAxis() chart.YAxisType { return l.YAxis }
func (l Line) GetStyle() chart.Style     { return l.Style }

func (l Line) Validate() error {
	return checkLen(l.Name, l.XValues, l.YValues)
}

func (l Line) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, defaults chart.Style) {
	style := l.Style.InheritFrom(defaults)
	color := style.GetStrokeColor()

	r.SetStrokeColor(color)
	r.SetStrokeWidth(style.GetStrokeWidth(2))
	r.SetStrokeDashArray(style.GetStrokeDashArray())
	open := false
	for i, x := range l.XValues {
		y := l.YValues[i]
		if !finite(x) || !finite(y) {
			if open {
				r.Stroke()
				open = false
			}
			continue
		}
		px, py := point(box, xr, yr, x, y)
		if open {
			r.LineTo(px, py)
		} else {
			r.MoveTo(px, py)
			open = true
		}
	}
	if open {
		r.Stroke()
	}

	if l.Marker == NoMarker {
		return
	}
	radius := style.GetDotWidth(4)
	r.SetStrokeDashArray(nil)
	r.SetStrokeWidth(1)
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetFillColor(color)
	for i, x := range l.XValues {
		y := l.YValues[i]
		if !finite(x) || !finite(y) {
			continue
		}
		px, py := point(box, xr, yr, x, y)
		l.Marker.Draw(r, px, py, radius)
	}
}
