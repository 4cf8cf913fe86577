// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bar is one bar centered at X, rising from 0 to Height. Width is in
// x data units.
type Bar struct {
	X, Width, Height float64
	Color            drawing.Color
}

// Bars is a set of bars, each with its own color, drawn in order.
// Bars with a non-finite height are skipped.
type Bars struct {
	Name  string
	YAxis chart.YAxisType
	Style chart.Style
	Bars  []Bar
}

func (b Bars) GetName() string           { return b.Name }
func (b Bars) GetYAxis() chart.YAxisType { return b.YAxis }
func (b Bars) GetStyle() chart.Style     { return b.Style }
func (b Bars) Validate() error           { return nil }

func (b Bars) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, defaults chart.Style) {
	clamp := func(y int) int {
		if y < box.Top {
			return box.Top
		} else if y > box.Bottom {
			return box.Bottom
		}
		return y
	}
	for _, bar := range b.Bars {
		if !finite(bar.X) || !finite(bar.Height) {
			continue
		}
		x0, y0 := point(box, xr, yr, bar.X-bar.Width/2, 0)
		x1, y1 := point(box, xr, yr, bar.X+bar.Width/2, bar.Height)
		y0, y1 = clamp(y0), clamp(y1)
		fillRect(r, x0, y0, x1, y1, bar.Color)
	}
}
