// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Heatmap draws a matrix of colored square cells with row labels on
// the left, rotated column labels underneath, and a colorbar on the
// right. It lays itself out within the canvas and ignores the chart
// ranges.
type Heatmap struct {
	Name    string
	Style   chart.Style
	XLabels []string
	YLabels []string

	// Values[i][j] is the cell in row i (counting from the top)
	// and column j.
	Values [][]float64

	// Mask[i][j], if true, hides cell (i, j). Mask may be nil.
	Mask [][]bool

	// Color maps a value in [Min, Max] to a cell color.
	Color    func(v float64) drawing.Color
	Min, Max float64

	// Format is the fmt verb for cell labels. If empty, cells
	// are not labeled.
	Format string

	// Shrink is the colorbar height as a fraction of the grid
	// height.
	Shrink float64

	// Gap is the width in pixels of the blank line between cells.
	Gap int
}

func (h Heatmap) GetName() string           { return h.Name }
func (h Heatmap) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (h Heatmap) GetStyle() chart.Style     { return h.Style }

func (h Heatmap) Validate() error {
	if len(h.Values) != len(h.YLabels) {
		return fmt.Errorf("heatmap: %d rows, %d row labels", len(h.Values), len(h.YLabels))
	}
	for i, row := range h.Values {
		if len(row) != len(h.XLabels) {
			return fmt.Errorf("heatmap: row %d has %d cells, %d column labels", i, len(row), len(h.XLabels))
		}
	}
	return nil
}

func (h Heatmap) masked(i, j int) bool {
	return i < len(h.Mask) && j < len(h.Mask[i]) && h.Mask[i][j]
}

const (
	colorbarWidth = 20
	colorbarSteps = 64
	labelPad      = 6
)

func (h Heatmap) Render(r chart.Renderer, box chart.Box, xr, yr chart.Range, defaults chart.Style) {
	rows, cols := len(h.YLabels), len(h.XLabels)
	if rows == 0 || cols == 0 {
		return
	}
	style := h.Style.InheritFrom(defaults)
	r.SetFont(style.GetFont())
	r.SetFontSize(style.GetFontSize(10))
	r.SetFontColor(style.GetFontColor(chart.ColorBlack))

	maxWidth := func(labels []string) int {
		w := 0
		for _, l := range labels {
			if tw := r.MeasureText(l).Width(); tw > w {
				w = tw
			}
		}
		return w
	}
	textH := r.MeasureText("0").Height()
	yw, xw := maxWidth(h.YLabels), maxWidth(h.XLabels)
	cbTicks := []float64{h.Min, (h.Min + h.Max) / 2, h.Max}
	cbLabels := make([]string, len(cbTicks))
	for i, v := range cbTicks {
		cbLabels[i] = fmt.Sprintf("%.1f", v)
	}
	cbw := 2*labelPad + colorbarWidth + labelPad + maxWidth(cbLabels)

	cell := (box.Width() - yw - labelPad - cbw) / cols
	if c := (box.Height() - xw - labelPad) / rows; c < cell {
		cell = c
	}
	if cell < 1 {
		cell = 1
	}
	left := box.Left + yw + labelPad
	top := box.Top
	gridW, gridH := cols*cell, rows*cell

	// Cells.
	inset := h.Gap / 2
	for i, row := range h.Values {
		for j, v := range row {
			if h.masked(i, j) || !finite(v) {
				continue
			}
			x0, y0 := left+j*cell+inset, top+i*cell+inset
			x1, y1 := left+(j+1)*cell-inset, top+(i+1)*cell-inset
			c := h.Color(v)
			fillRect(r, x0, y0, x1, y1, c)
			if h.Format == "" {
				continue
			}
			label := fmt.Sprintf(h.Format, v)
			if luminance(c) < 0.5 {
				r.SetFontColor(drawing.ColorWhite)
			} else {
				r.SetFontColor(chart.ColorBlack)
			}
			tw := r.MeasureText(label).Width()
			r.Text(label, (x0+x1-tw)/2, (y0+y1+textH)/2)
		}
	}
	r.SetFontColor(style.GetFontColor(chart.ColorBlack))

	// Row labels, right aligned against the grid.
	for i, l := range h.YLabels {
		tw := r.MeasureText(l).Width()
		r.Text(l, left-labelPad-tw, top+i*cell+(cell+textH)/2)
	}

	// Column labels, reading upward.
	r.SetTextRotation(-math.Pi / 2)
	for j, l := range h.XLabels {
		tw := r.MeasureText(l).Width()
		r.Text(l, left+j*cell+(cell+textH)/2, top+gridH+labelPad+tw)
	}
	r.ClearTextRotation()

	// Colorbar.
	shrink := h.Shrink
	if shrink <= 0 || shrink > 1 {
		shrink = 1
	}
	cbH := int(float64(gridH) * shrink)
	cbLeft := left + gridW + 2*labelPad
	cbTop := top + (gridH-cbH)/2
	for s := 0; s < colorbarSteps; s++ {
		y0 := cbTop + s*cbH/colorbarSteps
		y1 := cbTop + (s+1)*cbH/colorbarSteps
		v := h.Max - (h.Max-h.Min)*(float64(s)+0.5)/colorbarSteps
		fillRect(r, cbLeft, y0, cbLeft+colorbarWidth, y1, h.Color(v))
	}
	for i, v := range cbTicks {
		if h.Max <= h.Min {
			break
		}
		y := cbTop + int(float64(cbH)*(h.Max-v)/(h.Max-h.Min))
		r.SetStrokeColor(chart.ColorBlack)
		r.SetStrokeWidth(1)
		r.MoveTo(cbLeft+colorbarWidth, y)
		r.LineTo(cbLeft+colorbarWidth+3, y)
		r.Stroke()
		r.Text(cbLabels[i], cbLeft+colorbarWidth+labelPad, y+textH/2)
	}
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int, c drawing.Color) {
	r.SetFillColor(c)
	r.SetStrokeWidth(0)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.Fill()
}

// luminance returns the relative luminance of c in [0, 1].
func luminance(c drawing.Color) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
