// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series implements go-chart series and renderables that the
// chart package does not provide: lines with gaps and markers,
// grouped bars, heatmaps, offset value labels, and legends.
package series

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
)

// point maps a data point to canvas pixel coordinates.
func point(box chart.Box, xr, yr chart.Range, x, y float64) (int, int) {
	return box.Left + xr.Translate(x), box.Bottom - yr.Translate(y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TextWidth returns the width in pixels of s set in f at size points
// and the given DPI. If f is nil, it uses the chart package's default
// font.
func TextWidth(f *truetype.Font, size, dpi float64, s string) int {
	if f == nil {
		var err error
		if f, err = chart.GetDefaultFont(); err != nil {
			return 0
		}
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi})
	defer face.Close()
	return font.MeasureString(face, s).Ceil()
}

// TextHeight returns the cap height in pixels of text set at size
// points and the given DPI.
func TextHeight(size, dpi float64) int {
	return int(math.Ceil(size * dpi / 72 * 0.75))
}

func checkLen(name string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("series %q: %d x values, %d y values", name, len(xs), len(ys))
	}
	return nil
}
