// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoreplot

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/amphibian-go/toadplot/internal/series"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image output format.
type Format int

const (
	PNG Format = iota
	SVG
)

// ParseFormat parses "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

func (f Format) String() string {
	if f == SVG {
		return "svg"
	}
	return "png"
}

// Marker is a line point marker shape.
type Marker = series.Marker

const (
	NoMarker = series.NoMarker
	Circle   = series.Circle
	Cross    = series.Cross
	Square   = series.Square
	Plus     = series.Plus
	Diamond  = series.Diamond
	Triangle = series.Triangle
)

// Annotation is a value label attached to a data point.
type Annotation = series.Annotation

const (
	// AlignBottom puts a label's bottom edge at its anchor.
	AlignBottom = series.Bottom
	// AlignTop puts a label's top edge at its anchor.
	AlignTop = series.Top
)

// A Line is a line drawn on an Axes. Points with a NaN y value are
// gaps.
type Line struct {
	// Label is the legend label. Lines with no label do not
	// appear in the legend.
	Label  string
	X, Y   []float64
	Color  drawing.Color
	Marker Marker
	Dash   []float64
}

// A Bar is one bar drawn on an Axes, centered at X. A NaN Height is
// not drawn.
type Bar struct {
	Label  string
	X      float64
	Width  float64
	Height float64
	Color  drawing.Color
}

// A Figure is an image holding one Axes and optionally a twin Axes
// that shares its x axis.
type Figure struct {
	// Width and Height are in inches.
	Width, Height float64
	DPI           float64
	Title         string

	axes []*Axes

	// xcats holds the x tick labels of a categorical x axis, with
	// category i at x == i. It is nil for a continuous x axis.
	xcats []string
}

// LegendInfo describes how an Axes draws its legend.
type LegendInfo struct {
	// Outside places the legend right of the plot area,
	// vertically centered. Otherwise it is inside the upper right
	// corner.
	Outside bool
	// Frame draws the legend on a white background with a border.
	Frame    bool
	Font     *truetype.Font
	FontSize float64
	Title    string
}

// Axes is a drawable plot area. Plot functions draw on an Axes and
// the cosmetic functions modify it in place. The drawing only
// happens when the figure is rendered.
type Axes struct {
	fig  *Figure
	twin bool

	XLabel, YLabel string

	lines       []Line
	bars        []Bar
	heatmap     *series.Heatmap
	annotations []Annotation

	tickFont     *truetype.Font
	tickFontSize float64
	legend       LegendInfo
	grid         bool
}

// NewFigure returns a figure of the given size with a single Axes.
func NewFigure(width, height, dpi float64) *Axes {
	f := &Figure{Width: width, Height: height, DPI: dpi}
	a := &Axes{fig: f, grid: true, legend: LegendInfo{Frame: true}}
	f.axes = []*Axes{a}
	return a
}

// Figure returns the figure a belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

// Twin returns a second Axes sharing a's x axis with an independent
// y axis drawn on the right. Repeated calls return the same Axes.
func (a *Axes) Twin() *Axes {
	f := a.fig
	if len(f.axes) > 1 {
		return f.axes[1]
	}
	t := &Axes{fig: f, twin: true, grid: true, legend: LegendInfo{Frame: true}}
	f.axes = append(f.axes, t)
	return t
}

// IsTwin reports whether a is the secondary Axes of its figure.
func (a *Axes) IsTwin() bool { return a.twin }

func (a *Axes) Lines() []Line               { return a.lines }
func (a *Axes) Bars() []Bar                 { return a.bars }
func (a *Axes) Annotations() []Annotation   { return a.annotations }
func (a *Axes) Legend() LegendInfo          { return a.legend }
func (a *Axes) TickFont() *truetype.Font    { return a.tickFont }
func (a *Axes) Grid() bool                  { return a.grid }
func (a *Axes) SetGrid(on bool)             { a.grid = on }
func (a *Axes) AddLine(l Line)              { a.lines = append(a.lines, l) }
func (a *Axes) AddBar(b Bar)                { a.bars = append(a.bars, b) }
func (a *Axes) AddAnnotation(n Annotation)  { a.annotations = append(a.annotations, n) }
func (a *Axes) HasHeatmap() bool            { return a.heatmap != nil }
func (a *Axes) SetLegendTitle(title string) { a.legend.Title = title }

// XTickLabels returns the labels of a categorical x axis, or nil.
func (a *Axes) XTickLabels() []string { return a.fig.xcats }

// SetXCategories makes the x axis categorical with the given labels.
func (a *Axes) SetXCategories(labels []string) { a.fig.xcats = labels }

// LegendLabels returns the distinct labels of a's lines and bars, in
// drawing order.
func (a *Axes) LegendLabels() []string {
	var out []string
	for _, e := range a.legendEntries() {
		out = append(out, e.Label)
	}
	return out
}

func (a *Axes) legendEntries() []series.LegendEntry {
	var out []series.LegendEntry
	seen := make(map[string]bool)
	for _, l := range a.lines {
		if l.Label == "" || seen[l.Label] {
			continue
		}
		seen[l.Label] = true
		out = append(out, series.LegendEntry{Label: l.Label, Color: l.Color, Line: true, Marker: l.Marker, Dash: l.Dash})
	}
	for _, b := range a.bars {
		if b.Label == "" || seen[b.Label] {
			continue
		}
		seen[b.Label] = true
		out = append(out, series.LegendEntry{Label: b.Label, Color: b.Color})
	}
	return out
}

// Render writes a's whole figure to w.
func (a *Axes) Render(w io.Writer, format Format) error {
	return a.fig.Render(w, format)
}

// Render writes f to w.
func (f *Figure) Render(w io.Writer, format Format) error {
	c := f.chart()
	rp := chart.PNG
	if format == SVG {
		rp = chart.SVG
	}
	if err := c.Render(rp, w); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	return nil
}

const (
	chartPad  = 20
	titlePad  = 30
	barWidth  = 0.8
	yMaxTicks = 8
)

var (
	hiddenAxis = chart.Style{Hidden: true}
	unitTicks  = []chart.Tick{{Value: 0}, {Value: 1}}
	gridStyle  = chart.Style{StrokeColor: drawing.ColorFromHex("DDDDDD"), StrokeWidth: 1}
)

// chart builds the go-chart description of f. The primary Axes is
// drawn against go-chart's secondary y axis, which is on the left.
func (f *Figure) chart() chart.Chart {
	px := func(in float64) int { return int(in * f.DPI) }
	c := chart.Chart{
		Title:  f.Title,
		Width:  px(f.Width),
		Height: px(f.Height),
		DPI:    f.DPI,
		Background: chart.Style{
			Padding: chart.Box{Top: chartPad, Left: chartPad, Right: chartPad, Bottom: chartPad},
		},
	}
	main := f.axes[0]
	if f.Title != "" {
		c.TitleStyle = chart.Style{Font: main.tickFont}
		c.Background.Padding.Top += titlePad
	}

	if main.heatmap != nil {
		h := *main.heatmap
		h.Style.Font = main.tickFont
		if main.tickFontSize > 0 {
			h.Style.FontSize = main.tickFontSize
		}
		c.XAxis = chart.XAxis{Style: hiddenAxis, Ticks: unitTicks}
		c.YAxis = chart.YAxis{Style: hiddenAxis, Ticks: unitTicks}
		c.YAxisSecondary = secondaryAxis(chart.YAxis{Style: hiddenAxis, Ticks: unitTicks})
		c.Series = []chart.Series{h}
		return c
	}

	c.XAxis = f.xAxis(main)
	c.YAxisSecondary = secondaryAxis(main.yAxis())
	c.Series = main.series(chart.YAxisSecondary)
	legendOffset := 0
	if len(f.axes) > 1 {
		twin := f.axes[1]
		c.YAxis = twin.yAxis()
		c.Series = append(c.Series, twin.series(chart.YAxisPrimary)...)
		legendOffset = yAxisWidth(twin, c.YAxis.Ticks, f.DPI)
	} else {
		c.YAxis = chart.YAxis{Style: hiddenAxis, Ticks: unitTicks}
	}

	extra := 0
	for _, a := range f.axes {
		l := a.legendRenderable(legendOffset)
		if len(l.Entries) == 0 {
			continue
		}
		c.Elements = append(c.Elements, l.Render)
		if w := l.Width(f.DPI); w > extra {
			extra = w
		}
	}
	c.Background.Padding.Right += extra
	return c
}

// fixedTicks is a range spanning a fixed set of ticks.
type fixedTicks struct {
	chart.ContinuousRange
	ticks []chart.Tick
}

func (r *fixedTicks) GetTicks(chart.Renderer, chart.Style, chart.ValueFormatter) []chart.Tick {
	return r.ticks
}

// secondaryAxis moves ya's ticks into its range. go-chart sizes a
// secondary axis that has explicit ticks from the primary axis' ticks.
func secondaryAxis(ya chart.YAxis) chart.YAxis {
	lo, hi := ya.Ticks[0].Value, ya.Ticks[len(ya.Ticks)-1].Value
	ya.Range = &fixedTicks{chart.ContinuousRange{Min: lo, Max: hi}, ya.Ticks}
	ya.Ticks = nil
	return ya
}

func (a *Axes) legendRenderable(offset int) series.Legend {
	return series.Legend{
		Title:    a.legend.Title,
		Entries:  a.legendEntries(),
		Font:     a.legend.Font,
		FontSize: a.legend.FontSize,
		Outside:  a.legend.Outside,
		Offset:   offset,
		Frame:    a.legend.Frame,
	}
}

func (a *Axes) tickStyle() chart.Style {
	return chart.Style{Font: a.tickFont, FontSize: a.tickFontSize}
}

func (f *Figure) xAxis(a *Axes) chart.XAxis {
	xa := chart.XAxis{
		Name:           a.XLabel,
		Style:          a.tickStyle(),
		GridMajorStyle: hiddenAxis,
		GridMinorStyle: hiddenAxis,
	}
	if f.xcats != nil {
		n := len(f.xcats)
		xa.Ticks = append(xa.Ticks, chart.Tick{Value: -0.5})
		widest := 0
		for i, l := range f.xcats {
			xa.Ticks = append(xa.Ticks, chart.Tick{Value: float64(i), Label: l})
			if w := series.TextWidth(a.tickFont, fontSize(a.tickFontSize), f.DPI, l); w > widest {
				widest = w
			}
		}
		xa.Ticks = append(xa.Ticks, chart.Tick{Value: float64(n) - 0.5})
		if n > 0 && widest*n > int(0.8*f.Width*f.DPI) {
			xa.Style.TextRotationDegrees = 45
		}
		return xa
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, ax := range f.axes {
		for _, l := range ax.lines {
			for _, x := range l.X {
				if !math.IsNaN(x) {
					lo, hi = math.Min(lo, x), math.Max(hi, x)
				}
			}
		}
	}
	xa.Ticks = niceTicks(lo, hi)
	return xa
}

func (a *Axes) yAxis() chart.YAxis {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range a.lines {
		for _, y := range l.Y {
			if !math.IsNaN(y) && !math.IsInf(y, 0) {
				lo, hi = math.Min(lo, y), math.Max(hi, y)
			}
		}
	}
	if len(a.bars) > 0 {
		lo, hi = math.Min(lo, 0), math.Max(hi, 0)
		for _, b := range a.bars {
			if !math.IsNaN(b.Height) {
				lo, hi = math.Min(lo, b.Height), math.Max(hi, b.Height)
			}
		}
	}
	ya := chart.YAxis{
		Name:           a.YLabel,
		Style:          a.tickStyle(),
		Ticks:          niceTicks(lo, hi),
		GridMajorStyle: hiddenAxis,
		GridMinorStyle: hiddenAxis,
	}
	if a.grid {
		ya.GridMajorStyle = gridStyle
	}
	return ya
}

func (a *Axes) series(axis chart.YAxisType) []chart.Series {
	var out []chart.Series
	if len(a.bars) > 0 {
		bs := series.Bars{Name: "bars", YAxis: axis}
		for _, b := range a.bars {
			bs.Bars = append(bs.Bars, series.Bar{X: b.X, Width: b.Width, Height: b.Height, Color: b.Color})
		}
		out = append(out, bs)
	}
	for _, l := range a.lines {
		out = append(out, series.Line{
			Name:  l.Label,
			YAxis: axis,
			Style: chart.Style{
				StrokeColor:     l.Color,
				StrokeWidth:     2,
				StrokeDashArray: l.Dash,
				DotWidth:        4,
			},
			Marker:  l.Marker,
			XValues: l.X,
			YValues: l.Y,
		})
	}
	if len(a.annotations) > 0 {
		out = append(out, series.Annotations{
			Name:  "annotations",
			YAxis: axis,
			Style: chart.Style{Font: a.tickFont, FontSize: 0.8 * fontSize(a.tickFontSize)},
			Items: a.annotations,
		})
	}
	return out
}

func fontSize(size float64) float64 {
	if size > 0 {
		return size
	}
	return chart.DefaultFontSize
}

// yAxisWidth estimates the width of a right hand y axis.
func yAxisWidth(a *Axes, ticks []chart.Tick, dpi float64) int {
	w := 0
	for _, t := range ticks {
		if tw := series.TextWidth(a.tickFont, fontSize(a.tickFontSize), dpi, t.Label); tw > w {
			w = tw
		}
	}
	return w + 2*chart.DefaultYAxisMargin
}

// niceTicks returns labeled ticks at round values covering [lo, hi].
func niceTicks(lo, hi float64) []chart.Tick {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	major, _ := scale.Linear{Min: lo, Max: hi}.Ticks(scale.TickOptions{Max: yMaxTicks})
	if len(major) < 2 {
		ticks := make([]chart.Tick, 2)
		for i, v := range []float64{lo, hi} {
			ticks[i] = chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 4, 64)}
		}
		return ticks
	}
	step := major[1] - major[0]
	if major[0] > lo {
		major = append([]float64{major[0] - step}, major...)
	}
	if last := major[len(major)-1]; last < hi {
		major = append(major, last+step)
	}
	prec := 0
	if step < 1 {
		prec = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	ticks := make([]chart.Tick, len(major))
	for i, v := range major {
		ticks[i] = chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', prec, 64)}
	}
	return ticks
}
