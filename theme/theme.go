// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme holds the visual configuration shared by every plot:
// the font, the color palette, the heatmap colormap, and figure
// geometry.
//
// A Theme is built once, typically at program startup, and is
// immutable afterwards. It is safe to share between goroutines.
package theme

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/go-fonts/liberation/liberationserifregular"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// Config is the serializable form of a Theme. Zero fields take their
// default values.
type Config struct {
	// Font is "go", "go-bold", "liberation-sans",
	// "liberation-serif", or the path of a TrueType font file.
	// Fonts with CFF outlines (most .otf files) are not supported.
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`

	// Palette is the list of colors assigned to successive hue
	// groups, as "#RRGGBB" strings.
	Palette []string `yaml:"palette"`

	Heatmap struct {
		Low  string `yaml:"low"`
		Mid  string `yaml:"mid"`
		High string `yaml:"high"`
	} `yaml:"heatmap"`

	// MaxStyle is the number of hue groups above which every line
	// is drawn with the same marker.
	MaxStyle int `yaml:"max_style"`

	// FigSize is the default figure width and height in inches.
	FigSize [2]float64 `yaml:"fig_size"`
	DPI     float64    `yaml:"dpi"`
}

// Muted is the default palette.
var Muted = []string{
	"#4878D0", "#EE854A", "#6ACC64", "#D65F5F", "#956CB4",
	"#8C613C", "#DC7EC0", "#797979", "#D5BB67", "#82C6E2",
}

const (
	defaultFont     = "go"
	defaultFontSize = 10
	defaultMaxStyle = 6
	defaultDPI      = 100

	heatmapLow  = "#3B72A8"
	heatmapMid  = "#F2F2F2"
	heatmapHigh = "#C7424A"
)

var defaultFigSize = [2]float64{12, 6}

var hexRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Theme is an immutable set of plot styling resources.
type Theme struct {
	font     *truetype.Font
	fontName string
	fontSize float64
	palette  []drawing.Color
	heatmap  palette.RGBGradient
	maxStyle int
	figSize  [2]float64
	dpi      float64
}

// New builds a Theme from cfg, loading and parsing its font.
func New(cfg Config) (*Theme, error) {
	th := &Theme{
		fontName: cfg.Font,
		fontSize: cfg.FontSize,
		maxStyle: cfg.MaxStyle,
		figSize:  cfg.FigSize,
		dpi:      cfg.DPI,
	}
	if th.fontName == "" {
		th.fontName = defaultFont
	}
	if th.fontSize <= 0 {
		th.fontSize = defaultFontSize
	}
	if th.maxStyle <= 0 {
		th.maxStyle = defaultMaxStyle
	}
	if th.figSize[0] <= 0 || th.figSize[1] <= 0 {
		th.figSize = defaultFigSize
	}
	if th.dpi <= 0 {
		th.dpi = defaultDPI
	}

	var err error
	th.font, err = loadFont(th.fontName)
	if err != nil {
		return nil, err
	}

	hexes := cfg.Palette
	if len(hexes) == 0 {
		hexes = Muted
	}
	for _, h := range hexes {
		c, err := parseColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		th.palette = append(th.palette, c)
	}

	var stops []color.RGBA
	for _, h := range []struct{ v, def string }{
		{cfg.Heatmap.Low, heatmapLow},
		{cfg.Heatmap.Mid, heatmapMid},
		{cfg.Heatmap.High, heatmapHigh},
	} {
		if h.v == "" {
			h.v = h.def
		}
		c, err := parseColor(h.v)
		if err != nil {
			return nil, fmt.Errorf("heatmap: %w", err)
		}
		stops = append(stops, color.RGBA{c.R, c.G, c.B, c.A})
	}
	// RGBGradient holds its first color over the whole first
	// segment, so the low color is doubled and Heatmap skips it.
	th.heatmap = palette.RGBGradient{Colors: append(stops[:1:1], stops...)}

	return th, nil
}

// Default returns the Theme built from the zero Config.
func Default() *Theme {
	th, err := New(Config{})
	if err != nil {
		// The default font is compiled in.
		panic(err)
	}
	return th
}

// Load reads a YAML theme configuration from path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	th, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return th, nil
}

func loadFont(name string) (*truetype.Font, error) {
	var ttf []byte
	switch name {
	case "go":
		ttf = goregular.TTF
	case "go-bold":
		ttf = gobold.TTF
	case "liberation-sans":
		ttf = liberationsansregular.TTF
	case "liberation-serif":
		ttf = liberationserifregular.TTF
	default:
		var err error
		ttf, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("loading font: %w", err)
		}
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", name, err)
	}
	return f, nil
}

func parseColor(s string) (drawing.Color, error) {
	if !hexRe.MatchString(s) {
		return drawing.Color{}, fmt.Errorf("bad color %q", s)
	}
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
}

// Font returns the font used for every label.
func (th *Theme) Font() *truetype.Font { return th.font }

// FontName returns the name the font was configured with.
func (th *Theme) FontName() string { return th.fontName }

// FontSize returns the base font size in points.
func (th *Theme) FontSize() float64 { return th.fontSize }

// Color returns the palette color for hue group i, cycling through
// the palette.
func (th *Theme) Color(i int) drawing.Color {
	return th.palette[i%len(th.palette)]
}

// PaletteLen returns the number of distinct palette colors.
func (th *Theme) PaletteLen() int { return len(th.palette) }

// Heatmap maps v in [-1, 1] to the diverging heatmap colormap, with
// 0 at the middle color.
func (th *Theme) Heatmap(v float64) drawing.Color {
	x := (v + 1) / 2
	var c color.Color
	switch {
	case x <= 0 || math.IsNaN(x):
		c = th.heatmap.Colors[0]
	case x >= 1:
		c = th.heatmap.Colors[len(th.heatmap.Colors)-1]
	default:
		c = th.heatmap.Map((1 + 2*x) / 3)
	}
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// MaxStyle returns the number of hue groups above which lines share
// a single marker.
func (th *Theme) MaxStyle() int { return th.maxStyle }

// FigSize returns the default figure size in inches.
func (th *Theme) FigSize() (w, h float64) { return th.figSize[0], th.figSize[1] }

// DPI returns the figure resolution in pixels per inch.
func (th *Theme) DPI() float64 { return th.dpi }
