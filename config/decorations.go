package config

import (
	"fmt"
	"strings"

	"github.com/midbel/chartkit"
)

type Grid struct {
	Origin   float64 `yaml:"origin"`
	Spacing  float64 `yaml:"spacing"`
	Absolute bool    `yaml:"absolute"`
	Color    string  `yaml:"color"`
	Labels   bool    `yaml:"labels"`
}

// HasLabels reports whether the values of the grid lines are written.
func (g *Grid) HasLabels() bool {
	return g != nil && g.Labels
}

func (g *Grid) get(field string) (*chartkit.Grid, error) {
	if g == nil {
		return nil, nil
	}
	if g.Spacing <= 0 {
		return nil, invalid(field+".spacing", fmt.Sprint(g.Spacing), nil)
	}
	grid := chartkit.Grid{
		Origin:   g.Origin,
		Spacing:  g.Spacing,
		Absolute: g.Absolute,
	}
	var err error
	if grid.Color, err = parseColor(field+".color", g.Color); err != nil {
		return nil, err
	}
	return &grid, nil
}

type Grids struct {
	X *Grid `yaml:"x"`
	Y *Grid `yaml:"y"`
}

func (g Grids) Get() (*chartkit.Grid, *chartkit.Grid, error) {
	x, err := g.X.get("grid.x")
	if err != nil {
		return nil, nil, err
	}
	y, err := g.Y.get("grid.y")
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

type Mark struct {
	Kind   string  `yaml:"kind"`
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Color  string  `yaml:"color"`
}

func (m *Mark) get(field string) (*chartkit.OriginMark, error) {
	if m == nil {
		return nil, nil
	}
	width := m.Width
	if width <= 0 {
		width = chartkit.DefaultStrokeWidth
	}
	var mark *chartkit.OriginMark
	switch strings.ToLower(m.Kind) {
	case "", "line":
		mark = chartkit.LineMark(width)
	case "tic":
		mark = chartkit.TicMark(m.Length, width)
	case "positive-tic":
		mark = chartkit.PositiveTicMark(m.Length, width)
	default:
		return nil, invalid(field+".kind", m.Kind, chartkit.ErrKind)
	}
	var err error
	if mark.Color, err = parseColor(field+".color", m.Color); err != nil {
		return nil, err
	}
	return mark, nil
}

type Origins struct {
	X *Mark `yaml:"x"`
	Y *Mark `yaml:"y"`
}

// GetOrigins resolves the origin marks. Tic lengths are expressed in steps
// of the grid of the other axis.
func (c Config) GetOrigins() (chartkit.Origins, error) {
	var (
		origins chartkit.Origins
		err     error
	)
	if origins.XGrid, origins.YGrid, err = c.Grid.Get(); err != nil {
		return origins, err
	}
	if origins.XMark, err = c.Origin.X.get("origin.x"); err != nil {
		return origins, err
	}
	if origins.YMark, err = c.Origin.Y.get("origin.y"); err != nil {
		return origins, err
	}
	return origins, nil
}

type Range struct {
	Axis        string   `yaml:"axis"`
	Lower       *float64 `yaml:"lower"`
	Upper       *float64 `yaml:"upper"`
	Open        bool     `yaml:"open"`
	Fill        string   `yaml:"fill"`
	Opacity     *float64 `yaml:"opacity"`
	Stroke      string   `yaml:"stroke"`
	StrokeWidth *float64 `yaml:"stroke-width"`
}

// Band is a range resolved against the axis it applies to.
type Band struct {
	Vertical bool
	Range    chartkit.Range
	Style    chartkit.RangeStyle
}

// Get resolves the range. When open is set, the upper bound is excluded.
func (r Range) Get() (Band, error) {
	var band Band
	switch strings.ToLower(r.Axis) {
	case "", "x":
		band.Vertical = true
	case "y":
	default:
		return band, invalid("ranges.axis", r.Axis, nil)
	}
	switch {
	case r.Lower != nil && r.Upper != nil && r.Open:
		band.Range = chartkit.HalfOpenRange(*r.Lower, *r.Upper)
	case r.Lower != nil && r.Upper != nil:
		band.Range = chartkit.ClosedRange(*r.Lower, *r.Upper)
	case r.Lower != nil:
		band.Range = chartkit.RangeFrom(*r.Lower)
	case r.Upper != nil && r.Open:
		band.Range = chartkit.RangeUpTo(*r.Upper)
	case r.Upper != nil:
		band.Range = chartkit.RangeThrough(*r.Upper)
	default:
		return band, invalid("ranges", "", fmt.Errorf("no bound given"))
	}
	band.Style = chartkit.DefaultRangeStyle()
	if c, err := parseColor("ranges.fill", r.Fill); err != nil {
		return band, err
	} else if c != nil {
		band.Style.Fill = c
	}
	if r.Opacity != nil {
		band.Style.Opacity = *r.Opacity
	}
	var err error
	if band.Style.Stroke, err = parseColor("ranges.stroke", r.Stroke); err != nil {
		return band, err
	}
	if r.StrokeWidth != nil {
		band.Style.StrokeWidth = *r.StrokeWidth
	}
	return band, nil
}

func (c Config) GetRanges() ([]Band, error) {
	var list []Band
	for _, r := range c.Ranges {
		b, err := r.Get()
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}

type Highlight struct {
	Select      string   `yaml:"select"`
	Fill        string   `yaml:"fill"`
	Stroke      string   `yaml:"stroke"`
	StrokeWidth *float64 `yaml:"stroke-width"`
	Radius      *float64 `yaml:"radius"`
	Marker      string   `yaml:"marker"`
	Length      *float64 `yaml:"length"`
	Axis        string   `yaml:"axis"`
}

// Decoration is a resolved highlight. Marker is nil when no axis marker is
// drawn.
type Decoration struct {
	Selection chartkit.Selection
	Style     chartkit.HighlightStyle
	Marker    *chartkit.AxisMarker
	OnX       bool
	OnY       bool
}

func (h Highlight) Get() (Decoration, error) {
	var deco Decoration
	switch strings.ToLower(h.Select) {
	case "", "all":
		deco.Selection = chartkit.All
	case "first":
		deco.Selection = chartkit.First
	case "last":
		deco.Selection = chartkit.Last
	default:
		return deco, invalid("highlight.select", h.Select, nil)
	}
	deco.Style = chartkit.DefaultHighlightStyle()
	if c, err := parseColor("highlight.fill", h.Fill); err != nil {
		return deco, err
	} else if c != nil {
		deco.Style.Fill = c
	}
	var err error
	if deco.Style.Stroke, err = parseColor("highlight.stroke", h.Stroke); err != nil {
		return deco, err
	}
	deco.Style.StrokeWidth = h.StrokeWidth
	deco.Style.Radius = h.Radius

	length := func(def float64) float64 {
		if h.Length != nil {
			return *h.Length
		}
		return def
	}
	switch strings.ToLower(h.Marker) {
	case "":
	case "tic":
		deco.Marker = chartkit.Ref(chartkit.AxisTic(length(chartkit.DefaultMarkerLength)))
	case "point":
		deco.Marker = chartkit.Ref(chartkit.ToPoint(length(0)))
	case "range":
		deco.Marker = chartkit.Ref(chartkit.ThruRange)
	default:
		return deco, invalid("highlight.marker", h.Marker, chartkit.ErrKind)
	}
	switch strings.ToLower(h.Axis) {
	case "", "x":
		deco.OnX = true
	case "y":
		deco.OnY = true
	case "both":
		deco.OnX, deco.OnY = true, true
	default:
		return deco, invalid("highlight.axis", h.Axis, nil)
	}
	return deco, nil
}

type Legend struct {
	Position    []string `yaml:"position"`
	Orientation string   `yaml:"orientation"`
	Swatch      *float64 `yaml:"swatch"`
	FontSize    float64  `yaml:"font-size"`
	Color       string   `yaml:"color"`
	Inline      bool     `yaml:"inline"`
}

var alignNames = map[string]chartkit.Alignment{
	"center":   chartkit.AlignCenter,
	"top":      chartkit.AlignTop,
	"bottom":   chartkit.AlignBottom,
	"leading":  chartkit.AlignLeading,
	"trailing": chartkit.AlignTrailing,
}

// Get resolves the legend style. A swatch of size 0 removes the swatches.
func (g Legend) Get() (chartkit.LegendStyle, error) {
	style := chartkit.DefaultLegendStyle()
	if len(g.Position) > 0 {
		style.Position = chartkit.AlignCenter
	}
	for _, p := range g.Position {
		a, ok := alignNames[strings.ToLower(p)]
		if !ok {
			return style, invalid("legend.position", p, nil)
		}
		style.Position |= a
	}
	switch strings.ToLower(g.Orientation) {
	case "", "vertical":
	case "horizontal":
		style.Orientation = chartkit.OrientHorizontal
	default:
		return style, invalid("legend.orientation", g.Orientation, nil)
	}
	if g.Swatch != nil {
		style.Swatch = nil
		if *g.Swatch > 0 {
			style.Swatch = chartkit.Ref(chartkit.NewSize(*g.Swatch, *g.Swatch))
		}
	}
	if g.FontSize > 0 {
		style.FontSize = g.FontSize
	}
	var err error
	if style.Color, err = parseColor("legend.color", g.Color); err != nil {
		return style, err
	}
	return style, nil
}
