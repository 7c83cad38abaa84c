package config

import (
	"image/color"
	"strings"

	"github.com/midbel/chartkit"
	"github.com/spf13/cast"
)

// Segment overrides the style of the datum with the same id.
type Segment struct {
	Fill        string   `yaml:"fill"`
	Stroke      string   `yaml:"stroke"`
	StrokeWidth *float64 `yaml:"stroke-width"`
	ZIndex      *int     `yaml:"z-index"`
	Projection  *float64 `yaml:"projection"`
	Inner       string   `yaml:"inner-radius"`
	Outer       string   `yaml:"outer-radius"`
	Width       string   `yaml:"width"`
}

type Style struct {
	Kind        string  `yaml:"kind"`
	Colors      string  `yaml:"colors"`
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke-width"`

	LineColor string  `yaml:"line-color"`
	LineWidth float64 `yaml:"line-width"`
	Area      string  `yaml:"area"`
	Edge      string  `yaml:"edge"`
	EdgeWidth float64 `yaml:"edge-width"`

	Orientation string `yaml:"orientation"`
	Spacing     string `yaml:"spacing"`
	BarWidth    string `yaml:"bar-width"`

	Inner      string  `yaml:"inner-radius"`
	Outer      string  `yaml:"outer-radius"`
	Projection float64 `yaml:"projection"`

	Segments map[string]Segment `yaml:"segments"`
}

func GlobalStyle() Style {
	return Style{
		Kind:   KindLine,
		Colors: "basic",
	}
}

func (s Style) merge(g Style) Style {
	if s.Kind == "" {
		s.Kind = g.Kind
	}
	if s.Colors == "" {
		s.Colors = g.Colors
	}
	if s.Fill == "" {
		s.Fill = g.Fill
	}
	if s.Stroke == "" {
		s.Stroke = g.Stroke
	}
	if s.StrokeWidth == 0 && g.StrokeWidth != 0 {
		s.StrokeWidth = g.StrokeWidth
	}
	if s.LineColor == "" {
		s.LineColor = g.LineColor
	}
	if s.LineWidth == 0 && g.LineWidth != 0 {
		s.LineWidth = g.LineWidth
	}
	if s.Area == "" {
		s.Area = g.Area
	}
	if s.Edge == "" {
		s.Edge = g.Edge
	}
	if s.EdgeWidth == 0 && g.EdgeWidth != 0 {
		s.EdgeWidth = g.EdgeWidth
	}
	if s.Orientation == "" {
		s.Orientation = g.Orientation
	}
	if s.Spacing == "" {
		s.Spacing = g.Spacing
	}
	if s.BarWidth == "" {
		s.BarWidth = g.BarWidth
	}
	if s.Inner == "" {
		s.Inner = g.Inner
	}
	if s.Outer == "" {
		s.Outer = g.Outer
	}
	if s.Projection == 0 && g.Projection != 0 {
		s.Projection = g.Projection
	}
	if len(g.Segments) > 0 {
		segments := make(map[string]Segment, len(g.Segments)+len(s.Segments))
		for id, seg := range g.Segments {
			segments[id] = seg
		}
		for id, seg := range s.Segments {
			segments[id] = seg
		}
		s.Segments = segments
	}
	return s
}

func (s Style) validate() error {
	switch s.Kind {
	case KindLine, KindBar, KindPie, KindRing:
	default:
		return invalid("kind", s.Kind, chartkit.ErrKind)
	}
	if _, err := s.Categorized(); err != nil {
		return err
	}
	if _, err := s.Line(); err != nil {
		return err
	}
	if _, err := s.Bar(); err != nil {
		return err
	}
	_, err := s.Radial()
	return err
}

func (s Style) Categorized() (chartkit.CategorizedStyle, error) {
	var (
		style chartkit.CategorizedStyle
		err   error
	)
	if style.Colors, err = chartkit.ColorSetByName(s.Colors); err != nil {
		return style, invalid("colors", s.Colors, err)
	}
	if style.Default.Fill, err = parseColor("fill", s.Fill); err != nil {
		return style, err
	}
	if style.Default.Stroke, err = parseColor("stroke", s.Stroke); err != nil {
		return style, err
	}
	if s.StrokeWidth > 0 {
		style.Default.StrokeWidth = chartkit.Ref(s.StrokeWidth)
	}
	for id, seg := range s.Segments {
		var sub chartkit.SegmentStyle
		if sub.Fill, err = parseColor("segments."+id+".fill", seg.Fill); err != nil {
			return style, err
		}
		if sub.Stroke, err = parseColor("segments."+id+".stroke", seg.Stroke); err != nil {
			return style, err
		}
		sub.StrokeWidth = seg.StrokeWidth
		sub.ZIndex = seg.ZIndex
		style = style.Set(id, sub)
	}
	return style, nil
}

func (s Style) Line() (chartkit.LineStyle, error) {
	style := chartkit.DefaultLineStyle()
	if c, err := parseColor("line-color", s.LineColor); err != nil {
		return style, err
	} else if c != nil {
		style.Color = *c
	}
	if s.LineWidth > 0 {
		style.Width = s.LineWidth
	}
	var err error
	if style.Fill, err = parseColor("area", s.Area); err != nil {
		return style, err
	}
	if style.Edge, err = parseColor("edge", s.Edge); err != nil {
		return style, err
	}
	if s.EdgeWidth > 0 {
		style.EdgeWidth = s.EdgeWidth
	}
	return style, nil
}

func (s Style) Bar() (chartkit.BarStyle, error) {
	var (
		style chartkit.BarStyle
		err   error
	)
	if style.Orientation, err = parseOrientation("orientation", s.Orientation); err != nil {
		return style, err
	}
	if style.Spacing, err = parseLength("spacing", s.Spacing); err != nil {
		return style, err
	}
	width, err := parseLength("bar-width", s.BarWidth)
	if err != nil {
		return style, err
	}
	if !width.IsAuto() {
		style.Default = &width
	}
	for id, seg := range s.Segments {
		if seg.Width == "" {
			continue
		}
		width, err := parseLength("segments."+id+".width", seg.Width)
		if err != nil {
			return style, err
		}
		style = style.SetWidth(id, width)
	}
	return style, nil
}

// Radial gives the style of pie and ring charts. Pie wedges have no hole
// unless an inner radius is set.
func (s Style) Radial() (chartkit.RadialStyle, error) {
	var (
		style chartkit.RadialStyle
		err   error
	)
	if s.Kind == KindPie {
		style = chartkit.PieStyle()
	}
	if s.Projection > 0 {
		style.Default.Projection = chartkit.Ref(s.Projection)
	}
	if r, err := parseRadius("inner-radius", s.Inner); err != nil {
		return style, err
	} else if r != nil {
		style.Default.Inner = r
	}
	if style.Default.Outer, err = parseRadius("outer-radius", s.Outer); err != nil {
		return style, err
	}
	for id, seg := range s.Segments {
		var sub chartkit.RadialSegmentStyle
		sub.Projection = seg.Projection
		if sub.Inner, err = parseRadius("segments."+id+".inner-radius", seg.Inner); err != nil {
			return style, err
		}
		if sub.Outer, err = parseRadius("segments."+id+".outer-radius", seg.Outer); err != nil {
			return style, err
		}
		style = style.Set(id, sub)
	}
	return style, nil
}

func parseColor(field, str string) (*color.RGBA, error) {
	if str == "" {
		return nil, nil
	}
	c, err := chartkit.ParseColor(str)
	if err != nil {
		return nil, invalid(field, str, err)
	}
	return &c, nil
}

func parseLength(field, str string) (chartkit.Length, error) {
	switch strings.ToLower(str) {
	case "", "auto":
		return chartkit.Auto, nil
	default:
		v, err := cast.ToFloat64E(str)
		if err != nil || v < 0 {
			return chartkit.Auto, invalid(field, str, err)
		}
		return chartkit.Constant(v), nil
	}
}

func parseRadius(field, str string) (*chartkit.Radius, error) {
	switch strings.ToLower(str) {
	case "":
		return nil, nil
	case "auto":
		return chartkit.Ref(chartkit.AutoRadius), nil
	case "proportional":
		return chartkit.Ref(chartkit.ProportionalRadius), nil
	case "inverse", "inversely-proportional":
		return chartkit.Ref(chartkit.InverselyProportionalRadius), nil
	default:
		v, err := cast.ToFloat64E(str)
		if err != nil || v < 0 {
			return nil, invalid(field, str, err)
		}
		return chartkit.Ref(chartkit.ConstantRadius(v)), nil
	}
}

func parseOrientation(field, str string) (chartkit.Orientation, error) {
	switch strings.ToLower(str) {
	case "", "horizontal":
		return chartkit.OrientHorizontal, nil
	case "vertical":
		return chartkit.OrientVertical, nil
	default:
		return chartkit.OrientHorizontal, invalid(field, str, nil)
	}
}
