package chartkit

import (
	"image/color"
	"sort"
)

const (
	DefaultStrokeWidth     = 1.0
	DefaultHighlightRadius = 3.0
	DefaultHighlightWidth  = 0.5
	DefaultLineWidth       = 2.0
	DefaultLineEdgeWidth   = 1.0
	DefaultRangeOpacity    = 0.2
	DefaultRangeWidth      = 0.5
)

func Ref[T any](v T) *T {
	return &v
}

type SegmentStyle struct {
	Fill        *color.RGBA
	Stroke      *color.RGBA
	StrokeWidth *float64
	ZIndex      *int
}

func (s SegmentStyle) merge(other SegmentStyle) SegmentStyle {
	if s.Fill == nil {
		s.Fill = other.Fill
	}
	if s.Stroke == nil {
		s.Stroke = other.Stroke
	}
	if s.StrokeWidth == nil {
		s.StrokeWidth = other.StrokeWidth
	}
	if s.ZIndex == nil {
		s.ZIndex = other.ZIndex
	}
	return s
}

// CategorizedStyle resolves the attributes of categorized data. Lookups try
// the style registered for the id of a value first, then the default style,
// and finally a built in constant.
type CategorizedStyle struct {
	Colors   ColorSet
	Default  SegmentStyle
	Segments map[any]SegmentStyle
}

func DefaultCategorizedStyle() CategorizedStyle {
	return CategorizedStyle{
		Colors: BasicColorSet{},
	}
}

// Set returns a copy of the style where the given style is merged onto the
// one already registered for id.
func (s CategorizedStyle) Set(id any, style SegmentStyle) CategorizedStyle {
	s.Segments = cloneMap(s.Segments)
	s.Segments[id] = style.merge(s.Segments[id])
	return s
}

func (s CategorizedStyle) Fill(v Value) color.RGBA {
	if c := s.lookup(v).Fill; c != nil {
		return *c
	}
	if s.Default.Fill != nil {
		return *s.Default.Fill
	}
	if s.Colors != nil {
		return s.Colors.ColorAt(v.Index)
	}
	return DefaultFill
}

func (s CategorizedStyle) Stroke(v Value) color.RGBA {
	if c := s.lookup(v).Stroke; c != nil {
		return *c
	}
	if s.Default.Stroke != nil {
		return *s.Default.Stroke
	}
	return DefaultStroke
}

func (s CategorizedStyle) StrokeWidth(v Value) float64 {
	if w := s.lookup(v).StrokeWidth; w != nil {
		return *w
	}
	if s.Default.StrokeWidth != nil {
		return *s.Default.StrokeWidth
	}
	return DefaultStrokeWidth
}

func (s CategorizedStyle) ZIndex(v Value) int {
	if z := s.lookup(v).ZIndex; z != nil {
		return *z
	}
	if s.Default.ZIndex != nil {
		return *s.Default.ZIndex
	}
	return 0
}

// ZOrder sorts values by z-index. Values with the same z-index keep their
// relative order.
func (s CategorizedStyle) ZOrder(values []Value) []Value {
	list := append([]Value(nil), values...)
	sort.SliceStable(list, func(i, j int) bool {
		return s.ZIndex(list[i]) < s.ZIndex(list[j])
	})
	return list
}

func (s CategorizedStyle) lookup(v Value) SegmentStyle {
	if v.ID == nil || s.Segments == nil {
		return SegmentStyle{}
	}
	return s.Segments[v.ID]
}

type Orientation int

const (
	OrientHorizontal Orientation = iota
	OrientVertical
)

func (o Orientation) String() string {
	if o == OrientVertical {
		return "vertical"
	}
	return "horizontal"
}

// Length is either computed by the layout (the zero value) or constant.
type Length struct {
	fixed bool
	value float64
}

var Auto Length

func Constant(v float64) Length {
	return Length{
		fixed: true,
		value: v,
	}
}

func (n Length) IsAuto() bool {
	return !n.fixed
}

func (n Length) Value() float64 {
	if n.IsAuto() {
		return nan
	}
	return n.value
}

type BarStyle struct {
	Orientation Orientation
	Spacing     Length
	Default     *Length
	Widths      map[any]Length
}

func (s BarStyle) SetWidth(id any, width Length) BarStyle {
	s.Widths = cloneMap(s.Widths)
	s.Widths[id] = width
	return s
}

func (s BarStyle) Width(v Value) Length {
	if w, ok := s.Widths[v.ID]; ok && v.ID != nil {
		return w
	}
	if s.Default != nil {
		return *s.Default
	}
	return Auto
}

type RadiusPolicy int

const (
	RadiusAuto RadiusPolicy = iota
	RadiusConstant
	RadiusProportional
	RadiusInverselyProportional
)

type Radius struct {
	Policy RadiusPolicy
	Value  float64
}

func ConstantRadius(r float64) Radius {
	return Radius{
		Policy: RadiusConstant,
		Value:  r,
	}
}

var (
	AutoRadius                  = Radius{Policy: RadiusAuto}
	ProportionalRadius          = Radius{Policy: RadiusProportional}
	InverselyProportionalRadius = Radius{Policy: RadiusInverselyProportional}
)

type RadialSegmentStyle struct {
	Projection *float64
	Outer      *Radius
	Inner      *Radius
}

func (s RadialSegmentStyle) merge(other RadialSegmentStyle) RadialSegmentStyle {
	if s.Projection == nil {
		s.Projection = other.Projection
	}
	if s.Outer == nil {
		s.Outer = other.Outer
	}
	if s.Inner == nil {
		s.Inner = other.Inner
	}
	return s
}

type RadialStyle struct {
	Default  RadialSegmentStyle
	Segments map[any]RadialSegmentStyle
}

// PieStyle is a radial style where the wedges have no hole.
func PieStyle() RadialStyle {
	var s RadialStyle
	s.Default.Inner = Ref(ConstantRadius(0))
	return s
}

func (s RadialStyle) Set(id any, style RadialSegmentStyle) RadialStyle {
	s.Segments = cloneMap(s.Segments)
	s.Segments[id] = style.merge(s.Segments[id])
	return s
}

func (s RadialStyle) Projection(v Value) float64 {
	if p := s.lookup(v).Projection; p != nil {
		return *p
	}
	if s.Default.Projection != nil {
		return *s.Default.Projection
	}
	return 0
}

func (s RadialStyle) OuterRadius(v Value) Radius {
	if r := s.lookup(v).Outer; r != nil {
		return *r
	}
	if s.Default.Outer != nil {
		return *s.Default.Outer
	}
	return AutoRadius
}

func (s RadialStyle) InnerRadius(v Value) Radius {
	if r := s.lookup(v).Inner; r != nil {
		return *r
	}
	if s.Default.Inner != nil {
		return *s.Default.Inner
	}
	return AutoRadius
}

func (s RadialStyle) lookup(v Value) RadialSegmentStyle {
	if v.ID == nil || s.Segments == nil {
		return RadialSegmentStyle{}
	}
	return s.Segments[v.ID]
}

type HighlightStyle struct {
	Fill        *color.RGBA
	Stroke      *color.RGBA
	StrokeWidth *float64
	Radius      *float64
}

func DefaultHighlightStyle() HighlightStyle {
	return HighlightStyle{
		Fill: Ref(DefaultHighlight),
	}
}

func (s HighlightStyle) GetRadius() float64 {
	if s.Radius != nil {
		return *s.Radius
	}
	return DefaultHighlightRadius
}

func (s HighlightStyle) GetStrokeWidth() float64 {
	if s.StrokeWidth != nil {
		return *s.StrokeWidth
	}
	return DefaultHighlightWidth
}

type LineStyle struct {
	Color     color.RGBA
	Width     float64
	Fill      *color.RGBA
	Edge      *color.RGBA
	EdgeWidth float64
}

func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color:     DefaultFill,
		Width:     DefaultLineWidth,
		EdgeWidth: DefaultLineEdgeWidth,
	}
}

type RangeStyle struct {
	Fill        *color.RGBA
	Opacity     float64
	Stroke      *color.RGBA
	StrokeWidth float64
}

func DefaultRangeStyle() RangeStyle {
	return RangeStyle{
		Fill:        Ref(DefaultFill),
		Opacity:     DefaultRangeOpacity,
		StrokeWidth: DefaultRangeWidth,
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m)+1)
	for k, v := range m {
		c[k] = v
	}
	return c
}
