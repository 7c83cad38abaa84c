package chartkit

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf8"
)

type Alignment int

const (
	AlignTop Alignment = 1 << iota
	AlignBottom
	AlignLeading
	AlignTrailing

	AlignCenter Alignment = 0
)

const (
	DefaultFontSize   = 12.0
	DefaultSwatchSize = 16.0
	legendPadding     = 8.0
	legendRowSpacing  = 2.0
	legendColSpacing  = 4.0
	legendSwatchGap   = 4.0
	labelOffset       = 12.0
	labelHeight       = 24.0
	narrowSweep       = 10.0
	narrowLabelRatio  = 1.25
	wideLabelRatio    = 1.12
)

// NameFunc maps a category to its name in the legend. The second returned
// value is false when the category has no name.
type NameFunc func(Value) (string, bool)

type LegendStyle struct {
	Position    Alignment
	Orientation Orientation
	Swatch      *Size
	FontSize    float64
	Color       *color.RGBA
	Names       NameFunc
}

func DefaultLegendStyle() LegendStyle {
	return LegendStyle{
		Position:    AlignLeading,
		Orientation: OrientVertical,
		Swatch:      Ref(NewSize(DefaultSwatchSize, DefaultSwatchSize)),
		FontSize:    DefaultFontSize,
	}
}

func (s LegendStyle) Name(v Value) (string, bool) {
	if s.Names != nil {
		return s.Names(v)
	}
	switch id := v.ID.(type) {
	case nil:
		return "", false
	case string:
		return id, true
	case fmt.Stringer:
		return id.String(), true
	default:
		return fmt.Sprint(id), true
	}
}

func (s LegendStyle) getFontSize() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

type LegendEntry struct {
	Value
	Name    string
	HasName bool
	Fill    color.RGBA
	Stroke  color.RGBA
	Swatch  Rect
	Label   Pos
	Box     Rect
}

func (s LegendStyle) entries(values []Value, style CategorizedStyle) []LegendEntry {
	list := make([]LegendEntry, len(values))
	for i, v := range values {
		e := LegendEntry{
			Value:  v,
			Fill:   style.Fill(v),
			Stroke: style.Stroke(v),
			Swatch: InvalidRect,
			Label:  InvalidPos,
			Box:    InvalidRect,
		}
		e.Name, e.HasName = s.Name(v)
		list[i] = e
	}
	return list
}

func (s LegendStyle) rowSize(e LegendEntry) Size {
	var (
		font = s.getFontSize()
		sz   = NewSize(0, font*1.4)
	)
	if s.Swatch != nil {
		sz.W = s.Swatch.W
		sz.H = math.Max(sz.H, s.Swatch.H)
	}
	if e.HasName {
		if sz.W > 0 {
			sz.W += legendSwatchGap
		}
		sz.W += float64(utf8.RuneCountInString(e.Name)) * font * 0.4
	}
	return sz
}

// StandAlone lays out the legend of every category as a list anchored to
// the frame.
func (s LegendStyle) StandAlone(src Source, style CategorizedStyle, frame Rect) []LegendEntry {
	var (
		list  = s.entries(src.Values(), style)
		sizes = make([]Size, len(list))
		block Size
	)
	if len(list) == 0 {
		return nil
	}
	spacing := legendRowSpacing
	if s.Orientation == OrientHorizontal {
		spacing = legendColSpacing
	}
	for i := range list {
		sizes[i] = s.rowSize(list[i])
		if s.Orientation == OrientHorizontal {
			block.W += sizes[i].W
			block.H = math.Max(block.H, sizes[i].H)
		} else {
			block.H += sizes[i].H
			block.W = math.Max(block.W, sizes[i].W)
		}
	}
	gaps := spacing * float64(len(list)-1)
	if s.Orientation == OrientHorizontal {
		block.W += gaps
	} else {
		block.H += gaps
	}
	var (
		left = frame.MinX() + (frame.W-block.W)/2
		top  = frame.MinY() + (frame.H-block.H)/2
	)
	switch {
	case s.Position&AlignLeading != 0:
		left = frame.MinX() + legendPadding
	case s.Position&AlignTrailing != 0:
		left = frame.MaxX() - legendPadding - block.W
	}
	switch {
	case s.Position&AlignTop != 0:
		top = frame.MinY() + legendPadding
	case s.Position&AlignBottom != 0:
		top = frame.MaxY() - legendPadding - block.H
	}
	for i := range list {
		var (
			row = sizes[i]
			x   = left
			mid = top + row.H/2
		)
		if s.Swatch != nil {
			list[i].Swatch = NewRect(x, mid-s.Swatch.H/2, s.Swatch.W, s.Swatch.H)
			x += s.Swatch.W + legendSwatchGap
		}
		if list[i].HasName {
			list[i].Label = NewPos(x, mid)
		}
		if s.Orientation == OrientHorizontal {
			left += row.W + spacing
		} else {
			top += row.H + spacing
		}
	}
	return list
}

// InlineRadial places the name of each category outside of its wedge, on
// its bisector.
func (s LegendStyle) InlineRadial(layout RadialLayout, style CategorizedStyle) []LegendEntry {
	values := make([]Value, len(layout.Wedges))
	for i := range layout.Wedges {
		values[i] = layout.Wedges[i].Value
	}
	list := s.entries(values, style)
	for i, w := range layout.Wedges {
		if !w.IsValid() || !list[i].HasName {
			continue
		}
		ratio := wideLabelRatio
		if w.Sweep() <= narrowSweep {
			ratio = narrowLabelRatio
		}
		list[i].Label = w.BisectorPoint(w.Outer * ratio)
	}
	return list
}

// InlineBars places the name of each category below its bar.
func (s LegendStyle) InlineBars(layout BarLayout, style CategorizedStyle) []LegendEntry {
	values := make([]Value, len(layout.Bars))
	for i := range layout.Bars {
		values[i] = layout.Bars[i].Value
	}
	list := s.entries(values, style)
	for i, b := range layout.Bars {
		if !b.IsValid() || !list[i].HasName {
			continue
		}
		list[i].Label = NewPos(b.Rect.MidX(), b.Rect.MaxY()+labelOffset)
		list[i].Box = NewRect(b.Rect.MinX(), list[i].Label.Y-labelHeight/2, b.Rect.W, labelHeight)
	}
	return list
}
