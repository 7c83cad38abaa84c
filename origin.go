package chartkit

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type MarkKind int

const (
	MarkLine MarkKind = iota
	MarkTic
	MarkPositiveTic
)

// OriginMark is drawn at the origin of an axis. Tic lengths are expressed in
// steps of the grid of the other axis.
type OriginMark struct {
	Kind   MarkKind
	Length float64
	Width  float64
	Color  *color.RGBA
}

func LineMark(width float64) *OriginMark {
	return &OriginMark{
		Kind:  MarkLine,
		Width: width,
	}
}

func TicMark(length, width float64) *OriginMark {
	return &OriginMark{
		Kind:   MarkTic,
		Length: length,
		Width:  width,
	}
}

func PositiveTicMark(length, width float64) *OriginMark {
	return &OriginMark{
		Kind:   MarkPositiveTic,
		Length: length,
		Width:  width,
	}
}

func (m OriginMark) GetColor() color.RGBA {
	if m.Color != nil {
		return *m.Color
	}
	return colornames.Black
}

type LineSegment struct {
	From  Pos
	To    Pos
	Width float64
	Color color.RGBA
}

func (s LineSegment) IsValid() bool {
	return s.From.IsValid() && s.To.IsValid()
}

// Origins computes the marks of both axis origins. A mark is omitted when
// it is nil or when its origin is not visible.
type Origins struct {
	XMark *OriginMark
	YMark *OriginMark
	XGrid *Grid
	YGrid *Grid
}

func DefaultOrigins() Origins {
	return Origins{
		XMark: LineMark(1),
		YMark: LineMark(1),
	}
}

// XOrigin returns the vertical mark at the x origin.
func (o Origins) XOrigin(ll LinearLayout) (LineSegment, bool) {
	if o.XMark == nil {
		return LineSegment{}, false
	}
	x := ll.XGridOrigin(o.XGrid)
	if !ll.IsVisibleX(x) {
		return LineSegment{}, false
	}
	var (
		lx  = ll.XInLayout(x)
		y   = ll.YGridOrigin(o.YGrid)
		lo  = ll.Frame.MinY()
		hi  = ll.Frame.MaxY()
		tic float64
	)
	if o.YGrid != nil {
		tic = o.XMark.Length * o.YGrid.Spacing
	}
	switch {
	case o.XMark.Kind == MarkLine || o.YGrid == nil:
	case o.XMark.Kind == MarkTic:
		lo, hi = ll.YInLayout(y-tic), ll.YInLayout(y+tic)
	case o.XMark.Kind == MarkPositiveTic:
		lo, hi = ll.YInLayout(y), ll.YInLayout(y+tic)
	}
	seg := LineSegment{
		From:  NewPos(lx, lo),
		To:    NewPos(lx, hi),
		Width: o.XMark.Width,
		Color: o.XMark.GetColor(),
	}
	return seg, seg.IsValid()
}

// YOrigin returns the horizontal mark at the y origin.
func (o Origins) YOrigin(ll LinearLayout) (LineSegment, bool) {
	if o.YMark == nil {
		return LineSegment{}, false
	}
	y := ll.YGridOrigin(o.YGrid)
	if !ll.IsVisibleY(y) {
		return LineSegment{}, false
	}
	var (
		ly  = ll.YInLayout(y)
		x   = ll.XGridOrigin(o.XGrid)
		lo  = ll.Frame.MinX()
		hi  = ll.Frame.MaxX()
		tic float64
	)
	if o.XGrid != nil {
		tic = o.YMark.Length * o.XGrid.Spacing
	}
	switch {
	case o.YMark.Kind == MarkLine || o.XGrid == nil:
	case o.YMark.Kind == MarkTic:
		lo, hi = ll.XInLayout(x-tic), ll.XInLayout(x+tic)
	case o.YMark.Kind == MarkPositiveTic:
		lo, hi = ll.XInLayout(x), ll.XInLayout(x+tic)
	}
	seg := LineSegment{
		From:  NewPos(lo, ly),
		To:    NewPos(hi, ly),
		Width: o.YMark.Width,
		Color: o.YMark.GetColor(),
	}
	return seg, seg.IsValid()
}
