package chartkit

import (
	"github.com/midbel/slices"
)

type SelectKind int

const (
	SelectAll SelectKind = iota
	SelectFirst
	SelectLast
	SelectEach
)

// Selection tells which data points a decoration applies to.
type Selection struct {
	Kind   SelectKind
	Values []Value
}

var (
	All   = Selection{Kind: SelectAll}
	First = Selection{Kind: SelectFirst}
	Last  = Selection{Kind: SelectLast}
)

func Each(values ...Value) Selection {
	return Selection{
		Kind:   SelectEach,
		Values: values,
	}
}

// Decorate returns the points of the segment in the selection. First and last
// only match on the segments holding the first or last datum of the series.
func (s Segment) Decorate(sel Selection) []Pos {
	if len(s.Points) == 0 {
		return nil
	}
	switch sel.Kind {
	case SelectAll:
		return append([]Pos(nil), s.Points...)
	case SelectFirst:
		if s.Position.Has(PositionFirst) {
			return []Pos{slices.Fst(s.Points)}
		}
	case SelectLast:
		if s.Position.Has(PositionLast) {
			return []Pos{slices.Lst(s.Points)}
		}
	case SelectEach:
		return s.PointsFor(sel.Values)
	}
	return nil
}

// Decorate returns the points of the visible segments in the selection.
func (l LineLayout) Decorate(sel Selection) []Pos {
	var list []Pos
	for _, s := range l.VisibleSegments() {
		for _, p := range s.Decorate(sel) {
			if n := len(list); n > 0 && list[n-1] == p {
				continue
			}
			list = append(list, p)
		}
	}
	return list
}

// Decorate returns the visible points in the selection. First and last only
// match when the start or the end of the series is visible.
func (ll LinearLayout) Decorate(sel Selection) []Pos {
	switch sel.Kind {
	case SelectAll:
		return ll.VisiblePoints()
	case SelectFirst:
		if len(ll.points) > 0 && ll.IsVisibleX(ll.Absolute.Start) {
			return []Pos{slices.Fst(ll.points)}
		}
	case SelectLast:
		if len(ll.points) > 0 && ll.IsVisibleX(ll.Absolute.End) {
			return []Pos{slices.Lst(ll.points)}
		}
	case SelectEach:
		var list []Pos
		for _, v := range sel.Values {
			if p, ok := ll.VisiblePoint(v); ok {
				list = append(list, p)
			}
		}
		return list
	}
	return nil
}

type Highlight struct {
	Center Pos
	Rect   Rect
	Style  HighlightStyle
}

// Highlights gives the circles drawn on the decorated points.
func Highlights(points []Pos, style HighlightStyle) []Highlight {
	var (
		radius = style.GetRadius()
		list   = make([]Highlight, 0, len(points))
	)
	for _, p := range points {
		if !p.IsValid() {
			continue
		}
		list = append(list, Highlight{
			Center: p,
			Rect:   NewRect(p.X-radius, p.Y-radius, radius*2, radius*2),
			Style:  style,
		})
	}
	return list
}

type MarkerKind int

const (
	MarkerAxisTic MarkerKind = iota
	MarkerToPoint
	MarkerThruRange
)

const DefaultMarkerLength = 5

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

func (c LineCap) String() string {
	if c == CapRound {
		return "round"
	}
	return "butt"
}

// AxisMarker links decorated points to an axis. Length is the size of the tic
// for MarkerAxisTic and how far the line goes beyond the point for
// MarkerToPoint.
type AxisMarker struct {
	Kind   MarkerKind
	Length float64
}

func AxisTic(length float64) AxisMarker {
	return AxisMarker{
		Kind:   MarkerAxisTic,
		Length: length,
	}
}

func ToPoint(extending float64) AxisMarker {
	return AxisMarker{
		Kind:   MarkerToPoint,
		Length: extending,
	}
}

var ThruRange = AxisMarker{Kind: MarkerThruRange}

func (m AxisMarker) Cap() LineCap {
	if m.Kind == MarkerToPoint {
		return CapRound
	}
	return CapButt
}

type Marker struct {
	From Pos
	To   Pos
	Cap  LineCap
}

// XMarkers draws vertical markers from the bottom of the frame.
func (m AxisMarker) XMarkers(frame Rect, points []Pos) []Marker {
	var list []Marker
	for _, p := range points {
		if !p.IsValid() {
			continue
		}
		to := NewPos(p.X, frame.MinY())
		switch m.Kind {
		case MarkerAxisTic:
			to.Y = frame.MaxY() - m.Length
		case MarkerToPoint:
			to.Y = p.Y + m.Length
		}
		list = append(list, Marker{
			From: NewPos(p.X, frame.MaxY()),
			To:   to,
			Cap:  m.Cap(),
		})
	}
	return list
}

// YMarkers draws horizontal markers from the leading edge.
func (m AxisMarker) YMarkers(frame Rect, points []Pos) []Marker {
	var list []Marker
	for _, p := range points {
		if !p.IsValid() {
			continue
		}
		to := NewPos(frame.MaxX(), p.Y)
		switch m.Kind {
		case MarkerAxisTic:
			to.X = frame.MinX() + m.Length
		case MarkerToPoint:
			to.X = p.X + m.Length
		}
		list = append(list, Marker{
			From: NewPos(frame.MinX(), p.Y),
			To:   to,
			Cap:  m.Cap(),
		})
	}
	return list
}
