package chartkit

import (
	"math"

	"github.com/midbel/slices"
)

const PointsPerSegment = 500

// scrollWindow is the share of the frame width that stays on screen when the
// offset is 0.
const scrollWindow = 0.75

type Position int

const (
	PositionFirst Position = 1 << iota
	PositionLast
	PositionMiddle
)

func (p Position) Has(other Position) bool {
	return p&other == other
}

func (p Position) String() string {
	switch {
	case p.Has(PositionFirst | PositionLast):
		return "single"
	case p.Has(PositionFirst):
		return "first"
	case p.Has(PositionLast):
		return "last"
	case p.Has(PositionMiddle):
		return "middle"
	default:
		return "none"
	}
}

// Segment is a chunk of an ordered series. Relative points are computed once
// from the data bounding box of the chunk. Only Rect and Points depend on
// the layout.
type Segment struct {
	Data     []Value
	Abs      Rect
	Relative []Pos
	Position Position

	Rect    Rect
	Points  []Pos
	Visible bool
}

// Tile splits values in segments of PointsPerSegment values. Consecutive
// segments share their boundary value.
func Tile(values []Value, bounds Bounds) []Segment {
	var (
		list []Segment
		size = len(values)
	)
	for i := 0; i < size; i += PointsPerSegment {
		thru := i + PointsPerSegment + 1
		if thru > size {
			thru = size
		}
		list = append(list, makeSegment(values[i:thru], bounds, i == 0, thru == size))
	}
	return list
}

func makeSegment(data []Value, bounds Bounds, first, last bool) Segment {
	var (
		fst = slices.Fst(data)
		lst = slices.Lst(data)
		seg Segment
	)
	seg.Data = append([]Value(nil), data...)
	seg.Abs = NewRect(fst.X, bounds.Min, lst.X-fst.X, bounds.Height())
	seg.Relative = make([]Pos, len(data))
	for i, v := range data {
		seg.Relative[i] = NewPos(
			safeDiv(v.X-seg.Abs.X, seg.Abs.W),
			1-safeDiv(v.Y-seg.Abs.Y, seg.Abs.H),
		)
	}
	if first {
		seg.Position |= PositionFirst
	}
	if last {
		seg.Position |= PositionLast
	}
	if !first && !last {
		seg.Position |= PositionMiddle
	}
	return seg
}

func (s Segment) StartX() float64 {
	if len(s.Data) == 0 {
		return nan
	}
	return slices.Fst(s.Data).X
}

func (s Segment) EndX() float64 {
	if len(s.Data) == 0 {
		return nan
	}
	return slices.Lst(s.Data).X
}

func (s Segment) IsValid() bool {
	return len(s.Data) > 0 && s.Rect.IsValid()
}

func (s Segment) IsVisibleX(x float64) bool {
	return closedContains(s.StartX(), s.EndX(), x)
}

func (s Segment) XInSegment(x float64) float64 {
	ratio := safeDiv(x-s.StartX(), s.EndX()-s.StartX())
	return s.Rect.W*ratio + s.Rect.MinX()
}

// PointsFor returns the positions of the data of the segment equal to one
// of the given values.
func (s Segment) PointsFor(values []Value) []Pos {
	var list []Pos
	for i := range s.Data {
		for _, v := range values {
			if s.Data[i].Equal(v) {
				list = append(list, s.Points[i])
				break
			}
		}
	}
	return list
}

// rescale computes the layout rectangle of the segment and its points. The
// relative points are reused as is.
func (s Segment) rescale(ll LinearLayout) Segment {
	var (
		fst = ll.XInLayout(s.StartX())
		lst = ll.XInLayout(s.EndX())
	)
	s.Rect = NewRect(fst, ll.YInLayout(ll.Absolute.Min), lst-fst, ll.InsetFrame().H).Standardize()
	s.Points = make([]Pos, len(s.Relative))
	for i, r := range s.Relative {
		s.Points[i] = NewPos(
			r.X*s.Rect.W+s.Rect.MinX(),
			r.Y*s.Rect.H+s.Rect.MinY()-s.Rect.H,
		)
	}
	win := ll.Window()
	s.Visible = s.StartX() <= win.End && s.EndX() >= win.Start
	return s
}

// LineLayout lays out an ordered series that can be scrolled horizontally.
// An offset of 1 shows the most recent data.
type LineLayout struct {
	LinearLayout
	Offset          float64
	MaxScrollOffset float64
	Segments        []Segment

	base *Window
}

func NewLineLayout(src Source, frame Rect, insets Insets, win *Window, offset float64) LineLayout {
	if src.Len() == 0 {
		return LineLayout{
			LinearLayout: emptyLinearLayout(),
			Offset:       offset,
		}
	}
	bounds := absoluteBounds(src)
	line := LineLayout{
		Segments: Tile(src.Values(), bounds),
		base:     win,
	}
	return line.layout(src, frame, insets, offset)
}

// Scroll returns the layout for a new offset. Segments are rescaled, not
// computed again.
func (l LineLayout) Scroll(src Source, offset float64) LineLayout {
	if src.Len() == 0 {
		l.Offset = offset
		return l
	}
	return l.layout(src, l.Frame, l.Insets, offset)
}

func (l LineLayout) layout(src Source, frame Rect, insets Insets, offset float64) LineLayout {
	var (
		abs   = absoluteBounds(src)
		start = abs.Start
		end   = abs.End
		width = frame.Inset(insets).W
	)
	if l.base != nil {
		start, end = l.base.Start, l.base.End
	}
	unit := safeDiv(width, end-start)
	l.MaxScrollOffset = abs.Width()*unit - width*scrollWindow
	l.Offset = ClampScroll(offset, MaxOverscroll(frame.W, l.MaxScrollOffset))

	scroll := safeDiv(l.MaxScrollOffset-l.Offset*l.MaxScrollOffset, unit)
	if math.IsNaN(scroll) {
		scroll = 0
	}
	l.LinearLayout = NewLinearLayout(src, frame, insets, NewWindow(start-scroll, end-scroll))

	segments := make([]Segment, len(l.Segments))
	for i := range l.Segments {
		segments[i] = l.Segments[i].rescale(l.LinearLayout)
	}
	l.Segments = segments
	return l
}

func (l LineLayout) VisibleSegments() []Segment {
	var list []Segment
	for _, s := range l.Segments {
		if s.Visible {
			list = append(list, s)
		}
	}
	return list
}

// Points gives the layout position of every datum, the boundary values
// shared by two segments being listed once.
func (l LineLayout) Points() []Pos {
	var list []Pos
	for i, s := range l.Segments {
		pts := s.Points
		if i > 0 && len(pts) > 0 {
			pts = slices.Rest(pts)
		}
		list = append(list, pts...)
	}
	return list
}
