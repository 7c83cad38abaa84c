package chartkit

import (
	"math"
)

// RangeEpsilon is removed from the upper bound of half open ranges so that
// they are drawn apart from a closed range ending on the same value.
const RangeEpsilon = 0.01

type Range struct {
	Lower *float64
	Upper *float64
}

func ClosedRange(lo, hi float64) Range {
	return Range{
		Lower: Ref(lo),
		Upper: Ref(hi),
	}
}

func HalfOpenRange(lo, hi float64) Range {
	return Range{
		Lower: Ref(lo),
		Upper: Ref(hi - RangeEpsilon),
	}
}

func RangeFrom(lo float64) Range {
	return Range{
		Lower: Ref(lo),
	}
}

func RangeUpTo(hi float64) Range {
	return Range{
		Upper: Ref(hi - RangeEpsilon),
	}
}

func RangeThrough(hi float64) Range {
	return Range{
		Upper: Ref(hi),
	}
}

// Band is the area covered by a range. Edges are only set for the bounds
// given to the range.
type Band struct {
	Rect  Rect
	Edges []LineSegment
}

func (b Band) IsValid() bool {
	return b.Rect.IsValid() && b.Rect.Area() > 0
}

// XBand returns the vertical band of the range clipped to the frame. Missing
// bounds extend to the edges of the frame.
func (ll LinearLayout) XBand(r Range, style RangeStyle) Band {
	var (
		frame = ll.Frame
		lo    = frame.MinX()
		hi    = frame.MaxX()
	)
	if r.Lower != nil {
		lo = clamp(ll.XInLayout(*r.Lower), frame.MinX(), frame.MaxX())
	}
	if r.Upper != nil {
		hi = clamp(ll.XInLayout(*r.Upper), frame.MinX(), frame.MaxX())
	}
	var b Band
	b.Rect = NewRect(lo, frame.MinY(), hi-lo, frame.H).Standardize()
	if style.Stroke == nil {
		return b
	}
	edge := func(x float64) LineSegment {
		return LineSegment{
			From:  NewPos(x, frame.MinY()),
			To:    NewPos(x, frame.MaxY()),
			Width: style.StrokeWidth,
			Color: *style.Stroke,
		}
	}
	if r.Lower != nil {
		b.Edges = append(b.Edges, edge(b.Rect.MinX()))
	}
	if r.Upper != nil {
		b.Edges = append(b.Edges, edge(b.Rect.MaxX()))
	}
	return b
}

// YBand returns the horizontal band of the range clipped to the frame.
func (ll LinearLayout) YBand(r Range, style RangeStyle) Band {
	var (
		frame = ll.Frame
		lo    = frame.MaxY()
		hi    = frame.MinY()
	)
	if r.Lower != nil {
		lo = clamp(ll.YInLayout(*r.Lower), frame.MinY(), frame.MaxY())
	}
	if r.Upper != nil {
		hi = clamp(ll.YInLayout(*r.Upper), frame.MinY(), frame.MaxY())
	}
	var b Band
	b.Rect = NewRect(frame.MinX(), lo, frame.W, hi-lo).Standardize()
	if style.Stroke == nil {
		return b
	}
	edge := func(y float64) LineSegment {
		return LineSegment{
			From:  NewPos(frame.MinX(), y),
			To:    NewPos(frame.MaxX(), y),
			Width: style.StrokeWidth,
			Color: *style.Stroke,
		}
	}
	if r.Lower != nil {
		b.Edges = append(b.Edges, edge(b.Rect.MaxY()))
	}
	if r.Upper != nil {
		b.Edges = append(b.Edges, edge(b.Rect.MinY()))
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Min(math.Max(v, lo), hi)
}
