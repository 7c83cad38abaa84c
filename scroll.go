package chartkit

import (
	"math"
)

// EdgeTapWidth is the width of the bands at both ends of a frame where a tap
// jumps to the start or the end of the data.
const EdgeTapWidth = 16.0

// MaxOverscroll gives how far the offset can go beyond [0, 1] while dragging.
func MaxOverscroll(frameWidth, maxScrollOffset float64) float64 {
	half := frameWidth / 2
	over := safeDiv(half, math.Max(half, maxScrollOffset))
	if math.IsNaN(over) {
		return 0
	}
	return over
}

func ClampScroll(offset, overscroll float64) float64 {
	if math.IsNaN(offset) {
		return 1
	}
	return math.Min(math.Max(-overscroll, offset), 1+overscroll)
}

// DragScroll computes the offset while dragging by translation points from
// an offset captured when the drag started.
func DragScroll(start, translation, maxScrollOffset, overscroll float64) float64 {
	delta := safeDiv(translation, maxScrollOffset)
	if math.IsNaN(delta) {
		delta = 0
	}
	return ClampScroll(start-delta, overscroll)
}

// SettleScroll brings back an overscrolled offset into [0, 1].
func SettleScroll(offset float64) float64 {
	return ClampScroll(offset, 0)
}

// EdgeTapScroll handles a tap at x in frame: near the leading edge it gives
// 0, near the trailing edge 1. Otherwise offset is returned unchanged.
func EdgeTapScroll(frame Rect, x, offset float64) float64 {
	switch {
	case x >= frame.MinX() && x <= frame.MinX()+EdgeTapWidth:
		return 0
	case x >= frame.MaxX()-EdgeTapWidth:
		return 1
	default:
		return offset
	}
}

// MiniMap gives the geometry of the thumb of a small chart showing the whole
// series over which a window of width [Start, End] is scrolled.
type MiniMap struct {
	Layout LineLayout
	Range  Window
	Offset float64
}

func NewMiniMap(src Source, frame Rect, insets Insets, rg Window, offset float64) MiniMap {
	return MiniMap{
		Layout: NewLineLayout(src, frame, insets, nil, 1),
		Range:  rg,
		Offset: offset,
	}
}

func (m MiniMap) ThumbWidth() float64 {
	return m.Layout.XInLayout(m.Range.End) - m.Layout.XInLayout(m.Range.Start)
}

func (m MiniMap) MaxScrollOffset() float64 {
	var (
		abs = m.Layout.Absolute
		hi  = m.Layout.XInLayout(math.Max(abs.End, m.Range.End))
		lo  = m.Layout.XInLayout(math.Min(abs.Start, m.Range.Start))
	)
	return hi - lo - m.ThumbWidth()
}

func (m MiniMap) ThumbMinX() float64 {
	max := m.MaxScrollOffset()
	return m.Layout.XInLayout(m.Range.Start) - (max - m.Offset*max)
}

func (m MiniMap) Thumb() Rect {
	return NewRect(m.ThumbMinX(), m.Layout.Frame.MinY(), m.ThumbWidth(), m.Layout.Frame.H)
}

// Drag moves the thumb by translation points from start.
func (m MiniMap) Drag(start, translation float64) float64 {
	delta := safeDiv(translation, m.MaxScrollOffset())
	if math.IsNaN(delta) {
		return start
	}
	return start + delta
}

// Tap centers the thumb on x.
func (m MiniMap) Tap(x float64) float64 {
	offset := safeDiv(x-m.ThumbWidth()/2, m.MaxScrollOffset())
	if math.IsNaN(offset) {
		return m.Offset
	}
	return SettleScroll(offset)
}
