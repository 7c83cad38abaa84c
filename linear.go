package chartkit

import (
	"math"
)

// Source is the read only view of a series used by the layouts.
type Source interface {
	Len() int
	IsOrdered() bool
	First() Value
	Last() Value
	Minimum() Value
	Maximum() Value
	Values() []Value
}

type Bounds struct {
	Start float64
	End   float64
	Min   float64
	Max   float64
}

func (b Bounds) Width() float64 {
	return b.End - b.Start
}

func (b Bounds) Height() float64 {
	return b.Max - b.Min
}

func (b Bounds) Size() Size {
	return NewSize(b.Width(), b.Height())
}

func (b Bounds) ContainsX(x float64) bool {
	return closedContains(b.Start, b.End, x)
}

func (b Bounds) ContainsY(y float64) bool {
	return closedContains(b.Min, b.Max, y)
}

// absoluteBounds always includes 0 on the y axis.
func absoluteBounds(src Source) Bounds {
	return Bounds{
		Start: src.First().X,
		End:   src.Last().X,
		Min:   math.Min(src.Minimum().Y, 0),
		Max:   math.Max(src.Maximum().Y, 0),
	}
}

// LinearLayout maps data space to layout space for rectangular charts.
type LinearLayout struct {
	Frame    Rect
	Insets   Insets
	Absolute Bounds
	Visible  Bounds
	Origin   Pos

	start  float64
	end    float64
	unitX  float64
	unitY  float64
	points []Pos
}

// Window restricts the x range of a layout. A nil window covers the whole
// series.
type Window struct {
	Start float64
	End   float64
}

func NewWindow(start, end float64) *Window {
	return &Window{
		Start: math.Min(start, end),
		End:   math.Max(start, end),
	}
}

func NewLinearLayout(src Source, frame Rect, insets Insets, win *Window) LinearLayout {
	if src.Len() == 0 {
		return emptyLinearLayout()
	}
	var ll LinearLayout
	ll.Frame = frame
	ll.Insets = insets
	ll.Absolute = absoluteBounds(src)
	ll.start, ll.end = ll.Absolute.Start, ll.Absolute.End
	if win != nil {
		ll.start, ll.end = win.Start, win.End
	}
	ll.setup()
	for _, v := range src.Values() {
		if !v.Valid || !ll.IsVisibleX(v.X) {
			continue
		}
		ll.points = append(ll.points, ll.PointInLayout(v))
	}
	return ll
}

func emptyLinearLayout() LinearLayout {
	return LinearLayout{
		Absolute: Bounds{Start: nan, End: nan, Min: nan, Max: nan},
		Visible:  Bounds{Start: nan, End: nan, Min: nan, Max: nan},
		Origin:   InvalidPos,
		start:    nan,
		end:      nan,
		unitX:    nan,
		unitY:    nan,
	}
}

func (ll *LinearLayout) setup() {
	size := ll.Size()
	ll.unitX = safeDiv(size.W, ll.end-ll.start)
	ll.unitY = safeDiv(size.H, ll.Absolute.Height())
	ll.Visible = Bounds{
		Start: ll.start - safeDiv(ll.Insets.Leading, ll.unitX),
		End:   ll.end + safeDiv(ll.Insets.Trailing, ll.unitX),
		Min:   ll.Absolute.Min - safeDiv(ll.Insets.Bottom, ll.unitY),
		Max:   ll.Absolute.Max + safeDiv(ll.Insets.Top, ll.unitY),
	}
	if ll.Insets.Leading == 0 {
		ll.Visible.Start = ll.start
	}
	if ll.Insets.Trailing == 0 {
		ll.Visible.End = ll.end
	}
	if ll.Insets.Bottom == 0 {
		ll.Visible.Min = ll.Absolute.Min
	}
	if ll.Insets.Top == 0 {
		ll.Visible.Max = ll.Absolute.Max
	}
	ll.Origin = NewPos(ll.XInLayout(0), ll.YInLayout(0))
}

func (ll LinearLayout) InsetFrame() Rect {
	return ll.Frame.Inset(ll.Insets)
}

func (ll LinearLayout) Size() Size {
	return ll.InsetFrame().Size
}

func (ll LinearLayout) UnitX() float64 {
	return ll.unitX
}

func (ll LinearLayout) UnitY() float64 {
	return ll.unitY
}

// Window gives the x range currently mapped onto the inset frame.
func (ll LinearLayout) Window() Window {
	return Window{
		Start: ll.start,
		End:   ll.end,
	}
}

func (ll LinearLayout) XInLayout(x float64) float64 {
	return (x-ll.start)*ll.unitX + ll.InsetFrame().MinX()
}

func (ll LinearLayout) YInLayout(y float64) float64 {
	frame := ll.InsetFrame()
	return frame.H - (y-ll.Absolute.Min)*ll.unitY + frame.MinY()
}

func (ll LinearLayout) XInData(x float64) float64 {
	return safeDiv(x-ll.InsetFrame().MinX(), ll.unitX) + ll.start
}

func (ll LinearLayout) YInData(y float64) float64 {
	frame := ll.InsetFrame()
	return ll.Absolute.Min + safeDiv(frame.H-(y-frame.MinY()), ll.unitY)
}

func (ll LinearLayout) PointInLayout(v Value) Pos {
	return NewPos(ll.XInLayout(v.X), ll.YInLayout(v.Y))
}

func (ll LinearLayout) PointInData(p Pos) Pos {
	return NewPos(ll.XInData(p.X), ll.YInData(p.Y))
}

// VisiblePoint returns the position of v when its x falls in the window.
func (ll LinearLayout) VisiblePoint(v Value) (Pos, bool) {
	if !v.Valid || !ll.IsVisibleX(v.X) {
		return InvalidPos, false
	}
	p := ll.PointInLayout(v)
	return p, p.IsValid()
}

// VisiblePoints gives the layout position of every visible datum.
func (ll LinearLayout) VisiblePoints() []Pos {
	return append([]Pos(nil), ll.points...)
}

func (ll LinearLayout) IsVisibleX(x float64) bool {
	return closedContains(ll.start, ll.end, x)
}

func (ll LinearLayout) IsVisibleY(y float64) bool {
	return ll.Visible.ContainsY(y)
}

func closedContains(lo, hi, v float64) bool {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsNaN(v) {
		return false
	}
	return v >= lo && v <= hi
}
