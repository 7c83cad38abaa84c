package chartkit

import (
	"math"
)

const (
	startAngle  Angle = -90
	innerRatio        = 0.75
	taperFactor       = 0.5
)

type Wedge struct {
	Value
	Center     Pos
	StartAngle Angle
	MidAngle   Angle
	EndAngle   Angle
	Inner      float64
	Outer      float64
}

func (w Wedge) Sweep() Angle {
	return w.EndAngle - w.StartAngle
}

func (w Wedge) IsValid() bool {
	return w.Value.Valid && w.Center.IsValid() && w.StartAngle.IsValid() &&
		w.EndAngle.IsValid() && isFinite(w.Inner) && isFinite(w.Outer)
}

func (w Wedge) BisectorPoint(radius float64) Pos {
	return w.PointAt(w.MidAngle, radius)
}

// PointAt gives the point at radius from the center of the wedge in the
// direction of angle.
func (w Wedge) PointAt(angle Angle, radius float64) Pos {
	return getPosFromAngle(w.Center, angle, radius)
}

// IsFull reports whether the wedge covers the whole circle.
func (w Wedge) IsFull() bool {
	return w.Sweep() >= fullcircle
}

// RadialLayout lays out categorized data as consecutive wedges starting at
// the top of the frame and turning clockwise.
type RadialLayout struct {
	Frame     Rect
	Insets    Insets
	Center    Pos
	Available float64
	Total     float64
	Max       float64
	Wedges    []Wedge
}

// Invalid data get an empty wedge at their place and are left out of the
// total.
func NewRadialLayout(src Source, frame Rect, insets Insets, style RadialStyle) RadialLayout {
	if src.Len() == 0 {
		return RadialLayout{}
	}
	rl := RadialLayout{
		Frame:  frame,
		Insets: insets,
	}
	var (
		inset  = rl.InsetFrame()
		values = src.Values()
		proj   float64
		max    float64
	)
	rl.Center = NewPos(inset.W/2+insets.Leading+frame.MinX(), inset.H/2+insets.Top+frame.MinY())
	for _, v := range values {
		if !v.Valid || !isFinite(v.Y) {
			continue
		}
		proj = math.Max(proj, style.Projection(v))
		rl.Total += v.Y
		max = math.Max(max, v.Y)
	}
	rl.Available = math.Min(inset.W, inset.H)/2 - proj
	if rl.Total != 0 {
		rl.Max = max / rl.Total
	}

	last := startAngle
	rl.Wedges = make([]Wedge, len(values))
	for i, v := range values {
		var sweep Angle
		if rl.Total != 0 && v.Valid && isFinite(v.Y) {
			sweep = Angle(v.Y / rl.Total * fullcircle)
		}
		rl.Wedges[i] = rl.makeWedge(v, last, last+sweep, style)
		last += sweep
	}
	return rl
}

func (rl RadialLayout) makeWedge(v Value, start, end Angle, style RadialStyle) Wedge {
	w := Wedge{
		Value:      v,
		Center:     rl.Center,
		StartAngle: start,
		EndAngle:   end,
		MidAngle:   start + (end-start)/2,
	}
	if p := style.Projection(v); p > 0 {
		w.Center = getPosFromAngle(rl.Center, w.MidAngle, p)
	}
	var (
		avail = rl.Available
		ratio = float64(end-start) / fullcircle
	)
	switch r := style.OuterRadius(v); r.Policy {
	case RadiusConstant:
		w.Outer = r.Value
	case RadiusProportional:
		w.Outer = avail - avail*(rl.Max-ratio)
	case RadiusInverselyProportional:
		w.Outer = avail - avail*ratio
	default:
		w.Outer = avail
	}
	switch r := style.InnerRadius(v); r.Policy {
	case RadiusConstant:
		w.Inner = r.Value
	case RadiusProportional:
		w.Inner = avail*taperFactor - (avail*taperFactor)*(rl.Max-ratio)
	case RadiusInverselyProportional:
		w.Inner = avail*taperFactor - (avail*taperFactor)*ratio
	default:
		w.Inner = avail * innerRatio
	}
	return w
}

func (rl RadialLayout) InsetFrame() Rect {
	return rl.Frame.Inset(rl.Insets)
}

func (rl RadialLayout) Size() Size {
	return rl.InsetFrame().Size
}

func (rl RadialLayout) Wedge(i int) (Wedge, bool) {
	if i < 0 || i >= len(rl.Wedges) {
		return Wedge{}, false
	}
	return rl.Wedges[i], true
}
