package chartkit

import (
	"math"
)

var nan = math.NaN()

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

var InvalidPos = Pos{X: nan, Y: nan}

func (p Pos) IsValid() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Pos) Add(x, y float64) Pos {
	p.X += x
	p.Y += y
	return p
}

type Size struct {
	W float64
	H float64
}

func NewSize(w, h float64) Size {
	return Size{
		W: w,
		H: h,
	}
}

func (s Size) IsValid() bool {
	return isFinite(s.W) && isFinite(s.H)
}

func (s Size) IsZero() bool {
	return s.W == 0 || s.H == 0
}

type Rect struct {
	Pos
	Size
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Pos:  NewPos(x, y),
		Size: NewSize(w, h),
	}
}

var InvalidRect = NewRect(nan, nan, nan, nan)

func (r Rect) IsValid() bool {
	return r.Pos.IsValid() && r.Size.IsValid()
}

// Standardize returns the rectangle with a non negative width and height.
func (r Rect) Standardize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

func (r Rect) MinX() float64 {
	return math.Min(r.X, r.X+r.W)
}

func (r Rect) MaxX() float64 {
	return math.Max(r.X, r.X+r.W)
}

func (r Rect) MidX() float64 {
	return r.X + r.W/2
}

func (r Rect) MinY() float64 {
	return math.Min(r.Y, r.Y+r.H)
}

func (r Rect) MaxY() float64 {
	return math.Max(r.Y, r.Y+r.H)
}

func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

func (r Rect) Center() Pos {
	return NewPos(r.MidX(), r.MidY())
}

func (r Rect) Area() float64 {
	return math.Abs(r.W * r.H)
}

func (r Rect) Inset(in Insets) Rect {
	return NewRect(r.X+in.Leading, r.Y+in.Top, r.W-in.Horizontal(), r.H-in.Vertical())
}

// Intersect returns the overlap of both rectangles. The result has a zero
// size when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	r, other = r.Standardize(), other.Standardize()
	var (
		x1 = math.Max(r.MinX(), other.MinX())
		y1 = math.Max(r.MinY(), other.MinY())
		x2 = math.Min(r.MaxX(), other.MaxX())
		y2 = math.Min(r.MaxY(), other.MaxY())
	)
	if x2 < x1 || y2 < y1 {
		return NewRect(x1, y1, 0, 0)
	}
	return NewRect(x1, y1, x2-x1, y2-y1)
}

func (r Rect) Contains(p Pos) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}

// Angle is expressed in degrees, 0 pointing to the trailing edge and growing
// clockwise since layout y grows downward.
type Angle float64

func (a Angle) Radians() float64 {
	return float64(a) * deg2rad
}

func (a Angle) IsValid() bool {
	return isFinite(float64(a))
}

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

func getPosFromAngle(center Pos, angle Angle, radius float64) Pos {
	var (
		x = radius * math.Cos(angle.Radians())
		y = radius * math.Sin(angle.Radians())
	)
	return center.Add(x, y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// safeDiv returns NaN instead of an infinity when d is zero.
func safeDiv(n, d float64) float64 {
	if d == 0 || math.IsNaN(d) || math.IsNaN(n) {
		return nan
	}
	return n / d
}
