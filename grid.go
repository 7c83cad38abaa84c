package chartkit

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

const DefaultGridWidth = 0.5

var DefaultGridColor = colornames.Lightgray

type Grid struct {
	Origin   float64
	Spacing  float64
	Absolute bool
	Color    *color.RGBA
}

// XGrid returns a grid whose origin is relative to the first visible x.
func XGrid(origin, spacing float64) *Grid {
	return &Grid{
		Origin:  origin,
		Spacing: spacing,
	}
}

// AbsoluteXGrid returns a grid whose origin is given in data units.
func AbsoluteXGrid(origin, spacing float64) *Grid {
	return &Grid{
		Origin:   origin,
		Spacing:  spacing,
		Absolute: true,
	}
}

func YGrid(origin, spacing float64) *Grid {
	return &Grid{
		Origin:  origin,
		Spacing: spacing,
	}
}

func (g Grid) GetColor() color.RGBA {
	if g.Color != nil {
		return *g.Color
	}
	return DefaultGridColor
}

// Lines returns every position origin + k*spacing within [lo, hi] in
// ascending order.
func (g Grid) Lines(origin, lo, hi float64) []float64 {
	step := g.Spacing
	if !isFinite(step) || step <= 0 || !isFinite(origin) || math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil
	}
	var (
		fst  = math.Ceil((lo - origin) / step)
		lst  = math.Floor((hi - origin) / step)
		list []float64
	)
	for k := fst; k <= lst; k++ {
		list = append(list, origin+k*step)
	}
	return list
}

type GridLine struct {
	Value float64
	From  Pos
	To    Pos
}

func (g GridLine) IsValid() bool {
	return g.From.IsValid() && g.To.IsValid()
}

func (ll LinearLayout) XGridOrigin(g *Grid) float64 {
	if g == nil {
		return 0
	}
	if g.Absolute {
		return g.Origin
	}
	return ll.start + g.Origin
}

func (ll LinearLayout) YGridOrigin(g *Grid) float64 {
	if g == nil {
		return 0
	}
	return g.Origin
}

// XGridLines gives the vertical lines of the grid across the frame.
func (ll LinearLayout) XGridLines(g Grid) []GridLine {
	var (
		origin = ll.XGridOrigin(&g)
		values = g.Lines(origin, ll.Visible.Start, ll.Visible.End)
		list   = make([]GridLine, 0, len(values))
	)
	for _, v := range values {
		x := ll.XInLayout(v)
		list = append(list, GridLine{
			Value: v,
			From:  NewPos(x, ll.Frame.MinY()),
			To:    NewPos(x, ll.Frame.MaxY()),
		})
	}
	return list
}

// YGridLines gives the horizontal lines of the grid across the frame.
func (ll LinearLayout) YGridLines(g Grid) []GridLine {
	var (
		origin = ll.YGridOrigin(&g)
		values = g.Lines(origin, ll.Visible.Min, ll.Visible.Max)
		list   = make([]GridLine, 0, len(values))
	)
	for _, v := range values {
		y := ll.YInLayout(v)
		list = append(list, GridLine{
			Value: v,
			From:  NewPos(ll.Frame.MinX(), y),
			To:    NewPos(ll.Frame.MaxX(), y),
		})
	}
	return list
}
