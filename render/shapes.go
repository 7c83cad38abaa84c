package render

import (
	"fmt"

	"github.com/midbel/chartkit"
	"github.com/midbel/svg"
)

// Line draws the visible segments of a line layout. Invalid points break
// the line.
func Line(layout chartkit.LineLayout, style chartkit.LineStyle) svg.Element {
	var (
		grp = getBaseGroup("line")
		pts = visiblePoints(layout)
	)
	if len(pts) == 0 {
		return nil
	}
	if style.Fill != nil {
		if area, ok := getArea(pts, layout.YInLayout(0)); ok {
			area.Fill = svg.NewFill(hex(*style.Fill))
			area.Fill.Opacity = 0.5
			grp.Append(area.AsElement())
		}
	}
	if style.Edge != nil {
		edge := getPolyline(pts)
		edge.Fill = svg.NewFill("none")
		edge.Stroke = svg.NewStroke(hex(*style.Edge), style.Width+2*style.EdgeWidth)
		grp.Append(edge.AsElement())
	}
	pat := getPolyline(pts)
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(hex(style.Color), style.Width)
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func visiblePoints(layout chartkit.LineLayout) []chartkit.Pos {
	var list []chartkit.Pos
	for _, s := range layout.VisibleSegments() {
		pts := s.Points
		if n := len(list); n > 0 && len(pts) > 0 && list[n-1] == pts[0] {
			pts = pts[1:]
		}
		list = append(list, pts...)
	}
	return list
}

func getPolyline(pts []chartkit.Pos) svg.Path {
	var (
		pat  = getBasePath()
		move = true
	)
	for _, p := range pts {
		if !p.IsValid() {
			move = true
			continue
		}
		if move {
			pat.AbsMoveTo(toPos(p))
			move = false
			continue
		}
		pat.AbsLineTo(toPos(p))
	}
	return pat
}

func getArea(pts []chartkit.Pos, base float64) (svg.Path, bool) {
	var (
		pat   = getBasePath()
		first chartkit.Pos
		last  chartkit.Pos
		count int
	)
	for _, p := range pts {
		if !p.IsValid() {
			continue
		}
		if count == 0 {
			first = p
			pat.AbsMoveTo(svg.NewPos(p.X, base))
		}
		pat.AbsLineTo(toPos(p))
		last = p
		count++
	}
	if count == 0 {
		return pat, false
	}
	pat.AbsLineTo(svg.NewPos(last.X, base))
	pat.AbsLineTo(svg.NewPos(first.X, base))
	pat.ClosePath()
	return pat, true
}

// Bars draws the bars of the layout ordered by their z-index.
func Bars(layout chartkit.BarLayout, style chartkit.CategorizedStyle) svg.Element {
	values := make([]chartkit.Value, len(layout.Bars))
	for i := range layout.Bars {
		values[i] = layout.Bars[i].Value
	}
	grp := getBaseGroup("bars")
	for _, v := range style.ZOrder(values) {
		b, ok := layout.Bar(v.Index)
		if !ok || !b.IsValid() {
			continue
		}
		bar := getBaseGroup("bar")
		bar.Stroke = svg.NewStroke(hex(style.Stroke(b.Value)), style.StrokeWidth(b.Value))

		var el svg.Rect
		if b.ID != nil {
			el.Title = fmt.Sprint(b.ID)
		}
		el.Pos = svg.NewPos(b.Rect.X, b.Rect.Y)
		el.Dim = svg.NewDim(b.Rect.W, b.Rect.H)
		el.Fill = svg.NewFill(hex(style.Fill(b.Value)))
		bar.Append(el.AsElement())
		grp.Append(bar.AsElement())
	}
	return grp.AsElement()
}

// Wedges draws the wedges of a radial layout ordered by their z-index.
func Wedges(layout chartkit.RadialLayout, style chartkit.CategorizedStyle) svg.Element {
	values := make([]chartkit.Value, len(layout.Wedges))
	for i := range layout.Wedges {
		values[i] = layout.Wedges[i].Value
	}
	grp := getBaseGroup("wedges")
	for _, v := range style.ZOrder(values) {
		w, ok := layout.Wedge(v.Index)
		if !ok || !w.IsValid() || w.Sweep() <= 0 {
			continue
		}
		pat := getWedgePath(w)
		pat.Fill = svg.NewFill(hex(style.Fill(w.Value)))
		pat.Stroke = svg.NewStroke(hex(style.Stroke(w.Value)), style.StrokeWidth(w.Value))
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

func getWedgePath(w chartkit.Wedge) svg.Path {
	var (
		pat   = getBasePath()
		large = w.Sweep() > 180
		start = w.StartAngle
		end   = w.EndAngle
	)
	if w.IsFull() {
		end = start + 359.99
		large = true
	}
	pat.AbsMoveTo(toPos(w.PointAt(start, w.Outer)))
	pat.AbsArcTo(toPos(w.PointAt(end, w.Outer)), w.Outer, w.Outer, 0, large, true)
	if w.Inner > 0 {
		pat.AbsLineTo(toPos(w.PointAt(end, w.Inner)))
		pat.AbsArcTo(toPos(w.PointAt(start, w.Inner)), w.Inner, w.Inner, 0, large, false)
	} else {
		pat.AbsLineTo(toPos(w.Center))
	}
	pat.ClosePath()
	return pat
}
