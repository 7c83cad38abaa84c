package render

import (
	"github.com/midbel/chartkit"
	"github.com/midbel/svg"
)

func Grid(lines []chartkit.GridLine, g chartkit.Grid) svg.Element {
	if len(lines) == 0 {
		return nil
	}
	grp := getBaseGroup("grid")
	grp.Stroke = svg.NewStroke(hex(g.GetColor()), chartkit.DefaultGridWidth)
	grp.Stroke.DashArray(5)
	for _, i := range lines {
		if !i.IsValid() {
			continue
		}
		grp.Append(svg.NewLine(toPos(i.From), toPos(i.To)).AsElement())
	}
	return grp.AsElement()
}

// Segment draws a single line such as the mark of an origin.
func Segment(seg chartkit.LineSegment) svg.Element {
	if !seg.IsValid() {
		return nil
	}
	li := svg.NewLine(toPos(seg.From), toPos(seg.To))
	li.Stroke = svg.NewStroke(hex(seg.Color), seg.Width)
	return li.AsElement()
}

func Band(band chartkit.Band, style chartkit.RangeStyle) svg.Element {
	if !band.IsValid() {
		return nil
	}
	grp := getBaseGroup("range")
	if style.Fill != nil {
		pat := getRectPath(band.Rect)
		pat.Fill = svg.NewFill(hex(*style.Fill))
		pat.Fill.Opacity = style.Opacity
		grp.Append(pat.AsElement())
	}
	for _, e := range band.Edges {
		if el := Segment(e); el != nil {
			grp.Append(el)
		}
	}
	return grp.AsElement()
}

func Highlights(list []chartkit.Highlight) svg.Element {
	if len(list) == 0 {
		return nil
	}
	var (
		style = list[0].Style
		grp   = getBaseGroup("highlight")
	)
	if style.Fill != nil {
		grp.Fill = svg.NewFill(hex(*style.Fill))
	}
	if style.Stroke != nil {
		grp.Stroke = svg.NewStroke(hex(*style.Stroke), style.GetStrokeWidth())
	}
	for _, h := range list {
		ci := svg.NewCircle()
		ci.Pos = toPos(h.Center)
		ci.Radius = style.GetRadius()
		grp.Append(ci.AsElement())
	}
	return grp.AsElement()
}

// Markers draws the lines linking decorated points to an axis. Round caps
// are drawn as a dot at both ends of the line.
func Markers(list []chartkit.Marker, style chartkit.HighlightStyle) svg.Element {
	if len(list) == 0 {
		return nil
	}
	var (
		grp   = getBaseGroup("markers")
		color = chartkit.DefaultHighlight
		width = style.GetStrokeWidth()
	)
	if style.Stroke != nil {
		color = *style.Stroke
	} else if style.Fill != nil {
		color = *style.Fill
	}
	grp.Stroke = svg.NewStroke(hex(color), width)
	for _, m := range list {
		grp.Append(svg.NewLine(toPos(m.From), toPos(m.To)).AsElement())
		if m.Cap != chartkit.CapRound {
			continue
		}
		for _, p := range []chartkit.Pos{m.From, m.To} {
			ci := svg.NewCircle()
			ci.Pos = toPos(p)
			ci.Radius = width / 2
			ci.Fill = svg.NewFill(hex(color))
			grp.Append(ci.AsElement())
		}
	}
	return grp.AsElement()
}

// Legend draws the swatches and the names of the entries.
func Legend(list []chartkit.LegendEntry, style chartkit.LegendStyle) svg.Element {
	if len(list) == 0 {
		return nil
	}
	var (
		grp    = getBaseGroup("legend")
		labels = getBaseGroup("labels")
		font   = style.FontSize
	)
	if style.Color != nil {
		labels.Fill = svg.NewFill(hex(*style.Color))
	}
	if font <= 0 {
		font = FontSize
	}
	for _, e := range list {
		if e.Swatch.IsValid() {
			pat := getRectPath(e.Swatch)
			pat.Fill = svg.NewFill(hex(e.Fill))
			pat.Stroke = svg.NewStroke(hex(e.Stroke), 1)
			grp.Append(pat.AsElement())
		}
		if !e.HasName || !e.Label.IsValid() {
			continue
		}
		tx := svg.NewText(e.Name)
		tx.Pos = toPos(e.Label)
		tx.Font = svg.NewFont(font)
		tx.Baseline = "middle"
		if e.Box.IsValid() || !e.Swatch.IsValid() {
			tx.Anchor = "middle"
		}
		labels.Append(tx.AsElement())
	}
	grp.Append(labels.AsElement())
	return grp.AsElement()
}
