package render

import (
	"bufio"
	"image/color"
	"io"

	"github.com/midbel/chartkit"
	"github.com/midbel/svg"
)

const FontSize = chartkit.DefaultFontSize

// Chart collects the elements of a preview and writes them as a SVG
// document.
type Chart struct {
	Title  string
	Width  float64
	Height float64

	elements []svg.Element
}

func New(width, height float64) *Chart {
	return &Chart{
		Width:  width,
		Height: height,
	}
}

func (c *Chart) Append(el svg.Element) {
	if el == nil {
		return
	}
	c.elements = append(c.elements, el)
}

func (c *Chart) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	if c.Title != "" {
		tx := svg.NewText(c.Title)
		tx.Pos = svg.NewPos(c.Width/2, FontSize)
		tx.Font = svg.NewFont(FontSize)
		tx.Anchor = "middle"
		tx.Baseline = "middle"
		el.Append(tx.AsElement())
	}
	for _, e := range c.elements {
		el.Append(e)
	}

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func toPos(p chartkit.Pos) svg.Pos {
	return svg.NewPos(p.X, p.Y)
}

func hex(c color.RGBA) string {
	return chartkit.Hex(c)
}

func getBasePath() svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	return pat
}

func getBaseGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}

func getRectPath(r chartkit.Rect) svg.Path {
	pat := getBasePath()
	pat.AbsMoveTo(svg.NewPos(r.MinX(), r.MinY()))
	pat.AbsLineTo(svg.NewPos(r.MaxX(), r.MinY()))
	pat.AbsLineTo(svg.NewPos(r.MaxX(), r.MaxY()))
	pat.AbsLineTo(svg.NewPos(r.MinX(), r.MaxY()))
	pat.ClosePath()
	return pat
}
