package render

import (
	"github.com/midbel/chartkit"
	"github.com/midbel/svg"
	"github.com/spf13/cast"
)

const tickSize = 4

// Labels writes the value of each grid line outside of the frame with a
// small tick: below the frame for vertical lines, before it for horizontal
// ones.
func Labels(lines []chartkit.GridLine, vertical bool) svg.Element {
	if len(lines) == 0 {
		return nil
	}
	var (
		grp   = getBaseGroup("labels")
		ticks = getBaseGroup("ticks")
	)
	ticks.Stroke = svg.NewStroke("black", 1)
	for _, g := range lines {
		if !g.IsValid() {
			continue
		}
		var (
			pos  = g.From
			tick = pos.Add(-tickSize, 0)
		)
		if vertical {
			pos = g.To
			tick = pos.Add(0, tickSize)
		}
		ticks.Append(svg.NewLine(toPos(pos), toPos(tick)).AsElement())
		grp.Append(tickText(cast.ToString(g.Value), tick, vertical).AsElement())
	}
	grp.Append(ticks.AsElement())
	return grp.AsElement()
}

func tickText(str string, pos chartkit.Pos, vertical bool) svg.Text {
	text := svg.NewText(str)
	text.Font = svg.NewFont(FontSize)
	if vertical {
		text.Pos = svg.NewPos(pos.X, pos.Y+FontSize*0.2)
		text.Anchor = "middle"
		text.Baseline = "hanging"
	} else {
		text.Pos = svg.NewPos(pos.X-FontSize*0.4, pos.Y)
		text.Anchor = "end"
		text.Baseline = "middle"
	}
	return text
}
