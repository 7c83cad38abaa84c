package dash

import (
	"math"

	"github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
)

// Summary describes the layout computed for a layer. Invalid numbers are
// reported as null.
type Summary struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Count    int      `json:"count"`
	Absolute *Bounds  `json:"absolute,omitempty"`
	Visible  *Bounds  `json:"visible,omitempty"`
	Offset   *float64 `json:"offset,omitempty"`
	MaxLine  *float64 `json:"maxScrollOffset,omitempty"`
	Segments int      `json:"segments,omitempty"`
	Points   []Point  `json:"points,omitempty"`
	Shapes   []Shape  `json:"shapes,omitempty"`
	Center   *Point   `json:"center,omitempty"`
	Radius   *float64 `json:"radius,omitempty"`
}

type Bounds struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

type Point struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type Shape struct {
	ID    any      `json:"id,omitempty"`
	Value *float64 `json:"value"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	W     *float64 `json:"w,omitempty"`
	H     *float64 `json:"h,omitempty"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
	Inner *float64 `json:"inner,omitempty"`
	Outer *float64 `json:"outer,omitempty"`
}

// Summarize lays out every layer the way Build does and reports the
// geometry.
func (d *Dashboard) Summarize(layers []Layer) ([]Summary, error) {
	insets, err := d.GetInsets()
	if err != nil {
		return nil, err
	}
	var (
		frame = d.Frame()
		list  = make([]Summary, 0, len(layers))
	)
	for _, y := range layers {
		s := Summary{
			Name:  y.Name,
			Kind:  y.Style.Kind,
			Count: y.Source.Len(),
		}
		switch y.Style.Kind {
		case config.KindLine:
			line := chartkit.NewLineLayout(y.Source, frame, insets, d.GetWindow(), d.GetOffset())
			s.Absolute = getBounds(line.Absolute)
			s.Visible = getBounds(line.Visible)
			s.Offset = number(line.Offset)
			s.MaxLine = number(line.MaxScrollOffset)
			s.Segments = len(line.Segments)
			for _, p := range line.Points() {
				s.Points = append(s.Points, getPoint(p))
			}
		case config.KindBar:
			bs, err := y.Style.Bar()
			if err != nil {
				return nil, err
			}
			bars := chartkit.NewBarLayout(y.Source, frame, insets, bs)
			s.Absolute = getBounds(bars.Absolute)
			for _, b := range bars.Bars {
				s.Shapes = append(s.Shapes, Shape{
					ID:    b.ID,
					Value: number(b.Y),
					X:     number(b.Rect.X),
					Y:     number(b.Rect.Y),
					W:     number(b.Rect.W),
					H:     number(b.Rect.H),
				})
			}
		case config.KindPie, config.KindRing:
			rs, err := y.Style.Radial()
			if err != nil {
				return nil, err
			}
			radial := chartkit.NewRadialLayout(y.Source, frame, insets, rs)
			s.Center = chartkit.Ref(getPoint(radial.Center))
			s.Radius = number(radial.Available)
			for _, w := range radial.Wedges {
				s.Shapes = append(s.Shapes, Shape{
					ID:    w.ID,
					Value: number(w.Y),
					Start: number(float64(w.StartAngle)),
					End:   number(float64(w.EndAngle)),
					Inner: number(w.Inner),
					Outer: number(w.Outer),
				})
			}
		default:
			return nil, chartkit.ErrKind
		}
		list = append(list, s)
	}
	return list, nil
}

func number(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func getPoint(p chartkit.Pos) Point {
	return Point{
		X: number(p.X),
		Y: number(p.Y),
	}
}

func getBounds(b chartkit.Bounds) *Bounds {
	return &Bounds{
		Start: number(b.Start),
		End:   number(b.End),
		Min:   number(b.Min),
		Max:   number(b.Max),
	}
}

// GridLines gives the lines of both grids computed against the first
// rectangular layer.
func (d *Dashboard) GridLines(layers []Layer) ([]chartkit.GridLine, []chartkit.GridLine, error) {
	insets, err := d.GetInsets()
	if err != nil {
		return nil, nil, err
	}
	xgrid, ygrid, err := d.Grid.Get()
	if err != nil {
		return nil, nil, err
	}
	for _, y := range layers {
		var ll chartkit.LinearLayout
		switch y.Style.Kind {
		case config.KindLine:
			ll = chartkit.NewLineLayout(y.Source, d.Frame(), insets, d.GetWindow(), d.GetOffset()).LinearLayout
		case config.KindBar:
			ll = chartkit.NewLinearLayout(y.Source, d.Frame(), insets, nil)
		default:
			continue
		}
		var xs, ys []chartkit.GridLine
		if xgrid != nil {
			xs = ll.XGridLines(*xgrid)
		}
		if ygrid != nil {
			ys = ll.YGridLines(*ygrid)
		}
		return xs, ys, nil
	}
	return nil, nil, nil
}
