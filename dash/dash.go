package dash

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
	"github.com/midbel/chartkit/load"
	"github.com/midbel/chartkit/render"
	"github.com/midbel/svg"
	"github.com/sgostarter/i/l"
	"golang.org/x/sync/errgroup"
)

// Layer is a file of the configuration with its data loaded and its style
// resolved against the global style.
type Layer struct {
	Name   string
	Style  config.Style
	Source chartkit.Source
}

// Dashboard turns a chart description into a SVG document.
type Dashboard struct {
	config.Config

	loader *load.Loader
	logger l.Wrapper
}

func New(cfg config.Config, logger l.Wrapper) *Dashboard {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Dashboard{
		Config: cfg,
		loader: load.NewLoader(logger),
		logger: logger.WithFields(l.StringField(l.ClsKey, "Dashboard")),
	}
}

// Load reads every file of the configuration concurrently. Layers are given
// in the order of the files.
func (d *Dashboard) Load(ctx context.Context) ([]Layer, error) {
	var (
		layers = make([]Layer, len(d.Files))
		grp    *errgroup.Group
	)
	grp, ctx = errgroup.WithContext(ctx)
	for i := range d.Files {
		i, f := i, d.Files[i]
		grp.Go(func() error {
			file, err := f.Source()
			if err != nil {
				return err
			}
			src, err := d.loader.Load(ctx, file)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
			layers[i] = Layer{
				Name:   file.Name(),
				Style:  d.StyleOf(f),
				Source: src,
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// Render builds the chart and writes it to the path of the configuration or
// to stdout when no path is set.
func (d *Dashboard) Render(ctx context.Context) error {
	layers, err := d.Load(ctx)
	if err != nil {
		return err
	}
	ch, err := d.Build(layers)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if d.Path != "" && d.Path != "-" {
		f, err := os.Create(d.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := ch.Render(w); err != nil {
		return err
	}
	d.logger.WithFields(l.StringField("path", d.Path), l.IntField("layers", len(layers))).Debug("chart rendered")
	return nil
}

type canvas struct {
	back  []svg.Element
	data  []svg.Element
	front []svg.Element

	// decorations of the rectangular charts are only drawn once, for the
	// first linear layout.
	decorated bool
}

func (c *canvas) flush(ch *render.Chart) {
	for _, set := range [][]svg.Element{c.back, c.data, c.front} {
		for _, el := range set {
			ch.Append(el)
		}
	}
}

// Build lays out every layer and gives the chart ready to be rendered.
func (d *Dashboard) Build(layers []Layer) (*render.Chart, error) {
	insets, err := d.GetInsets()
	if err != nil {
		return nil, err
	}
	var (
		cv    canvas
		frame = d.Frame()
		ch    = render.New(d.Width, d.Height)
	)
	ch.Title = d.Title
	for i, y := range layers {
		var err error
		switch y.Style.Kind {
		case config.KindLine:
			err = d.buildLine(&cv, i, y, frame, insets)
		case config.KindBar:
			err = d.buildBars(&cv, y, frame, insets)
		case config.KindPie, config.KindRing:
			err = d.buildRadial(&cv, y, frame, insets)
		default:
			err = fmt.Errorf("%s: %w", y.Style.Kind, chartkit.ErrKind)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", y.Name, err)
		}
		d.logger.WithFields(l.StringField("layer", y.Name), l.StringField("kind", y.Style.Kind), l.IntField("count", y.Source.Len())).Debug("layer built")
	}
	if err := d.buildLineLegend(&cv, layers, frame); err != nil {
		return nil, err
	}
	cv.flush(ch)
	return ch, nil
}

func (d *Dashboard) buildLine(cv *canvas, index int, y Layer, frame chartkit.Rect, insets chartkit.Insets) error {
	style, err := d.lineStyle(index, y)
	if err != nil {
		return err
	}
	line := chartkit.NewLineLayout(y.Source, frame, insets, d.GetWindow(), d.GetOffset())
	if err := d.decorate(cv, line.LinearLayout); err != nil {
		return err
	}
	cv.data = append(cv.data, render.Line(line, style))

	if d.Highlight == nil {
		return nil
	}
	deco, err := d.Highlight.Get()
	if err != nil {
		return err
	}
	points := line.Decorate(deco.Selection)
	cv.front = append(cv.front, render.Highlights(chartkit.Highlights(points, deco.Style)))
	if deco.Marker == nil {
		return nil
	}
	var markers []chartkit.Marker
	if deco.OnX {
		markers = append(markers, deco.Marker.XMarkers(line.Frame, points)...)
	}
	if deco.OnY {
		markers = append(markers, deco.Marker.YMarkers(line.Frame, points)...)
	}
	cv.front = append(cv.front, render.Markers(markers, deco.Style))
	return nil
}

// lineStyle resolves the style of a line. Lines without a color take the
// color of their rank in the color set.
func (d *Dashboard) lineStyle(index int, y Layer) (chartkit.LineStyle, error) {
	style, err := y.Style.Line()
	if err != nil {
		return style, err
	}
	if y.Style.LineColor == "" {
		cs, err := y.Style.Categorized()
		if err != nil {
			return style, err
		}
		style.Color = cs.Colors.ColorAt(index)
	}
	return style, nil
}

func (d *Dashboard) buildBars(cv *canvas, y Layer, frame chartkit.Rect, insets chartkit.Insets) error {
	bs, err := y.Style.Bar()
	if err != nil {
		return err
	}
	cs, err := y.Style.Categorized()
	if err != nil {
		return err
	}
	bars := chartkit.NewBarLayout(y.Source, frame, insets, bs)
	if err := d.decorate(cv, bars.LinearLayout); err != nil {
		return err
	}
	cv.data = append(cv.data, render.Bars(bars, cs))

	if d.Legend == nil {
		return nil
	}
	ls, err := d.Legend.Get()
	if err != nil {
		return err
	}
	var list []chartkit.LegendEntry
	if d.Legend.Inline {
		list = ls.InlineBars(bars, cs)
	} else {
		list = ls.StandAlone(y.Source, cs, frame)
	}
	cv.front = append(cv.front, render.Legend(list, ls))
	return nil
}

func (d *Dashboard) buildRadial(cv *canvas, y Layer, frame chartkit.Rect, insets chartkit.Insets) error {
	rs, err := y.Style.Radial()
	if err != nil {
		return err
	}
	cs, err := y.Style.Categorized()
	if err != nil {
		return err
	}
	radial := chartkit.NewRadialLayout(y.Source, frame, insets, rs)
	cv.data = append(cv.data, render.Wedges(radial, cs))

	if d.Legend == nil {
		return nil
	}
	ls, err := d.Legend.Get()
	if err != nil {
		return err
	}
	var list []chartkit.LegendEntry
	if d.Legend.Inline {
		list = ls.InlineRadial(radial, cs)
	} else {
		list = ls.StandAlone(y.Source, cs, frame)
	}
	cv.front = append(cv.front, render.Legend(list, ls))
	return nil
}

// buildLineLegend lists the names of the line layers with their color.
func (d *Dashboard) buildLineLegend(cv *canvas, layers []Layer, frame chartkit.Rect) error {
	if d.Legend == nil {
		return nil
	}
	var (
		names []chartkit.Category[string, float64]
		style = chartkit.DefaultCategorizedStyle()
	)
	for i, y := range layers {
		if y.Style.Kind != config.KindLine {
			continue
		}
		ls, err := d.lineStyle(i, y)
		if err != nil {
			return err
		}
		names = append(names, chartkit.CategoryPoint(y.Name, 0))
		style = style.Set(y.Name, chartkit.SegmentStyle{
			Fill:   chartkit.Ref(ls.Color),
			Stroke: chartkit.Ref(ls.Color),
		})
	}
	if len(names) == 0 {
		return nil
	}
	ls, err := d.Legend.Get()
	if err != nil {
		return err
	}
	list := ls.StandAlone(chartkit.Categorized(names...), style, frame)
	cv.front = append(cv.front, render.Legend(list, ls))
	return nil
}

// decorate adds the grids, the ranges and the origin marks of the first
// rectangular layout.
func (d *Dashboard) decorate(cv *canvas, ll chartkit.LinearLayout) error {
	if cv.decorated {
		return nil
	}
	cv.decorated = true

	xgrid, ygrid, err := d.Grid.Get()
	if err != nil {
		return err
	}
	if xgrid != nil {
		lines := ll.XGridLines(*xgrid)
		cv.back = append(cv.back, render.Grid(lines, *xgrid))
		if d.Grid.X.HasLabels() {
			cv.front = append(cv.front, render.Labels(lines, true))
		}
	}
	if ygrid != nil {
		lines := ll.YGridLines(*ygrid)
		cv.back = append(cv.back, render.Grid(lines, *ygrid))
		if d.Grid.Y.HasLabels() {
			cv.front = append(cv.front, render.Labels(lines, false))
		}
	}
	bands, err := d.GetRanges()
	if err != nil {
		return err
	}
	for _, b := range bands {
		var band chartkit.Band
		if b.Vertical {
			band = ll.XBand(b.Range, b.Style)
		} else {
			band = ll.YBand(b.Range, b.Style)
		}
		cv.back = append(cv.back, render.Band(band, b.Style))
	}
	origins, err := d.GetOrigins()
	if err != nil {
		return err
	}
	if seg, ok := origins.XOrigin(ll); ok {
		cv.back = append(cv.back, render.Segment(seg))
	}
	if seg, ok := origins.YOrigin(ll); ok {
		cv.back = append(cv.back, render.Segment(seg))
	}
	return nil
}
