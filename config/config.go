package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/midbel/chartkit"
	"github.com/midbel/chartkit/load"
	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultPath   = "out.svg"
)

const (
	KindLine = "line"
	KindBar  = "bar"
	KindPie  = "pie"
	KindRing = "ring"
)

type Window struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
}

type Limit struct {
	Offset int `yaml:"offset"`
	Count  int `yaml:"count"`
}

// File is a data input of the chart. Its style is merged onto the global
// style of the chart.
type File struct {
	Path      string `yaml:"path"`
	Ident     string `yaml:"ident"`
	Type      string `yaml:"type"`
	Delimiter string `yaml:"delimiter"`
	X         int    `yaml:"x"`
	Y         []int  `yaml:"y"`
	Range     string `yaml:"range"`
	Sum       bool   `yaml:"sum"`
	Limit     Limit  `yaml:"limit"`
	Style     Style  `yaml:"style"`
}

func (f File) Source() (load.File, error) {
	src := load.File{
		Path:  f.Path,
		Ident: f.Ident,
		Type:  f.Type,
		X:     f.X,
		Limit: load.Limit{
			Offset: f.Limit.Offset,
			Count:  f.Limit.Count,
		},
	}
	switch f.Type {
	case "", load.TypeNumber, load.TypeTime, load.TypeString:
	default:
		return src, invalid("type", f.Type, chartkit.ErrKind)
	}
	var err error
	if src.Y, err = f.selector(); err != nil {
		return src, err
	}
	if f.Type != load.TypeString && src.Y.Width() != 1 {
		return src, invalid("y", fmt.Sprint(f.Y), load.ErrWidth)
	}
	switch f.Delimiter {
	case "":
	case "tab", `\t`:
		src.Comma = '\t'
	default:
		if utf8.RuneCountInString(f.Delimiter) != 1 {
			return src, invalid("delimiter", f.Delimiter, nil)
		}
		src.Comma, _ = utf8.DecodeRuneInString(f.Delimiter)
	}
	return src, nil
}

// selector builds the y selection of a file. With sum, the columns of the
// range are added together and given after the columns of y; without a
// range, the columns of y are added together.
func (f File) selector() (load.Selector, error) {
	var group []int
	if f.Range != "" {
		list, err := load.ParseRange(f.Range)
		if err != nil {
			return nil, invalid("range", f.Range, err)
		}
		group = list
	}
	switch {
	case f.Sum && len(group) > 0 && len(f.Y) > 0:
		return load.Combined(load.SelectMulti(f.Y), load.SelectSum(group)), nil
	case f.Sum:
		return load.SelectSum(append(append([]int(nil), f.Y...), group...)), nil
	case len(f.Y) == 0 && len(group) == 0:
		return load.SelectSingle(1), nil
	default:
		return load.SelectMulti(append(append([]int(nil), f.Y...), group...)), nil
	}
}

type Config struct {
	Title  string             `yaml:"title"`
	Path   string             `yaml:"path"`
	Width  float64            `yaml:"width"`
	Height float64            `yaml:"height"`
	Insets map[string]float64 `yaml:"insets"`
	Offset *float64           `yaml:"offset"`
	Window *Window            `yaml:"window"`

	Style Style  `yaml:"style"`
	Files []File `yaml:"files"`

	Grid      Grids      `yaml:"grid"`
	Origin    Origins    `yaml:"origin"`
	Ranges    []Range    `yaml:"ranges"`
	Highlight *Highlight `yaml:"highlight"`
	Legend    *Legend    `yaml:"legend"`
}

func Default() Config {
	return Config{
		Path:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Style:  GlobalStyle(),
	}
}

func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// Decode reads a chart description. Fields missing from the document keep
// their default value.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return invalid("width", fmt.Sprint(c.Width), nil)
	}
	if c.Height <= 0 {
		return invalid("height", fmt.Sprint(c.Height), nil)
	}
	if _, err := c.GetInsets(); err != nil {
		return err
	}
	if err := c.Style.validate(); err != nil {
		return err
	}
	if _, err := c.GetOrigins(); err != nil {
		return err
	}
	if _, err := c.GetRanges(); err != nil {
		return err
	}
	if c.Highlight != nil {
		if _, err := c.Highlight.Get(); err != nil {
			return err
		}
	}
	if c.Legend != nil {
		if _, err := c.Legend.Get(); err != nil {
			return err
		}
	}
	for _, f := range c.Files {
		if _, err := f.Source(); err != nil {
			return err
		}
		if err := f.Style.merge(c.Style).validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Frame() chartkit.Rect {
	return chartkit.NewRect(0, 0, c.Width, c.Height)
}

var edgeNames = map[string]chartkit.Edge{
	"all":        chartkit.EdgeAll,
	"horizontal": chartkit.EdgeHorizontal,
	"vertical":   chartkit.EdgeVertical,
	"top":        chartkit.EdgeTop,
	"bottom":     chartkit.EdgeBottom,
	"leading":    chartkit.EdgeLeading,
	"trailing":   chartkit.EdgeTrailing,
}

func (c Config) GetInsets() (chartkit.Insets, error) {
	var edges chartkit.Edges
	for name, value := range c.Insets {
		e, ok := edgeNames[name]
		if !ok {
			return chartkit.Insets{}, invalid("insets", name, nil)
		}
		edges = edges.Set(e, value)
	}
	return edges.Insets(), nil
}

func (c Config) GetWindow() *chartkit.Window {
	if c.Window == nil {
		return nil
	}
	return chartkit.NewWindow(c.Window.Start, c.Window.End)
}

// GetOffset gives the scroll offset of line charts, the most recent data
// being shown by default.
func (c Config) GetOffset() float64 {
	if c.Offset == nil {
		return 1
	}
	return *c.Offset
}

// StyleOf returns the style of the file with the unset fields taken from the
// global style.
func (c Config) StyleOf(f File) Style {
	return f.Style.merge(c.Style)
}
