package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/midbel/chartkit"
	"github.com/midbel/chartkit/config"
	"github.com/midbel/chartkit/dash"
	"github.com/midbel/cli"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"
)

var errFail = errors.New("fail")

var (
	summary = "chartkit"
	help    = "chartkit lays out and draws charts described in yaml files"
)

func main() {
	var (
		set  = cli.NewFlagSet("chartkit")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"render"}, &renderCmd)
	root.Register([]string{"layout"}, &layoutCmd)
	root.Register([]string{"grid"}, &gridCmd)
	root.Register([]string{"check"}, &checkCmd)
	root.Register([]string{"colors"}, &colorsCmd)
	return root
}

var renderCmd = cli.Command{
	Name:    "render",
	Alias:   []string{"draw"},
	Summary: "draw the charts described in the given files as svg",
	Usage:   "render [-v] [-o file] <chart.yml> [<chart.yml>...]",
	Handler: &RenderCommand{},
}

var layoutCmd = cli.Command{
	Name:    "layout",
	Alias:   []string{"dump"},
	Summary: "print the layout computed for each file of a chart as json",
	Usage:   "layout [-v] [-o offset] <chart.yml>",
	Handler: &LayoutCommand{},
}

var gridCmd = cli.Command{
	Name:    "grid",
	Summary: "print the position of the grid lines of a chart",
	Usage:   "grid [-x spacing] [-y spacing] <chart.yml>",
	Handler: &GridCommand{},
}

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"validate"},
	Summary: "check that the given chart descriptions are valid",
	Usage:   "check <chart.yml> [<chart.yml>...]",
	Handler: &CheckCommand{},
}

var colorsCmd = cli.Command{
	Name:    "colors",
	Summary: "print the colors of a color set",
	Usage:   "colors [-n count] <basic|category10|tableau10>",
	Handler: &ColorsCommand{},
}

func getLogger(verbose bool) l.Wrapper {
	if verbose {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

type RenderCommand struct {
	Output  string
	Verbose bool
}

func (c RenderCommand) Run(args []string) error {
	set := cli.NewFlagSet("render")
	set.StringVar(&c.Output, "o", "", "output file, only used with a single chart")
	set.BoolVar(&c.Verbose, "v", false, "verbose")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("no chart given")
	}
	if c.Output != "" && set.NArg() > 1 {
		return fmt.Errorf("output can only be given for a single chart")
	}
	var (
		logger   = getLogger(c.Verbose)
		grp, ctx = errgroup.WithContext(context.Background())
	)
	for _, file := range set.Args() {
		file := file
		grp.Go(func() error {
			cfg, err := config.Load(file)
			if err != nil {
				return err
			}
			if c.Output != "" {
				cfg.Path = c.Output
			}
			if err := dash.New(cfg, logger).Render(ctx); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	return grp.Wait()
}

type LayoutCommand struct {
	Offset  string
	Verbose bool
}

func (c LayoutCommand) Run(args []string) error {
	set := cli.NewFlagSet("layout")
	set.StringVar(&c.Offset, "o", "", "scroll offset of line charts")
	set.BoolVar(&c.Verbose, "v", false, "verbose")
	if err := set.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(set.Arg(0))
	if err != nil {
		return err
	}
	if c.Offset != "" {
		offset, err := cast.ToFloat64E(c.Offset)
		if err != nil {
			return fmt.Errorf("%s: invalid offset", c.Offset)
		}
		cfg.Offset = chartkit.Ref(offset)
	}
	d := dash.New(cfg, getLogger(c.Verbose))
	layers, err := d.Load(context.Background())
	if err != nil {
		return err
	}
	list, err := d.Summarize(layers)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

type GridCommand struct {
	X string
	Y string
}

func (c GridCommand) Run(args []string) error {
	set := cli.NewFlagSet("grid")
	set.StringVar(&c.X, "x", "", "spacing of the vertical grid")
	set.StringVar(&c.Y, "y", "", "spacing of the horizontal grid")
	if err := set.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(set.Arg(0))
	if err != nil {
		return err
	}
	if cfg.Grid.X, err = overrideGrid(cfg.Grid.X, c.X); err != nil {
		return err
	}
	if cfg.Grid.Y, err = overrideGrid(cfg.Grid.Y, c.Y); err != nil {
		return err
	}
	d := dash.New(cfg, nil)
	layers, err := d.Load(context.Background())
	if err != nil {
		return err
	}
	xs, ys, err := d.GridLines(layers)
	if err != nil {
		return err
	}
	for _, g := range xs {
		fmt.Fprintf(os.Stdout, "x %10.3f %10.3f", g.Value, g.From.X)
		fmt.Fprintln(os.Stdout)
	}
	for _, g := range ys {
		fmt.Fprintf(os.Stdout, "y %10.3f %10.3f", g.Value, g.From.Y)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func overrideGrid(g *config.Grid, spacing string) (*config.Grid, error) {
	if spacing == "" {
		return g, nil
	}
	value, err := cast.ToFloat64E(spacing)
	if err != nil || value <= 0 {
		return nil, fmt.Errorf("%s: invalid spacing", spacing)
	}
	if g == nil {
		g = &config.Grid{}
	}
	g.Spacing = value
	return g, nil
}

type CheckCommand struct{}

func (c CheckCommand) Run(args []string) error {
	set := cli.NewFlagSet("check")
	if err := set.Parse(args); err != nil {
		return err
	}
	var failed bool
	for _, file := range set.Args() {
		if _, err := config.Load(file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: ok", file)
		fmt.Fprintln(os.Stdout)
	}
	if failed {
		return errFail
	}
	return nil
}

type ColorsCommand struct {
	Count int
}

func (c ColorsCommand) Run(args []string) error {
	set := cli.NewFlagSet("colors")
	set.IntVar(&c.Count, "n", 10, "number of colors to print")
	if err := set.Parse(args); err != nil {
		return err
	}
	name := set.Arg(0)
	if name == "" {
		name = "basic"
	}
	colors, err := chartkit.ColorSetByName(name)
	if err != nil {
		return err
	}
	seen := make(map[string]int)
	for i := 0; i < c.Count; i++ {
		seen[chartkit.Hex(colors.ColorAt(i))]++
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i := 0; i < c.Count; i++ {
		fmt.Fprintf(os.Stdout, "%2d %s", i, chartkit.Hex(colors.ColorAt(i)))
		fmt.Fprintln(os.Stdout)
	}
	fmt.Fprintf(os.Stdout, "%d distinct color(s): %v", len(keys), keys)
	fmt.Fprintln(os.Stdout)
	return nil
}
