package dash

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/chartkit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	numbers = "x,y\n0,1\n1,4\n2,,\n3,2\n4,8\n"
	sales   = "month;north;south\nJan;10;5\nFeb;20;5\nMar;30;10\n"
)

func prepare(t *testing.T, doc string) *Dashboard {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{
		"numbers.csv": numbers,
		"sales.csv":   sales,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	doc = strings.ReplaceAll(doc, "$DIR", dir)
	cfg, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return New(cfg, nil)
}

const lines = `
width: 400
height: 200
path: $DIR/out.svg
grid:
  y:
    spacing: 2
origin:
  y:
    kind: line
ranges:
  - axis: y
    lower: 2
    upper: 4
highlight:
  select: all
  marker: point
legend:
  position: [top, leading]
files:
  - path: $DIR/numbers.csv
  - path: $DIR/numbers.csv
    ident: copy
    style:
      line-color: red
      area: "#ff0000"
`

func TestDashboardLines(t *testing.T) {
	d := prepare(t, lines)
	layers, err := d.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, "numbers", layers[0].Name)
	assert.Equal(t, "copy", layers[1].Name)
	assert.Equal(t, 4, layers[0].Source.Len())

	ch, err := d.Build(layers)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ch.Render(&buf))
	str := buf.String()
	assert.Contains(t, str, "<svg")
	assert.Contains(t, str, "<circle")
	assert.Equal(t, 2, strings.Count(str, "<text"), "legend of both lines")
}

func TestDashboardRender(t *testing.T) {
	d := prepare(t, lines)
	require.NoError(t, d.Render(context.Background()))

	buf, err := os.ReadFile(d.Path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "<path")
}

const categories = `
title: sales
files:
  - path: $DIR/sales.csv
    type: string
    delimiter: ";"
    y: [1, 2]
    sum: true
    style:
      kind: %s
legend:
  inline: %t
`

func TestDashboardCategories(t *testing.T) {
	tests := []struct {
		Kind   string
		Inline bool
		Shape  string
	}{
		{Kind: "bar", Inline: false, Shape: "<rect"},
		{Kind: "bar", Inline: true, Shape: "<rect"},
		{Kind: "pie", Inline: false, Shape: "<path"},
		{Kind: "ring", Inline: true, Shape: "<path"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%t", tt.Kind, tt.Inline), func(t *testing.T) {
			d := prepare(t, fmt.Sprintf(categories, tt.Kind, tt.Inline))
			layers, err := d.Load(context.Background())
			require.NoError(t, err)

			ch, err := d.Build(layers)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, ch.Render(&buf))
			str := buf.String()
			assert.Contains(t, str, tt.Shape)
			assert.Contains(t, str, "Feb")
			assert.Contains(t, str, "sales")
		})
	}
}

func TestDashboardSummarize(t *testing.T) {
	d := prepare(t, fmt.Sprintf(categories, "bar", false))
	layers, err := d.Load(context.Background())
	require.NoError(t, err)

	list, err := d.Summarize(layers)
	require.NoError(t, err)
	require.Len(t, list, 1)

	s := list[0]
	assert.Equal(t, "bar", s.Kind)
	assert.Equal(t, 3, s.Count)
	require.Len(t, s.Shapes, 3)
	assert.Equal(t, "Jan", s.Shapes[0].ID)
	require.NotNil(t, s.Shapes[2].Value)
	assert.Equal(t, 40.0, *s.Shapes[2].Value)

	d = prepare(t, lines)
	layers, err = d.Load(context.Background())
	require.NoError(t, err)
	list, err = d.Summarize(layers)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Points, 4)
	assert.Equal(t, 1, list[0].Segments)
	require.NotNil(t, list[0].Offset)
	assert.Equal(t, 1.0, *list[0].Offset)
}

func TestDashboardErrors(t *testing.T) {
	d := prepare(t, "files:\n  - path: $DIR/missing.csv\n")
	_, err := d.Load(context.Background())
	assert.Error(t, err)
}

func TestDashboardGridLines(t *testing.T) {
	d := prepare(t, lines)
	layers, err := d.Load(context.Background())
	require.NoError(t, err)

	xs, ys, err := d.GridLines(layers)
	require.NoError(t, err)
	assert.Empty(t, xs)
	require.Len(t, ys, 5)
	for i, g := range ys {
		assert.Equal(t, float64(i*2), g.Value)
	}
	assert.InDelta(t, 200.0, ys[0].From.Y, 1e-9)
	assert.InDelta(t, 0.0, ys[4].From.Y, 1e-9)
}
