package chartkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridLines(t *testing.T) {
	tests := []struct {
		Grid   Grid
		Origin float64
		Lo     float64
		Hi     float64
		Want   []float64
	}{
		{Grid: Grid{Spacing: 10}, Origin: 0, Lo: 0, Hi: 25, Want: []float64{0, 10, 20}},
		{Grid: Grid{Spacing: 10}, Origin: 5, Lo: 0, Hi: 25, Want: []float64{5, 15, 25}},
		{Grid: Grid{Spacing: 10}, Origin: 0, Lo: -15, Hi: 5, Want: []float64{-10, 0}},
		// origin outside the bounds only contributes the lines it reaches
		{Grid: Grid{Spacing: 10}, Origin: -5, Lo: 0, Hi: 25, Want: []float64{5, 15, 25}},
		{Grid: Grid{Spacing: 10}, Origin: 35, Lo: 0, Hi: 25, Want: []float64{5, 15, 25}},
		{Grid: Grid{Spacing: 10}, Origin: 0, Lo: 1, Hi: 9},
		{Grid: Grid{Spacing: 0}, Origin: 0, Lo: 0, Hi: 25},
		{Grid: Grid{Spacing: -1}, Origin: 0, Lo: 0, Hi: 25},
		{Grid: Grid{Spacing: math.NaN()}, Origin: 0, Lo: 0, Hi: 25},
		{Grid: Grid{Spacing: 10}, Origin: math.NaN(), Lo: 0, Hi: 25},
	}
	for _, tt := range tests {
		got := tt.Grid.Lines(tt.Origin, tt.Lo, tt.Hi)
		assert.Equal(t, tt.Want, got)
	}
}

func TestLayoutGridLines(t *testing.T) {
	ll := squareLayout()

	xs := ll.XGridLines(*XGrid(0, 2.5))
	require.Len(t, xs, 5)
	assert.Equal(t, 25.0, xs[1].From.X)
	assert.Equal(t, 0.0, xs[1].From.Y)
	assert.Equal(t, 100.0, xs[1].To.Y)

	ys := ll.YGridLines(*YGrid(0, 5))
	require.Len(t, ys, 3)
	assert.Equal(t, 5.0, ys[1].Value)
	assert.Equal(t, 50.0, ys[1].From.Y)
	assert.Equal(t, 0.0, ys[1].From.X)
	assert.Equal(t, 100.0, ys[1].To.X)
}

func TestRelativeXGrid(t *testing.T) {
	s := Ordered(NumberPoint(0, 0), NumberPoint(10, 10))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, NewWindow(3, 8))

	assert.Equal(t, 4.0, ll.XGridOrigin(XGrid(1, 2)))
	assert.Equal(t, 1.0, ll.XGridOrigin(AbsoluteXGrid(1, 2)))
	assert.Equal(t, 0.0, ll.XGridOrigin(nil))

	var values []float64
	for _, g := range ll.XGridLines(*XGrid(0, 2)) {
		values = append(values, g.Value)
	}
	assert.Equal(t, []float64{3, 5, 7}, values)
}

func TestOriginMarks(t *testing.T) {
	ll := squareLayout()

	o := DefaultOrigins()
	x, ok := o.XOrigin(ll)
	require.True(t, ok)
	assert.Equal(t, NewPos(0, 0), x.From)
	assert.Equal(t, NewPos(0, 100), x.To)

	y, ok := o.YOrigin(ll)
	require.True(t, ok)
	assert.Equal(t, NewPos(0, 100), y.From)
	assert.Equal(t, NewPos(100, 100), y.To)

	o = Origins{
		XMark: TicMark(1, 1),
		YGrid: YGrid(0, 2),
	}
	x, ok = o.XOrigin(ll)
	require.True(t, ok)
	assert.Equal(t, 120.0, x.From.Y)
	assert.Equal(t, 80.0, x.To.Y)

	o.XMark = PositiveTicMark(1, 1)
	x, ok = o.XOrigin(ll)
	require.True(t, ok)
	assert.Equal(t, 100.0, x.From.Y)
	assert.Equal(t, 80.0, x.To.Y)

	_, ok = o.YOrigin(ll)
	assert.False(t, ok, "no mark set for y")
}

func TestOriginNotVisible(t *testing.T) {
	s := Ordered(NumberPoint(5, 5), NumberPoint(10, 10))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, nil)
	_, ok := DefaultOrigins().XOrigin(ll)
	assert.False(t, ok)
	_, ok = DefaultOrigins().YOrigin(ll)
	assert.True(t, ok)
}
