package chartkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearDecorate(t *testing.T) {
	ll := squareLayout()

	assert.Len(t, ll.Decorate(All), 3)
	assert.Equal(t, []Pos{NewPos(0, 100)}, ll.Decorate(First))
	assert.Equal(t, []Pos{NewPos(100, 0)}, ll.Decorate(Last))

	pts := ll.Decorate(Each(Value{X: 5, Y: 2, Valid: true}, Value{X: 42, Y: 0, Valid: true}))
	require.Len(t, pts, 1)
	assert.Equal(t, NewPos(50, 80), pts[0])
}

func TestLinearDecorateWindow(t *testing.T) {
	s := Ordered(NumberPoint(0, 0), NumberPoint(5, 5), NumberPoint(10, 10))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, NewWindow(2, 8))
	assert.Nil(t, ll.Decorate(First))
	assert.Nil(t, ll.Decorate(Last))
	assert.Len(t, ll.Decorate(All), 1)
}

func TestLineDecorate(t *testing.T) {
	var (
		s    = rampSeries(1201)
		line = NewLineLayout(s, NewRect(0, 0, 600, 100), Insets{}, nil, 1)
	)
	assert.Len(t, line.Decorate(All), 1201)

	first := line.Decorate(First)
	require.Len(t, first, 1)
	assert.InDelta(t, 0.0, first[0].X, 1e-6)

	last := line.Decorate(Last)
	require.Len(t, last, 1)
	assert.InDelta(t, 600.0, last[0].X, 1e-6)

	pts := line.Decorate(Each(s.Values()[500]))
	assert.Len(t, pts, 1, "boundary values are listed once")
}

func TestHighlights(t *testing.T) {
	style := DefaultHighlightStyle()
	style.Radius = Ref(4.0)

	list := Highlights([]Pos{NewPos(10, 10), InvalidPos}, style)
	require.Len(t, list, 1)
	assert.Equal(t, NewRect(6, 6, 8, 8), list[0].Rect)
	assert.Equal(t, DefaultHighlightWidth, list[0].Style.GetStrokeWidth())
	assert.Equal(t, DefaultHighlightRadius, DefaultHighlightStyle().GetRadius())
}

func TestAxisMarkers(t *testing.T) {
	var (
		frame = NewRect(0, 0, 100, 100)
		pts   = []Pos{NewPos(30, 40)}
	)
	tests := []struct {
		Marker AxisMarker
		X      Marker
		Y      Marker
	}{
		{
			Marker: AxisTic(5),
			X:      Marker{From: NewPos(30, 100), To: NewPos(30, 95), Cap: CapButt},
			Y:      Marker{From: NewPos(0, 40), To: NewPos(5, 40), Cap: CapButt},
		},
		{
			Marker: ToPoint(2),
			X:      Marker{From: NewPos(30, 100), To: NewPos(30, 42), Cap: CapRound},
			Y:      Marker{From: NewPos(0, 40), To: NewPos(32, 40), Cap: CapRound},
		},
		{
			Marker: ThruRange,
			X:      Marker{From: NewPos(30, 100), To: NewPos(30, 0), Cap: CapButt},
			Y:      Marker{From: NewPos(0, 40), To: NewPos(100, 40), Cap: CapButt},
		},
	}
	for _, tt := range tests {
		xs := tt.Marker.XMarkers(frame, pts)
		require.Len(t, xs, 1)
		assert.Equal(t, tt.X, xs[0])

		ys := tt.Marker.YMarkers(frame, pts)
		require.Len(t, ys, 1)
		assert.Equal(t, tt.Y, ys[0])
	}
	assert.Equal(t, "round", CapRound.String())
}
