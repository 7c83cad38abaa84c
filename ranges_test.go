package chartkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestXBand(t *testing.T) {
	ll := squareLayout()
	tests := []struct {
		Range Range
		Lo    float64
		Hi    float64
	}{
		{Range: ClosedRange(2, 5), Lo: 20, Hi: 50},
		{Range: HalfOpenRange(2, 5), Lo: 20, Hi: 49.9},
		{Range: RangeFrom(5), Lo: 50, Hi: 100},
		{Range: RangeThrough(5), Lo: 0, Hi: 50},
		{Range: RangeUpTo(5), Lo: 0, Hi: 49.9},
		{Range: ClosedRange(-5, 50), Lo: 0, Hi: 100},
	}
	for _, tt := range tests {
		b := ll.XBand(tt.Range, DefaultRangeStyle())
		assert.True(t, b.IsValid())
		assert.InDelta(t, tt.Lo, b.Rect.MinX(), 1e-6)
		assert.InDelta(t, tt.Hi, b.Rect.MaxX(), 1e-6)
		assert.Equal(t, 0.0, b.Rect.MinY())
		assert.Equal(t, 100.0, b.Rect.MaxY())
		assert.Empty(t, b.Edges)
	}
}

func TestYBand(t *testing.T) {
	ll := squareLayout()
	b := ll.YBand(ClosedRange(2, 5), DefaultRangeStyle())
	assert.InDelta(t, 50.0, b.Rect.Y, delta)
	assert.InDelta(t, 30.0, b.Rect.H, delta)
	assert.Equal(t, 100.0, b.Rect.W)

	b = ll.YBand(RangeFrom(5), DefaultRangeStyle())
	assert.InDelta(t, 0.0, b.Rect.MinY(), delta)
	assert.InDelta(t, 50.0, b.Rect.MaxY(), delta)
}

func TestBandEdges(t *testing.T) {
	var (
		ll    = squareLayout()
		style = DefaultRangeStyle()
	)
	style.Stroke = Ref(colornames.Red)

	b := ll.XBand(ClosedRange(2, 5), style)
	require.Len(t, b.Edges, 2)
	assert.InDelta(t, 20.0, b.Edges[0].From.X, delta)
	assert.InDelta(t, 50.0, b.Edges[1].From.X, delta)
	assert.Equal(t, colornames.Red, b.Edges[0].Color)
	assert.Equal(t, DefaultRangeWidth, b.Edges[0].Width)

	b = ll.XBand(RangeFrom(5), style)
	require.Len(t, b.Edges, 1)
	assert.InDelta(t, 50.0, b.Edges[0].From.X, delta)

	b = ll.YBand(RangeThrough(5), style)
	require.Len(t, b.Edges, 1)
	assert.InDelta(t, 50.0, b.Edges[0].From.Y, delta)
}
