package chartkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScroll(t *testing.T) {
	assert.Equal(t, 1.0, MaxOverscroll(100, 25))
	assert.Equal(t, 0.5, MaxOverscroll(100, 100))
	assert.Equal(t, 0.0, MaxOverscroll(0, 0))

	assert.Equal(t, 0.5, ClampScroll(0.5, 0))
	assert.Equal(t, 1.0, ClampScroll(3, 0))
	assert.Equal(t, 1.5, ClampScroll(3, 0.5))
	assert.Equal(t, -0.5, ClampScroll(-3, 0.5))
	assert.Equal(t, 1.0, ClampScroll(math.NaN(), 0.5))
}

func TestDragScroll(t *testing.T) {
	assert.InDelta(t, 0.6, DragScroll(1, 10, 25, 1), delta)
	assert.InDelta(t, -1.0, DragScroll(0, 100, 25, 1), delta)
	assert.Equal(t, 0.4, DragScroll(0.4, 10, 0, 1))

	assert.Equal(t, 1.0, SettleScroll(1.3))
	assert.Equal(t, 0.0, SettleScroll(-0.2))
	assert.Equal(t, 0.7, SettleScroll(0.7))
}

func TestEdgeTapScroll(t *testing.T) {
	frame := NewRect(0, 0, 100, 50)
	assert.Equal(t, 0.0, EdgeTapScroll(frame, 5, 0.5))
	assert.Equal(t, 1.0, EdgeTapScroll(frame, 90, 0.5))
	assert.Equal(t, 0.5, EdgeTapScroll(frame, 50, 0.5))

	frame = NewRect(200, 0, 100, 50)
	assert.Equal(t, 0.0, EdgeTapScroll(frame, 210, 0.5))
	assert.Equal(t, 0.5, EdgeTapScroll(frame, 10, 0.5))
}

func TestMiniMap(t *testing.T) {
	var (
		s = rampSeries(11)
		m = NewMiniMap(s, NewRect(0, 0, 100, 20), Insets{}, Window{Start: 0, End: 5}, 1)
	)
	assert.InDelta(t, 50.0, m.ThumbWidth(), delta)
	assert.InDelta(t, 50.0, m.MaxScrollOffset(), delta)
	assert.Equal(t, NewRect(0, 0, 50, 20), m.Thumb())

	assert.InDelta(t, 1.0, m.Drag(0.5, 25), delta)
	assert.InDelta(t, 0.5, m.Tap(50), delta)
	assert.Equal(t, 1.0, m.Tap(500))
}
