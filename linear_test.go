package chartkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func squareLayout() LinearLayout {
	s := Ordered(NumberPoint(0, 0), NumberPoint(5, 2), NumberPoint(10, 10))
	return NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, nil)
}

func TestLinearTransform(t *testing.T) {
	ll := squareLayout()
	assert.InDelta(t, 10.0, ll.UnitX(), delta)
	assert.InDelta(t, 10.0, ll.UnitY(), delta)

	tests := []struct {
		Data Pos
		Want Pos
	}{
		{Data: NewPos(0, 0), Want: NewPos(0, 100)},
		{Data: NewPos(5, 5), Want: NewPos(50, 50)},
		{Data: NewPos(10, 10), Want: NewPos(100, 0)},
	}
	for _, tt := range tests {
		got := ll.PointInLayout(Value{X: tt.Data.X, Y: tt.Data.Y, Valid: true})
		assert.InDelta(t, tt.Want.X, got.X, delta)
		assert.InDelta(t, tt.Want.Y, got.Y, delta)
	}
}

func TestLinearRoundTrip(t *testing.T) {
	ll := squareLayout()
	for v := 0.0; v <= 10; v += 0.25 {
		assert.InDelta(t, v, ll.XInLayout(ll.XInData(v)), delta)
		assert.InDelta(t, v, ll.XInData(ll.XInLayout(v)), delta)
		assert.InDelta(t, v, ll.YInData(ll.YInLayout(v)), delta)
	}
}

func TestLinearInsets(t *testing.T) {
	s := Ordered(NumberPoint(0, 0), NumberPoint(10, 10))
	ll := NewLinearLayout(s, NewRect(0, 0, 120, 120), Insets{Top: 10, Bottom: 10, Leading: 10, Trailing: 10}, nil)

	assert.Equal(t, NewRect(10, 10, 100, 100), ll.InsetFrame())
	assert.InDelta(t, 10.0, ll.XInLayout(0), delta)
	assert.InDelta(t, 110.0, ll.XInLayout(10), delta)
	assert.InDelta(t, 110.0, ll.YInLayout(0), delta)
	assert.InDelta(t, 10.0, ll.YInLayout(10), delta)

	assert.InDelta(t, -1.0, ll.Visible.Start, delta)
	assert.InDelta(t, 11.0, ll.Visible.End, delta)
	assert.InDelta(t, -1.0, ll.Visible.Min, delta)
	assert.InDelta(t, 11.0, ll.Visible.Max, delta)
}

func TestLinearBoundsIncludeZero(t *testing.T) {
	s := Ordered(NumberPoint(0, 20), NumberPoint(1, 40))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, nil)
	assert.Equal(t, 0.0, ll.Absolute.Min)
	assert.Equal(t, 40.0, ll.Absolute.Max)

	s = Ordered(NumberPoint(0, -10), NumberPoint(1, 10))
	ll = NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, nil)
	assert.Equal(t, -10.0, ll.Absolute.Min)
	assert.InDelta(t, 50.0, ll.YInLayout(0), delta)
}

func TestLinearVisibility(t *testing.T) {
	s := Ordered(NumberPoint(0, 0), NumberPoint(5, 5), NumberPoint(10, 10))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, NewWindow(2, 8))

	assert.True(t, ll.IsVisibleX(2))
	assert.True(t, ll.IsVisibleX(8))
	assert.False(t, ll.IsVisibleX(9))
	assert.False(t, ll.IsVisibleX(math.NaN()))
	assert.Len(t, ll.VisiblePoints(), 1)

	_, ok := ll.VisiblePoint(Value{X: 0, Y: 0, Valid: true})
	assert.False(t, ok)
	p, ok := ll.VisiblePoint(Value{X: 5, Y: 5, Valid: true})
	require.True(t, ok)
	assert.InDelta(t, 50.0, p.X, delta)
}

func TestLinearEmpty(t *testing.T) {
	ll := NewLinearLayout(Ordered[Point[float64, float64]](), NewRect(0, 0, 100, 100), Insets{}, nil)
	assert.Equal(t, 0.0, ll.Size().W*ll.Size().H)
	assert.Empty(t, ll.VisiblePoints())
	assert.False(t, ll.IsVisibleX(0))
	assert.True(t, math.IsNaN(ll.XInLayout(1)))
}

func TestLinearSinglePoint(t *testing.T) {
	s := Ordered(NumberPoint(1, 1))
	ll := NewLinearLayout(s, NewRect(0, 0, 100, 100), Insets{}, nil)
	assert.True(t, math.IsNaN(ll.UnitX()))
	assert.False(t, ll.PointInLayout(s.First()).IsValid())
}

func quarters() Series[Category[string, float64]] {
	return Categorized(
		CategoryPoint("Jan", 10),
		CategoryPoint("Feb", 20),
		CategoryPoint("Mar", 30),
		CategoryPoint("Apr", 40),
	)
}

func TestBarLayoutAuto(t *testing.T) {
	bl := NewBarLayout(quarters(), NewRect(0, 0, 100, 100), Insets{}, BarStyle{})
	require.Len(t, bl.Bars, 4)
	assert.InDelta(t, 20.0/3, bl.Spacing, delta)

	tests := []struct {
		X float64
		H float64
	}{
		{X: 0, H: 25},
		{X: 20 + 20.0/3, H: 50},
		{X: 40 + 40.0/3, H: 75},
		{X: 80, H: 100},
	}
	for i, tt := range tests {
		b := bl.Bars[i]
		assert.True(t, b.IsValid())
		assert.InDelta(t, tt.X, b.Rect.X, delta)
		assert.InDelta(t, 20.0, b.Rect.W, delta)
		assert.InDelta(t, tt.H, b.Rect.H, delta)
		assert.InDelta(t, 100.0, b.Rect.MaxY(), delta, "bars stand on the origin")
	}
}

func TestBarLayoutConstant(t *testing.T) {
	style := BarStyle{Spacing: Constant(10)}
	style = style.SetWidth("Apr", Constant(30))

	bl := NewBarLayout(quarters(), NewRect(0, 0, 100, 100), Insets{}, style)
	require.Len(t, bl.Bars, 4)
	assert.Equal(t, 10.0, bl.Spacing)

	auto := (100.0 - 30 - 30) / 3
	assert.InDelta(t, auto, bl.Bars[0].Rect.W, delta)
	assert.InDelta(t, 30.0, bl.Bars[3].Rect.W, delta)
	assert.InDelta(t, 3*auto+30, bl.Bars[3].Rect.X, delta)
}

func TestBarLayoutVertical(t *testing.T) {
	bl := NewBarLayout(quarters(), NewRect(0, 0, 100, 100), Insets{}, BarStyle{Orientation: OrientVertical})
	require.Len(t, bl.Bars, 4)
	for i, b := range bl.Bars {
		assert.Equal(t, 0.0, b.Rect.X)
		assert.InDelta(t, 25*float64(i+1), b.Rect.W, delta)
		assert.InDelta(t, 20.0, b.Rect.H, delta)
	}
	assert.InDelta(t, 80.0, bl.Bars[3].Rect.Y, delta)
}

func TestBarLayoutSingle(t *testing.T) {
	bl := NewBarLayout(Categorized(CategoryPoint("one", 5)), NewRect(0, 0, 100, 100), Insets{}, BarStyle{})
	require.Len(t, bl.Bars, 1)
	assert.Equal(t, 0.0, bl.Spacing)
	assert.InDelta(t, 80.0, bl.Bars[0].Rect.W, delta)
}

func TestBarLayoutEmpty(t *testing.T) {
	bl := NewBarLayout(Categorized[Category[string, float64]](), NewRect(0, 0, 100, 100), Insets{}, BarStyle{})
	assert.Empty(t, bl.Bars)
	assert.Equal(t, 0.0, bl.Size().W)
}
