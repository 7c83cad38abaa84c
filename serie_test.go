package chartkit

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSeriesSorted(t *testing.T) {
	s := Ordered(NumberPoint(3, 1), NumberPoint(1, 5), NumberPoint(2, -2))
	s = s.Append(NumberPoint(0, 4), NumberPoint(2.5, 9))

	values := s.Values()
	require.Len(t, values, 5)
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1].X, values[i].X)
	}
	assert.Equal(t, 0.0, s.First().X)
	assert.Equal(t, 3.0, s.Last().X)
}

func TestSeriesAggregates(t *testing.T) {
	s := Ordered(NumberPoint(1, 5), NumberPoint(2, -2), NumberPoint(3, 7), NumberPoint(4, -2))
	assert.Equal(t, -2.0, s.Minimum().Y)
	assert.Equal(t, 2.0, s.Minimum().X, "ties keep the first datum")
	assert.Equal(t, 7.0, s.Maximum().Y)
}

func TestEmptySeries(t *testing.T) {
	for _, s := range []Series[Point[float64, float64]]{
		Ordered[Point[float64, float64]](),
		Categorized[Point[float64, float64]](),
	} {
		assert.True(t, s.IsEmpty())
		for _, v := range []Value{s.First(), s.Last(), s.Minimum(), s.Maximum()} {
			assert.False(t, v.Valid)
			assert.True(t, math.IsNaN(v.Y))
		}
		assert.False(t, s.Contains(0))
	}
}

func TestAppendKeepsOriginal(t *testing.T) {
	s := Ordered(NumberPoint(1, 1))
	x := s.Append(NumberPoint(0, 10))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, 1.0, s.Maximum().Y)
	assert.Equal(t, 10.0, x.Maximum().Y)
}

func TestCategorizedSeries(t *testing.T) {
	s := Categorized(CategoryPoint("b", 2), CategoryPoint("a", 1), CategoryPoint("c", 3))
	values := s.Values()
	require.Len(t, values, 3)

	tests := []struct {
		ID    string
		Index int
	}{
		{ID: "b", Index: 0},
		{ID: "a", Index: 1},
		{ID: "c", Index: 2},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.ID, values[i].ID)
		assert.Equal(t, tt.Index, values[i].Index)
		assert.Equal(t, float64(tt.Index), values[i].X)
	}
	assert.Equal(t, 1, s.IndexOf("a"))
	assert.Equal(t, -1, s.IndexOf("z"))

	c, ok := s.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, 3.0, c.Y)
	assert.True(t, math.IsNaN(c.XValue()))

	assert.Equal(t, "a", s.Minimum().ID)
	assert.Equal(t, 1, s.Minimum().Index)
}

func TestSeriesFilters(t *testing.T) {
	s := Ordered(NumberPoint(1, 10), NumberPoint(2, 80), NumberPoint(3, 90))
	assert.Len(t, s.AllY(func(y float64) bool { return y > 50 }), 2)
	assert.Len(t, s.AllX(func(x float64) bool { return x < 2 }), 1)
	assert.True(t, s.Contains(2.5))
	assert.False(t, s.Contains(3.5))
	assert.False(t, s.Contains(math.NaN()))
}

func TestTimeProjection(t *testing.T) {
	when := time.Unix(3600, 0)
	p := TimePoint(when, 2)
	assert.Equal(t, 3600.0, p.XValue())
	assert.True(t, math.IsNaN(Project(time.Time{})))

	s := Ordered(TimePoint(when.Add(time.Hour), 1), TimePoint(when, 2))
	assert.Equal(t, 3600.0, s.First().X)
}

func TestInvalidDatum(t *testing.T) {
	p := InvalidPoint[float64, float64]()
	assert.False(t, p.IsValid())
	assert.True(t, math.IsNaN(p.YValue()))

	s := Ordered(p, NumberPoint(1, 2))
	assert.True(t, s.Maximum().Valid)
	assert.Equal(t, 2.0, s.Maximum().Y)
}

func TestValueEqual(t *testing.T) {
	a := Value{X: 1, Y: 2, Valid: true, ID: "a"}
	b := Value{X: 1, Y: 2, Valid: true, ID: "b"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Value{X: 1, Y: 3}))
}
