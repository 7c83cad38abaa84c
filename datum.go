package chartkit

import (
	"fmt"
	"math"
	"time"
)

type DataValue interface {
	float64 | float32 | int | int64 | time.Time
}

type Number interface {
	float64 | float32 | int | int64
}

// Project returns the float64 used for arithmetic on a data value. Times are
// projected as seconds since the Unix epoch.
func Project[T DataValue](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case time.Time:
		if x.IsZero() {
			return math.NaN()
		}
		return float64(x.UnixNano()) / float64(time.Second)
	default:
		return math.NaN()
	}
}

type Datum interface {
	XValue() float64
	YValue() float64
	IsValid() bool
}

// Keyer is implemented by categorized data.
type Keyer interface {
	Key() any
}

type Point[T DataValue, U Number] struct {
	X T
	Y U

	invalid bool
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}

func TimePoint(x time.Time, y float64) Point[time.Time, float64] {
	return Point[time.Time, float64]{
		X: x,
		Y: y,
	}
}

func InvalidPoint[T DataValue, U Number]() Point[T, U] {
	return Point[T, U]{invalid: true}
}

func (p Point[T, U]) XValue() float64 {
	if p.invalid {
		return math.NaN()
	}
	return Project(p.X)
}

func (p Point[T, U]) YValue() float64 {
	if p.invalid {
		return math.NaN()
	}
	return Project(p.Y)
}

func (p Point[T, U]) IsValid() bool {
	return !p.invalid
}

type Category[I comparable, U Number] struct {
	ID I
	Y  U

	invalid bool
}

func CategoryPoint(id string, y float64) Category[string, float64] {
	return Category[string, float64]{
		ID: id,
		Y:  y,
	}
}

func InvalidCategory[I comparable, U Number]() Category[I, U] {
	return Category[I, U]{invalid: true}
}

func (c Category[I, U]) Key() any {
	return c.ID
}

// XValue is always NaN: categorized data have no x axis.
func (c Category[I, U]) XValue() float64 {
	return math.NaN()
}

func (c Category[I, U]) YValue() float64 {
	if c.invalid {
		return math.NaN()
	}
	return Project(c.Y)
}

func (c Category[I, U]) IsValid() bool {
	return !c.invalid
}

func (c Category[I, U]) String() string {
	return fmt.Sprint(c.ID)
}

// Value is the projection of a Datum used by layout code. ID and Index are only
// meaningful for categorized data, in which case X holds the index.
type Value struct {
	X     float64
	Y     float64
	Valid bool
	ID    any
	Index int
}

var Invalid = Value{
	X:     math.NaN(),
	Y:     math.NaN(),
	Index: -1,
}

func ValueOf(d Datum) Value {
	v := Value{
		X:     d.XValue(),
		Y:     d.YValue(),
		Valid: d.IsValid(),
		Index: -1,
	}
	if k, ok := d.(Keyer); ok {
		v.ID = k.Key()
	}
	return v
}

func indexedValue(d Datum, ix int) Value {
	v := ValueOf(d)
	v.X = float64(ix)
	v.Index = ix
	return v
}

func (v Value) XValue() float64 {
	return v.X
}

func (v Value) YValue() float64 {
	return v.Y
}

func (v Value) IsValid() bool {
	return v.Valid
}

// Equal compares the projected coordinates only. Two distinct data sharing the
// same x and y are equal.
func (v Value) Equal(other Value) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Value) String() string {
	if !v.Valid {
		return "invalid"
	}
	if v.ID != nil {
		return fmt.Sprintf("%v(%d): %g", v.ID, v.Index, v.Y)
	}
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
