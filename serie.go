package chartkit

import (
	"math"
	"sort"

	"github.com/midbel/slices"
)

type SeriesKind int

const (
	KindOrdered SeriesKind = 1 << iota
	KindCategorized
)

func (k SeriesKind) String() string {
	switch k {
	case KindOrdered:
		return "ordered"
	case KindCategorized:
		return "categorized"
	default:
		return "unknown"
	}
}

// Series is an immutable collection of data. Ordered series are kept sorted
// by x, categorized series keep their insertion order.
type Series[P Datum] struct {
	kind SeriesKind
	data []P

	first Value
	last  Value
	min   Value
	max   Value
}

func Ordered[P Datum](data ...P) Series[P] {
	return makeSeries(KindOrdered, data)
}

func Categorized[P Datum](data ...P) Series[P] {
	return makeSeries(KindCategorized, data)
}

func makeSeries[P Datum](kind SeriesKind, data []P) Series[P] {
	s := Series[P]{
		kind: kind,
		data: append([]P(nil), data...),
	}
	s.recalculate()
	return s
}

func (s Series[P]) Append(data ...P) Series[P] {
	list := make([]P, 0, len(s.data)+len(data))
	list = append(list, s.data...)
	list = append(list, data...)
	return makeSeries(s.kind, list)
}

func (s Series[P]) Kind() SeriesKind {
	return s.kind
}

func (s Series[P]) IsOrdered() bool {
	return s.kind == KindOrdered
}

func (s Series[P]) Len() int {
	return len(s.data)
}

func (s Series[P]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s Series[P]) At(i int) P {
	return s.data[i]
}

func (s Series[P]) Data() []P {
	return append([]P(nil), s.data...)
}

func (s Series[P]) First() Value {
	return s.first
}

func (s Series[P]) Last() Value {
	return s.last
}

func (s Series[P]) Minimum() Value {
	return s.min
}

func (s Series[P]) Maximum() Value {
	return s.max
}

// Values returns the projected data. Categorized values carry their index as x.
func (s Series[P]) Values() []Value {
	list := make([]Value, len(s.data))
	for i := range s.data {
		list[i] = s.valueAt(i)
	}
	return list
}

func (s Series[P]) AllX(keep func(float64) bool) []Value {
	var list []Value
	for i := range s.data {
		v := s.valueAt(i)
		if keep(v.X) {
			list = append(list, v)
		}
	}
	return list
}

func (s Series[P]) AllY(keep func(float64) bool) []Value {
	var list []Value
	for i := range s.data {
		v := s.valueAt(i)
		if keep(v.Y) {
			list = append(list, v)
		}
	}
	return list
}

// IndexOf returns the position of the datum identified by id, or -1.
func (s Series[P]) IndexOf(id any) int {
	for i := range s.data {
		k, ok := any(s.data[i]).(Keyer)
		if ok && k.Key() == id {
			return i
		}
	}
	return -1
}

func (s Series[P]) Lookup(id any) (P, bool) {
	var zero P
	ix := s.IndexOf(id)
	if ix < 0 {
		return zero, false
	}
	return s.data[ix], true
}

// Contains reports whether x lies between the first and last x of the series.
func (s Series[P]) Contains(x float64) bool {
	if s.IsEmpty() || math.IsNaN(x) {
		return false
	}
	return x >= s.first.X && x <= s.last.X
}

func (s Series[P]) valueAt(i int) Value {
	if s.kind == KindCategorized {
		return indexedValue(s.data[i], i)
	}
	return ValueOf(s.data[i])
}

func (s *Series[P]) recalculate() {
	if s.kind == KindOrdered {
		sort.SliceStable(s.data, func(i, j int) bool {
			return lessX(s.data[i].XValue(), s.data[j].XValue())
		})
	}
	values := s.Values()
	s.first, s.last = firstValue(values), lastValue(values)
	s.min, s.max = Invalid, Invalid
	for _, v := range values {
		if !s.min.Valid || v.Y < s.min.Y {
			s.min = v
		}
		if !s.max.Valid || v.Y > s.max.Y {
			s.max = v
		}
	}
}

// lessX orders NaN after any number.
func lessX(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	return a < b
}

func firstValue(vs []Value) Value {
	if len(vs) == 0 {
		return Invalid
	}
	return slices.Fst(vs)
}

func lastValue(vs []Value) Value {
	if len(vs) == 0 {
		return Invalid
	}
	return slices.Lst(vs)
}
