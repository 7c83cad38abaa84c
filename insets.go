package chartkit

type Edge int

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing

	EdgeVertical   = EdgeTop | EdgeBottom
	EdgeHorizontal = EdgeLeading | EdgeTrailing
	EdgeAll        = EdgeVertical | EdgeHorizontal
)

type Insets struct {
	Top      float64
	Bottom   float64
	Leading  float64
	Trailing float64
}

func (i Insets) Horizontal() float64 {
	return i.Leading + i.Trailing
}

func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

type edgeValue struct {
	edges Edge
	value float64
}

// Edges collects inset assignments for sets of edges. A set naming a single
// edge wins over the vertical or horizontal sets which win over the set of all
// edges. For the same set, the last assignment wins.
type Edges struct {
	values []edgeValue
}

func (e Edges) Set(edges Edge, value float64) Edges {
	list := make([]edgeValue, 0, len(e.values)+1)
	list = append(list, e.values...)
	e.values = append(list, edgeValue{edges: edges, value: value})
	return e
}

func (e Edges) Insets() Insets {
	return Insets{
		Top:      e.resolve(EdgeTop),
		Bottom:   e.resolve(EdgeBottom),
		Leading:  e.resolve(EdgeLeading),
		Trailing: e.resolve(EdgeTrailing),
	}
}

func (e Edges) resolve(edge Edge) float64 {
	var (
		value float64
		rank  int
	)
	for _, v := range e.values {
		if v.edges&edge == 0 {
			continue
		}
		r := edgeRank(v.edges)
		if r >= rank {
			value, rank = v.value, r
		}
	}
	return value
}

func edgeRank(edges Edge) int {
	switch edges {
	case EdgeTop, EdgeBottom, EdgeLeading, EdgeTrailing:
		return 3
	case EdgeVertical, EdgeHorizontal:
		return 2
	default:
		return 1
	}
}
