package load

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

var (
	ErrIndex   = errors.New("invalid index")
	ErrMissing = errors.New("missing value")
	ErrWidth   = errors.New("selection gives more than one value")
)

// Selector extracts the y values of a row.
type Selector interface {
	Select([]string) ([]float64, error)
	// Width is the number of values given by Select.
	Width() int

	columns() []int
}

// Combined concatenates the values of every selector.
func Combined(xs ...Selector) Selector {
	return group(xs)
}

// SelectSum adds the values of the given columns into a single value.
func SelectSum(list []int) Selector {
	return total(list)
}

func SelectSingle(i int) Selector {
	return pick{i}
}

// SelectMulti gives one value per column, in the order of list.
func SelectMulti(list []int) Selector {
	return pick(list)
}

type group []Selector

func (g group) Width() int {
	var n int
	for _, s := range g {
		n += s.Width()
	}
	return n
}

func (g group) columns() []int {
	var list []int
	for _, s := range g {
		list = append(list, s.columns()...)
	}
	return list
}

func (g group) Select(row []string) ([]float64, error) {
	var list []float64
	for _, s := range g {
		vs, err := s.Select(row)
		if err != nil {
			return nil, err
		}
		list = append(list, vs...)
	}
	return list, nil
}

type total []int

func (t total) Width() int      { return 1 }
func (t total) columns() []int { return t }

func (t total) Select(row []string) ([]float64, error) {
	vs, err := cellsAt(row, t)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return []float64{sum}, nil
}

type pick []int

func (p pick) Width() int      { return len(p) }
func (p pick) columns() []int { return p }

func (p pick) Select(row []string) ([]float64, error) {
	return cellsAt(row, p)
}

// ExpandRange gives every column from fst to lst included.
func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

// ParseRange reads a column range written as "fst-lst" or a single column.
func ParseRange(str string) ([]int, error) {
	fst, lst, ok := strings.Cut(strings.TrimSpace(str), "-")
	if !ok {
		lst = fst
	}
	lo, err := cast.ToIntE(strings.TrimSpace(fst))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", str, ErrIndex)
	}
	hi, err := cast.ToIntE(strings.TrimSpace(lst))
	if err != nil || lo < 0 || hi < lo {
		return nil, fmt.Errorf("%s: %w", str, ErrIndex)
	}
	return ExpandRange(lo, hi), nil
}

// checkColumns reports the first selected column missing from the header.
func checkColumns(header []string, sel Selector) error {
	for _, c := range sel.columns() {
		if c < 0 || c >= len(header) {
			return fmt.Errorf("column %d: %w", c, ErrIndex)
		}
	}
	return nil
}

func cellsAt(row []string, index []int) ([]float64, error) {
	list := make([]float64, 0, len(index))
	for _, i := range index {
		f, err := cellAt(row, i)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, nil
}

func cellAt(row []string, i int) (float64, error) {
	if i < 0 || i >= len(row) {
		return 0, fmt.Errorf("column %d: %w", i, ErrIndex)
	}
	str := strings.TrimSpace(row[i])
	if str == "" {
		return 0, fmt.Errorf("column %d: %w", i, ErrMissing)
	}
	return cast.ToFloat64E(str)
}
