package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	row := []string{"a", "1", " 2.5 ", "3"}
	tests := []struct {
		Name     string
		Selector Selector
		Want     []float64
		Columns  []int
	}{
		{Name: "single", Selector: SelectSingle(1), Want: []float64{1}, Columns: []int{1}},
		{Name: "multi", Selector: SelectMulti([]int{3, 2}), Want: []float64{3, 2.5}, Columns: []int{3, 2}},
		{Name: "sum", Selector: SelectSum(ExpandRange(1, 3)), Want: []float64{6.5}, Columns: []int{1, 2, 3}},
		{
			Name:     "combined",
			Selector: Combined(SelectSingle(3), SelectSum([]int{1, 2})),
			Want:     []float64{3, 3.5},
			Columns:  []int{3, 1, 2},
		},
	}
	for _, tt := range tests {
		got, err := tt.Selector.Select(row)
		require.NoError(t, err, tt.Name)
		assert.Equal(t, tt.Want, got, tt.Name)
		assert.Equal(t, tt.Columns, tt.Selector.columns(), tt.Name)
	}
}

func TestSelectorErrors(t *testing.T) {
	row := []string{"a", "x", ""}

	_, err := SelectSingle(5).Select(row)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = SelectSingle(-1).Select(row)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = SelectSum([]int{2}).Select(row)
	assert.ErrorIs(t, err, ErrMissing)

	_, err = SelectSingle(1).Select(row)
	assert.Error(t, err)
}

func TestExpandRange(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, ExpandRange(2, 4))
	assert.Empty(t, ExpandRange(4, 2))
}

func TestSelectorWidth(t *testing.T) {
	assert.Equal(t, 1, SelectSingle(2).Width())
	assert.Equal(t, 1, SelectSum([]int{1, 2, 3}).Width())
	assert.Equal(t, 2, SelectMulti([]int{1, 2}).Width())
	assert.Equal(t, 3, Combined(SelectMulti([]int{1, 2}), SelectSum([]int{3, 4})).Width())
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		Input string
		Want  []int
		Fail  bool
	}{
		{Input: "2-4", Want: []int{2, 3, 4}},
		{Input: " 1 - 2 ", Want: []int{1, 2}},
		{Input: "3", Want: []int{3}},
		{Input: "4-2", Fail: true},
		{Input: "-1", Fail: true},
		{Input: "a-b", Fail: true},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.Input)
		if tt.Fail {
			assert.ErrorIs(t, err, ErrIndex, tt.Input)
			continue
		}
		require.NoError(t, err, tt.Input)
		assert.Equal(t, tt.Want, got, tt.Input)
	}
}

func TestCheckColumns(t *testing.T) {
	header := []string{"x", "a", "b"}
	assert.NoError(t, checkColumns(header, Combined(SelectSingle(1), SelectSum([]int{1, 2}))))
	assert.ErrorIs(t, checkColumns(header, SelectMulti([]int{1, 3})), ErrIndex)
}
