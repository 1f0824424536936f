package kmap

import (
	"errors"
	"testing"
	"time"

	"github.com/crillab/kmap/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMinterms(t *testing.T) {
	res, err := FromMinterms(4, []int{1, 3, 7, 11, 15}, []int{0, 2}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "A'B' + CD", res.SOPText())
	assert.Equal(t, []int{1, 3, 7, 11, 15}, res.Minterms)
	assert.Equal(t, []int{0, 2}, res.DontCares)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, "A'B'", res.Groups[0].Label)
	assert.Equal(t, "CD", res.Groups[1].Label)
	assert.Equal(t, 7, res.Ones().Len()+res.DontCareCells().Len())
	pos, err := logic.TruthMinterms(res.POS, res.Vars)
	require.NoError(t, err)
	for _, m := range res.Minterms {
		assert.Contains(t, pos, m)
	}
	assert.Subset(t, append(append([]int{}, res.Minterms...), res.DontCares...), pos)
}

func TestFromMintermsSingleGroup(t *testing.T) {
	// With A along the columns, B=1 is the second row; with A along the rows, it is the second column.
	wantCells := map[Orientation]CellSet{
		ColsAB: NewCellSet(Coord{1, 0}, Coord{1, 1}),
		RowsAB: NewCellSet(Coord{0, 1}, Coord{1, 1}),
	}
	for o, want := range wantCells {
		res, err := FromMinterms(2, []int{3, 1, 1}, []int{1}, Options{Orientation: o})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, res.Minterms)
		assert.Empty(t, res.DontCares)
		assert.Equal(t, "B", res.SOPText())
		assert.Equal(t, "(B)", res.POSText())
		require.Len(t, res.Groups, 1)
		assert.Equal(t, "B", res.Groups[0].Label)
		assert.True(t, res.Groups[0].Cells.Equal(want), "%v: got cells %v", o, res.Groups[0].Cells)
	}
}

// within fails t if f does not return before d.
func within(t *testing.T, d time.Duration, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("no answer after %v", d)
	}
}

func TestFromMintermsCyclic(t *testing.T) {
	for _, s := range []Strategy{StrategyExpression, StrategyGreedy, StrategyExact} {
		var res *Result
		var err error
		within(t, 5*time.Second, func() {
			res, err = FromMinterms(3, []int{1, 2, 4, 5, 6}, nil, Options{Strategy: s})
		})
		require.NoError(t, err, "strategy %v", s)
		assert.Equal(t, "B'C + BC' + AC'", res.SOPText())
		assert.Equal(t, "(A + B + C)(B' + C')", res.POSText())
		assert.Len(t, res.Groups, 3, "strategy %v", s)
	}
	var res *Result
	var err error
	within(t, 5*time.Second, func() {
		res, err = FromMinterms(3, []int{2, 3, 5}, nil, Options{Strategy: StrategyExact})
	})
	require.NoError(t, err)
	assert.Len(t, res.Groups, 2)
}

func TestFromMintermsStrategies(t *testing.T) {
	evens := []int{0, 2, 4, 6, 8, 10, 12, 14}
	for _, s := range []Strategy{StrategyExpression, StrategyGreedy, StrategyExact} {
		for _, o := range orientations {
			res, err := FromMinterms(4, evens, nil, Options{Orientation: o, Strategy: s})
			require.NoError(t, err)
			assert.Equal(t, "D'", res.SOPText())
			assert.Equal(t, "(D')", res.POSText())
			require.Len(t, res.Groups, 1, "strategy %v", s)
			assert.Equal(t, "D'", res.Groups[0].Label)
			assert.Equal(t, logic.Term{logic.Neg("D")}, res.Groups[0].Term)
		}
	}
	_, err := FromMinterms(4, evens, nil, Options{Strategy: Strategy(12)})
	assert.Error(t, err)
}

func TestFromMintermsConstants(t *testing.T) {
	res, err := FromMinterms(3, nil, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "0", res.SOPText())
	assert.Equal(t, "0", res.POSText())
	assert.Empty(t, res.Groups)
	res, err = FromMinterms(3, nil, []int{0, 1, 2, 3, 4, 5, 6, 7}, Options{Strategy: StrategyGreedy})
	require.NoError(t, err)
	assert.Equal(t, "0", res.SOPText())
	assert.Empty(t, res.Groups)
	res, err = FromMinterms(3, []int{0, 1, 2, 3, 4, 5, 6, 7}, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "1", res.SOPText())
	assert.Equal(t, "1", res.POSText())
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "1", res.Groups[0].Label)
}

func TestFromMintermsErrors(t *testing.T) {
	_, err := FromMinterms(3, []int{1, 9}, nil, Options{})
	require.ErrorIs(t, err, logic.ErrOutOfRange)
	var rangeErr *logic.RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, []int{9}, rangeErr.Values)
	assert.Contains(t, err.Error(), "9")
	_, err = FromMinterms(3, []int{1}, []int{-2}, Options{})
	assert.ErrorIs(t, err, logic.ErrOutOfRange)
	_, err = FromMinterms(5, []int{1}, nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = FromMinterms(1, nil, nil, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestFromFormula(t *testing.T) {
	f, err := logic.ParseString("A'B + AB'C")
	require.NoError(t, err)
	res, err := FromFormula(3, f, Options{Strategy: StrategyExact})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5}, res.Minterms)
	assert.Equal(t, "A'B + AB'C", res.SOPText())
	pos, err := logic.TruthMinterms(res.POS, res.Vars)
	require.NoError(t, err)
	assert.Equal(t, res.Minterms, pos)
	assert.Len(t, res.Groups, 2)

	g, _ := logic.ParseString("A + D")
	_, err = FromFormula(3, g, Options{})
	assert.ErrorIs(t, err, logic.ErrVariableMismatch)
	_, err = FromFormula(5, f, Options{})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

type failingSimplifier struct{}

func (failingSimplifier) BuildFromMinterms(logic.Vars, []int, []int) (logic.Expr, error) {
	return nil, errors.New("no SOP today")
}

func (failingSimplifier) BuildPOSFromMinterms(logic.Vars, []int, []int) (logic.CNF, error) {
	return nil, errors.New("no POS today")
}

func TestFromMintermsSimplifierError(t *testing.T) {
	_, err := FromMinterms(2, []int{1}, nil, Options{Simplifier: failingSimplifier{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SOP today")
}

func TestStrategyString(t *testing.T) {
	for _, s := range []Strategy{StrategyExpression, StrategyGreedy, StrategyExact} {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseStrategy("random")
	assert.Error(t, err)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
