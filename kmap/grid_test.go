package kmap

import (
	"math/bits"
	"testing"

	"github.com/crillab/kmap/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orientations = []Orientation{ColsAB, RowsAB}

func TestDimensions(t *testing.T) {
	for n, want := range map[int][2]int{2: {2, 2}, 3: {2, 4}, 4: {4, 4}} {
		rows, cols, err := Dimensions(n)
		require.NoError(t, err)
		assert.Equal(t, want, [2]int{rows, cols}, "dimensions for %d variables", n)
	}
	for _, n := range []int{-1, 0, 1, 5, 16} {
		_, _, err := Dimensions(n)
		assert.ErrorIs(t, err, ErrInvalidDimension, "%d variables", n)
		_, err = NewGrid(n, ColsAB)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		_, err = IndexToCoord(n, 0, ColsAB)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
}

func TestCoordBijection(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for _, o := range orientations {
			g, err := NewGrid(n, o)
			require.NoError(t, err)
			seen := make(CellSet)
			for idx := 0; idx < 1<<uint(n); idx++ {
				c, err := g.Coord(idx)
				require.NoError(t, err)
				assert.True(t, g.Contains(c), "cell %v of minterm %d", c, idx)
				assert.False(t, seen.Has(c), "cell %v used twice", c)
				seen.Add(c)
				back, err := g.Index(c)
				require.NoError(t, err)
				assert.Equal(t, idx, back, "n=%d, %v", n, o)
			}
			assert.Equal(t, g.Size(), seen.Len())
		}
	}
}

func TestGrayAdjacency(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for _, o := range orientations {
			g, err := NewGrid(n, o)
			require.NoError(t, err)
			for r := 0; r < g.Rows; r++ {
				for c := 0; c < g.Cols; c++ {
					idx, err := g.Index(Coord{r, c})
					require.NoError(t, err)
					neighbours := []Coord{
						{(r + 1) % g.Rows, c},
						{(r + g.Rows - 1) % g.Rows, c},
						{r, (c + 1) % g.Cols},
						{r, (c + g.Cols - 1) % g.Cols},
					}
					for _, nb := range neighbours {
						other, err := g.Index(nb)
						require.NoError(t, err)
						assert.Equal(t, 1, bits.OnesCount(uint(idx^other)), "cells %v and %v, n=%d, %v", Coord{r, c}, nb, n, o)
					}
				}
			}
		}
	}
}

func TestCoord(t *testing.T) {
	tests := []struct {
		n    int
		o    Orientation
		idx  int
		want Coord
	}{
		{2, ColsAB, 2, Coord{0, 1}},
		{2, RowsAB, 2, Coord{1, 0}},
		{2, ColsAB, 3, Coord{1, 1}},
		{3, ColsAB, 5, Coord{1, 1}},
		{3, RowsAB, 6, Coord{1, 3}},
		{3, ColsAB, 2, Coord{0, 3}},
		{4, ColsAB, 13, Coord{1, 2}},
		{4, RowsAB, 13, Coord{2, 1}},
		{4, ColsAB, 10, Coord{3, 3}},
	}
	for _, test := range tests {
		c, err := IndexToCoord(test.n, test.idx, test.o)
		require.NoError(t, err)
		assert.Equal(t, test.want, c, "minterm %d, n=%d, %v", test.idx, test.n, test.o)
		idx, err := CoordToIndex(test.want, test.n, test.o)
		require.NoError(t, err)
		assert.Equal(t, test.idx, idx)
	}
	vals, err := CoordToBits(Coord{1, 2}, 4, ColsAB)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 1}, vals)
}

func TestCoordErrors(t *testing.T) {
	g, err := NewGrid(4, ColsAB)
	require.NoError(t, err)
	_, err = g.Coord(16)
	assert.ErrorIs(t, err, logic.ErrOutOfRange)
	_, err = g.Coord(-1)
	assert.ErrorIs(t, err, logic.ErrOutOfRange)
	_, err = g.Bits(Coord{4, 0})
	assert.ErrorIs(t, err, logic.ErrOutOfRange)
	_, err = g.Cells([]int{1, 17})
	assert.ErrorIs(t, err, logic.ErrOutOfRange)
	_, err = NewGrid(3, Orientation(7))
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	vars, _ := logic.Variables(4)
	g, _ := NewGrid(4, ColsAB)
	assert.Equal(t, []string{"CD=00", "CD=01", "CD=11", "CD=10"}, g.RowLabels(vars))
	assert.Equal(t, []string{"AB=00", "AB=01", "AB=11", "AB=10"}, g.ColLabels(vars))
	g, _ = NewGrid(4, RowsAB)
	assert.Equal(t, []string{"AB=00", "AB=01", "AB=11", "AB=10"}, g.RowLabels(vars))
	vars, _ = logic.Variables(2)
	g, _ = NewGrid(2, ColsAB)
	assert.Equal(t, []string{"B=0", "B=1"}, g.RowLabels(vars))
	assert.Equal(t, []string{"A=0", "A=1"}, g.ColLabels(vars))
	vars, _ = logic.Variables(3)
	g, _ = NewGrid(3, RowsAB)
	assert.Equal(t, []string{"A=0", "A=1"}, g.RowLabels(vars))
	assert.Equal(t, []string{"BC=00", "BC=01", "BC=11", "BC=10"}, g.ColLabels(vars))
}

func TestOrientationString(t *testing.T) {
	for _, o := range orientations {
		parsed, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	_, err := ParseOrientation("diagonal")
	assert.Error(t, err)
}
