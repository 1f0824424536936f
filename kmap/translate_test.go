package kmap

import (
	"testing"

	"github.com/crillab/kmap/logic"
	"github.com/crillab/kmap/qm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsFromExpr(t *testing.T) {
	vars, _ := logic.Variables(4)
	g, _ := NewGrid(4, ColsAB)
	e := logic.Expr{
		{logic.Neg("B"), logic.Neg("D")},
		{logic.Pos("A"), logic.Pos("C"), logic.Pos("D")},
	}
	groups, err := g.GroupsFromExpr(e, vars)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, Rect{R0: 3, Rows: 2, C0: 3, Cols: 2}, groups[0].Rect)
	assert.Equal(t, Rect{R0: 2, Rows: 1, C0: 2, Cols: 2}, groups[1].Rect)
	for i, group := range groups {
		label, err := g.Label(group, vars)
		require.NoError(t, err)
		assert.Equal(t, e[i].String(), label)
	}
}

func TestGroupsFromExprConstants(t *testing.T) {
	vars, _ := logic.Variables(3)
	g, _ := NewGrid(3, RowsAB)
	groups, err := g.GroupsFromExpr(logic.ExprFalse, vars)
	require.NoError(t, err)
	assert.Empty(t, groups)
	groups, err = g.GroupsFromExpr(logic.ExprTrue, vars)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 8, groups[0].Cells.Len())
}

func TestGroupsFromExprErrors(t *testing.T) {
	vars, _ := logic.Variables(3)
	g, _ := NewGrid(3, ColsAB)
	_, err := g.GroupsFromExpr(logic.Expr{{logic.Pos("A"), logic.Neg("A")}}, vars)
	assert.ErrorIs(t, err, ErrUnsupportedPattern)
	_, err = g.GroupsFromExpr(logic.Expr{{logic.Pos("D")}}, vars)
	assert.ErrorIs(t, err, logic.ErrVariableMismatch)
	vars4, _ := logic.Variables(4)
	_, err = g.GroupsFromExpr(logic.Expr{{logic.Pos("A")}}, vars4)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestGroupsFromSimplifiedExpr(t *testing.T) {
	simp := qm.New()
	for n := 2; n <= 4; n++ {
		vars, _ := logic.Variables(n)
		for _, o := range orientations {
			g, _ := NewGrid(n, o)
			for _, mask := range sampleMasks(n) {
				mins := mintermsOf(n, mask)
				sop, err := simp.BuildFromMinterms(vars, mins, nil)
				require.NoError(t, err)
				groups, err := ExpressionToGroups(sop, vars, o)
				require.NoError(t, err, "SOP %v", sop)
				ones, _ := g.Cells(mins)
				assertCover(t, g, ones, groups)
				if sop.IsTrue() {
					continue
				}
				require.Len(t, groups, len(sop))
				for i, group := range groups {
					label, err := g.Label(group, vars)
					require.NoError(t, err)
					assert.Equal(t, sop[i].String(), label)
				}
			}
		}
	}
}

func TestContiguousSpan(t *testing.T) {
	tests := []struct {
		indices []int
		size    int
		start   int
		length  int
		ok      bool
	}{
		{[]int{0, 1}, 4, 0, 2, true},
		{[]int{3, 0, 3}, 4, 3, 2, true},
		{[]int{1, 2, 3, 0}, 4, 0, 4, true},
		{[]int{1}, 2, 1, 1, true},
		{[]int{0, 2}, 4, 0, 0, false},
		{[]int{0, 1, 2}, 4, 0, 0, false},
	}
	for _, test := range tests {
		start, length, err := contiguousSpan(test.indices, test.size)
		if !test.ok {
			assert.Error(t, err, "indices %v", test.indices)
			continue
		}
		require.NoError(t, err, "indices %v", test.indices)
		assert.Equal(t, [2]int{test.start, test.length}, [2]int{start, length}, "indices %v", test.indices)
	}
}
