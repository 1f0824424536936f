package kmap

import (
	"fmt"
	"sort"

	"github.com/crillab/kmap/logic"
	"github.com/samber/lo"
)

// GroupsFromExpr returns one group per term of the SOP formula e over vars, in the order of the terms.
// Variables absent from a term are free: the group covers every cell consistent with the literals of the term.
// The constant true yields a single group spanning the whole map, the constant false yields no group.
//
// This is preferred to SelectGroups when a simplified formula is known, since each
// group then matches one printed term.
func (g Grid) GroupsFromExpr(e logic.Expr, vars logic.Vars) ([]GroupRect, error) {
	if len(vars) != g.N {
		return nil, fmt.Errorf("%w: %d variables for a %d-variable map", ErrInvalidDimension, len(vars), g.N)
	}
	if err := logic.CheckVars(e, vars); err != nil {
		return nil, err
	}
	if e.IsFalse() {
		return nil, nil
	}
	if e.IsTrue() {
		return []GroupRect{NewGroupRect(Rect{R0: 0, Rows: g.Rows, C0: 0, Cols: g.Cols}, g.Rows, g.Cols)}, nil
	}
	res := make([]GroupRect, 0, len(e))
	for _, t := range e {
		group, err := g.groupFromTerm(t, vars)
		if err != nil {
			return nil, err
		}
		res = append(res, group)
	}
	return res, nil
}

func (g Grid) groupFromTerm(t logic.Term, vars logic.Vars) (GroupRect, error) {
	mins, err := t.Minterms(vars)
	if err != nil {
		return GroupRect{}, err
	}
	if len(mins) == 0 {
		return GroupRect{}, fmt.Errorf("%w: term %v is contradictory", ErrUnsupportedPattern, t)
	}
	cells, err := g.Cells(mins)
	if err != nil {
		return GroupRect{}, err
	}
	coords := cells.Sorted()
	r0, rows, err := contiguousSpan(lo.Map(coords, func(c Coord, _ int) int { return c.Row }), g.Rows)
	if err != nil {
		return GroupRect{}, fmt.Errorf("%w: rows of term %v: %v", ErrUnsupportedPattern, t, err)
	}
	c0, cols, err := contiguousSpan(lo.Map(coords, func(c Coord, _ int) int { return c.Col }), g.Cols)
	if err != nil {
		return GroupRect{}, fmt.Errorf("%w: columns of term %v: %v", ErrUnsupportedPattern, t, err)
	}
	group := NewGroupRect(Rect{R0: r0, Rows: rows, C0: c0, Cols: cols}, g.Rows, g.Cols)
	if !group.Cells.Equal(cells) {
		return GroupRect{}, fmt.Errorf("%w: term %v does not cover a rectangle", ErrUnsupportedPattern, t)
	}
	return group, nil
}

// contiguousSpan returns the start and the length of the run, wrapping modulo size,
// made of exactly the given indices. The length must be a power of two.
func contiguousSpan(indices []int, size int) (start, length int, err error) {
	unique := lo.Uniq(indices)
	sort.Ints(unique)
	length = len(unique)
	if length&(length-1) != 0 {
		return 0, 0, fmt.Errorf("%d indices do not make a power of two", length)
	}
	for start = 0; start < size; start++ {
		ok := true
		for offset := 0; offset < length; offset++ {
			if !lo.Contains(unique, (start+offset)%size) {
				ok = false
				break
			}
		}
		if ok {
			return start, length, nil
		}
	}
	return 0, 0, fmt.Errorf("indices %v are not contiguous", unique)
}

// ExpressionToGroups returns the groups of the terms of e in a map over vars with orientation o.
// See Grid.GroupsFromExpr.
func ExpressionToGroups(e logic.Expr, vars logic.Vars, o Orientation) ([]GroupRect, error) {
	g, err := NewGrid(len(vars), o)
	if err != nil {
		return nil, err
	}
	return g.GroupsFromExpr(e, vars)
}
