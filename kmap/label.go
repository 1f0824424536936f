package kmap

import (
	"fmt"

	"github.com/crillab/kmap/logic"
)

// Term returns the product term covered by group: each variable whose value is the same
// in every cell of the group is a literal of the term, other variables are free.
// Literals follow the order of vars. A group spanning the whole map yields the empty term.
func (g Grid) Term(group GroupRect, vars logic.Vars) (logic.Term, error) {
	if len(vars) != g.N {
		return nil, fmt.Errorf("%w: %d variables for a %d-variable map", ErrInvalidDimension, len(vars), g.N)
	}
	if group.Cells.Len() == 0 {
		return nil, fmt.Errorf("%w: empty group", ErrUnsupportedPattern)
	}
	seen := make([][2]bool, g.N) // For each var, whether the values 0 and 1 were met
	for c := range group.Cells {
		bits, err := g.Bits(c)
		if err != nil {
			return nil, err
		}
		for i, b := range bits {
			seen[i][b] = true
		}
	}
	var res logic.Term
	for i, name := range vars {
		switch seen[i] {
		case [2]bool{true, false}:
			res = append(res, logic.Neg(name))
		case [2]bool{false, true}:
			res = append(res, logic.Pos(name))
		}
	}
	return res, nil
}

// Label returns the text of the product term covered by group, as in "AB'D".
// A group spanning the whole map is labeled "1".
func (g Grid) Label(group GroupRect, vars logic.Vars) (string, error) {
	t, err := g.Term(group, vars)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// TermLabel returns the label of group in a map over vars with orientation o.
func TermLabel(group GroupRect, vars logic.Vars, o Orientation) (string, error) {
	g, err := NewGrid(len(vars), o)
	if err != nil {
		return "", err
	}
	return g.Label(group, vars)
}
