package kmap

import (
	"fmt"

	"github.com/crillab/kmap/logic"
	"github.com/samber/lo"
)

func checkSize(nrows, ncols int) error {
	valid := func(n int) bool { return n > 0 && n <= 8 && n&(n-1) == 0 }
	if !valid(nrows) || !valid(ncols) {
		return fmt.Errorf("%w: %dx%d map", ErrInvalidDimension, nrows, ncols)
	}
	return nil
}

func checkCells(nrows, ncols int, cells CellSet) error {
	for _, c := range cells.Sorted() {
		if c.Row < 0 || c.Row >= nrows || c.Col < 0 || c.Col >= ncols {
			return fmt.Errorf("%w: cell %v outside of a %dx%d map", logic.ErrOutOfRange, c, nrows, ncols)
		}
	}
	return nil
}

// candidates returns the groups covering only cells of ones, in the order of AllRects.
// Placements covering the same cells as a previous one are dropped.
func candidates(nrows, ncols int, ones CellSet) []GroupRect {
	var res []GroupRect
	for _, r := range AllRects(nrows, ncols) {
		g := NewGroupRect(r, nrows, ncols)
		if g.Cells.Len() != 0 && g.Cells.SubsetOf(ones) {
			res = append(res, g)
		}
	}
	return lo.UniqBy(res, func(g GroupRect) uint64 { return g.key(ncols) })
}

// SelectGroups returns groups covering exactly the cells of ones in a map of size nrows x ncols.
// Every group is a valid rectangle made only of cells of ones.
//
// Groups are chosen greedily. Essential groups, i.e the only candidate covering some cell,
// are selected first. Then, as long as some cells are uncovered, the candidate covering
// the most uncovered cells is selected, larger groups winning ties.
// The result is a valid cover, but not necessarily a minimal one; see SelectMinimal.
// Groups are returned in selection order.
func SelectGroups(nrows, ncols int, ones CellSet) ([]GroupRect, error) {
	if err := checkSize(nrows, ncols); err != nil {
		return nil, err
	}
	if err := checkCells(nrows, ncols, ones); err != nil {
		return nil, err
	}
	if ones.Len() == 0 {
		return nil, nil
	}
	cands := candidates(nrows, ncols, ones)
	var chosen []GroupRect
	selected := make([]bool, len(cands))
	covered := make(CellSet)
	choose := func(i int) {
		selected[i] = true
		chosen = append(chosen, cands[i])
		for c := range cands[i].Cells {
			covered.Add(c)
		}
	}
	// Essential groups. Essentials are looked for among the cells still uncovered at the
	// beginning of each pass; a pass that adds no new group ends the phase.
	for {
		var essentials []int
		for _, c := range ones.Minus(covered).Sorted() {
			containing := -1
			nb := 0
			for i, g := range cands {
				if g.Cells.Has(c) {
					containing = i
					nb++
				}
			}
			if nb == 1 {
				essentials = append(essentials, containing)
			}
		}
		added := false
		for _, i := range essentials {
			if !selected[i] {
				choose(i)
				added = true
			}
		}
		if !added {
			break
		}
	}
	// Greedy completion.
	for remaining := ones.Minus(covered); remaining.Len() != 0; remaining = ones.Minus(covered) {
		best, bestOverlap := -1, 0
		for i, g := range cands {
			if overlap := g.Cells.Overlap(remaining); overlap > bestOverlap {
				best, bestOverlap = i, overlap
			}
		}
		if best == -1 {
			break
		}
		choose(best)
	}
	return chosen, nil
}

// SelectGroups returns groups covering exactly the given cells of g.
// See the package-level SelectGroups function.
func (g Grid) SelectGroups(ones CellSet) ([]GroupRect, error) {
	return SelectGroups(g.Rows, g.Cols, ones)
}
