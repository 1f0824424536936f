package kmap

import (
	"fmt"
	"math/bits"

	"github.com/crillab/kmap/qm"
	"github.com/samber/lo"
)

// SelectMinimal returns a minimum number of groups covering exactly the cells of ones
// in a map of size nrows x ncols. Among covers of minimum size, one with the largest groups
// (i.e the fewest literals) is returned.
// Only maximal candidates, i.e groups that are not part of a larger valid group, are considered.
// Groups are returned in the order of AllRects.
func SelectMinimal(nrows, ncols int, ones CellSet) ([]GroupRect, error) {
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
	primes := lo.Filter(cands, func(g GroupRect, _ int) bool {
		return !lo.SomeBy(cands, func(other GroupRect) bool {
			return other.Cells.Len() > g.Cells.Len() && g.Cells.SubsetOf(other.Cells)
		})
	})
	// A group of 2^k cells over a map of 2^n cells is a term with n-k literals.
	n := bits.TrailingZeros(uint(nrows * ncols))
	literals := func(g GroupRect) int { return n - bits.TrailingZeros(uint(g.Cells.Len())) }
	covers := func(g GroupRect, c Coord) bool { return g.Cells.Has(c) }
	indices, ok := qm.ExactCover(primes, ones.Sorted(), covers, literals)
	if !ok {
		return nil, fmt.Errorf("could not find a cover for cells %v", ones)
	}
	res := make([]GroupRect, len(indices))
	for i, idx := range indices {
		res[i] = primes[idx]
	}
	return res, nil
}

// SelectMinimal returns a minimum number of groups covering exactly the given cells of g.
// See the package-level SelectMinimal function.
func (g Grid) SelectMinimal(ones CellSet) ([]GroupRect, error) {
	return SelectMinimal(g.Rows, g.Cols, ones)
}
