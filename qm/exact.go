package qm

import (
	"sort"

	"github.com/samber/lo"
)

// ExactCover returns the indices, in increasing order, of a smallest subset of cands such that every
// element of elts is covered by at least one selected candidate.
// Among subsets of minimum size, one with the lowest total cost is returned; remaining ties go
// to the candidates found first. ok is false if some element is not covered by any candidate.
//
// The search is a depth-first branch and bound: it branches on the uncovered element with the
// fewest candidates, cheapest candidates first, and prunes any partial selection that cannot
// beat the best cover found so far. Covering problems met on maps of up to 4 variables
// have at most a few dozen candidates and are solved instantly.
func ExactCover[C, E any](cands []C, elts []E, covers func(C, E) bool, cost func(C) int) (res []int, ok bool) {
	costs := lo.Map(cands, func(c C, _ int) int { return cost(c) })
	s := coverSearch{
		coveredBy: make([][]int, len(elts)),
		eltsOf:    make([][]int, len(cands)),
		costs:     costs,
		count:     make([]int, len(elts)),
		bestSize:  len(cands) + 1,
	}
	for i, e := range elts {
		for j, c := range cands {
			if covers(c, e) {
				s.coveredBy[i] = append(s.coveredBy[i], j)
				s.eltsOf[j] = append(s.eltsOf[j], i)
			}
		}
		if len(s.coveredBy[i]) == 0 {
			return nil, false
		}
		by := s.coveredBy[i]
		sort.SliceStable(by, func(a, b int) bool { return costs[by[a]] < costs[by[b]] })
	}
	s.search(nil, 0, len(elts))
	sort.Ints(s.best)
	return s.best, true
}

type coverSearch struct {
	coveredBy [][]int // For each element, the candidates covering it, cheapest first
	eltsOf    [][]int // For each candidate, the elements it covers
	costs     []int
	count     []int // For each element, the number of selected candidates covering it
	best      []int
	bestSize  int
	bestCost  int
}

func (s *coverSearch) search(chosen []int, cost, uncovered int) {
	if uncovered == 0 {
		if len(chosen) < s.bestSize || (len(chosen) == s.bestSize && cost < s.bestCost) {
			s.best = append([]int(nil), chosen...)
			s.bestSize, s.bestCost = len(chosen), cost
		}
		return
	}
	if len(chosen)+1 > s.bestSize {
		return
	}
	pick := -1
	for i, by := range s.coveredBy {
		if s.count[i] == 0 && (pick == -1 || len(by) < len(s.coveredBy[pick])) {
			pick = i
		}
	}
	for _, j := range s.coveredBy[pick] {
		if len(chosen)+1 == s.bestSize && cost+s.costs[j] >= s.bestCost {
			continue
		}
		newly := 0
		for _, e := range s.eltsOf[j] {
			if s.count[e] == 0 {
				newly++
			}
			s.count[e]++
		}
		s.search(append(chosen, j), cost+s.costs[j], uncovered-newly)
		for _, e := range s.eltsOf[j] {
			s.count[e]--
		}
	}
}
