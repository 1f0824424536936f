package qm

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Cover returns a minimum subset of primes covering all of the given minterms.
// The subset has as few implicants as possible and, among those, as few literals as possible.
// Essential implicants are selected first; the remaining covering problem
// (Petrick's problem) is solved exactly with ExactCover.
// The result is sorted by increasing value, then by decreasing size, so that terms
// fixing the first variables come first.
func Cover(primes []Implicant, ones []int) ([]Implicant, error) {
	var chosen []Implicant
	taken := make(map[Implicant]bool)
	for _, m := range ones {
		covering := lo.Filter(primes, func(imp Implicant, _ int) bool { return imp.Covers(m) })
		if len(covering) == 0 {
			return nil, fmt.Errorf("minterm %d is not covered by any implicant", m)
		}
		if len(covering) == 1 && !taken[covering[0]] {
			taken[covering[0]] = true
			chosen = append(chosen, covering[0])
		}
	}
	remaining := lo.Filter(ones, func(m int, _ int) bool {
		return !lo.SomeBy(chosen, func(imp Implicant) bool { return imp.Covers(m) })
	})
	if len(remaining) != 0 {
		extra, err := petrick(primes, taken, remaining)
		if err != nil {
			return nil, err
		}
		chosen = append(chosen, extra...)
	}
	sort.Slice(chosen, func(i, j int) bool {
		if chosen[i].Value != chosen[j].Value {
			return chosen[i].Value < chosen[j].Value
		}
		if chosen[i].Literals() != chosen[j].Literals() {
			return chosen[i].Literals() < chosen[j].Literals()
		}
		return chosen[i].Care > chosen[j].Care
	})
	return chosen, nil
}

// petrick selects an optimal subset of the non-taken primes covering all minterms in remaining.
// Fewer implicants are better, then fewer literals.
func petrick(primes []Implicant, taken map[Implicant]bool, remaining []int) ([]Implicant, error) {
	cands := lo.Filter(primes, func(imp Implicant, _ int) bool {
		return !taken[imp] && lo.SomeBy(remaining, func(m int) bool { return imp.Covers(m) })
	})
	indices, ok := ExactCover(cands, remaining, Implicant.Covers, Implicant.Literals)
	if !ok {
		return nil, fmt.Errorf("could not find a cover for minterms %v", remaining)
	}
	res := make([]Implicant, len(indices))
	for i, idx := range indices {
		res[i] = cands[idx]
	}
	return res, nil
}
