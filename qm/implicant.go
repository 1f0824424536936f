package qm

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/crillab/kmap/logic"
)

// An Implicant is a cube over n variables.
// Bit i of Care is set iff variable n-1-i is fixed, in which case bit i of Value is its value.
// Bits of Value outside of Care are always 0.
type Implicant struct {
	Value uint
	Care  uint
}

// Covers returns true iff the minterm m belongs to imp.
func (imp Implicant) Covers(m int) bool {
	return uint(m)&imp.Care == imp.Value
}

// Literals returns the number of literals of the product term associated with imp.
func (imp Implicant) Literals() int {
	return bits.OnesCount(imp.Care)
}

// Term returns the product term associated with imp.
func (imp Implicant) Term(vars logic.Vars) logic.Term {
	return logic.CubeTerm(imp.Value, imp.Care, vars)
}

// Pattern returns the usual tabular notation of imp over n variables, as in "1-0".
func (imp Implicant) Pattern(n int) string {
	var sb strings.Builder
	for i := n - 1; i >= 0; i-- {
		bit := uint(1) << uint(i)
		switch {
		case imp.Care&bit == 0:
			sb.WriteByte('-')
		case imp.Value&bit != 0:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (imp Implicant) String() string {
	return fmt.Sprintf("{%#x/%#x}", imp.Value, imp.Care)
}

// Primes returns all prime implicants of the function over n variables whose on-set is ones
// and whose don't care set is dontcares.
// Implicants made only of don't cares are discarded.
// The result is sorted by increasing number of literals, then by value.
func Primes(n int, ones, dontcares []int) []Implicant {
	full := uint(1)<<uint(n) - 1
	current := make(map[Implicant]bool)
	for _, m := range ones {
		current[Implicant{Value: uint(m), Care: full}] = false
	}
	for _, m := range dontcares {
		current[Implicant{Value: uint(m), Care: full}] = false
	}
	var primes []Implicant
	for len(current) != 0 {
		next := make(map[Implicant]bool)
		cubes := sortedKeys(current)
		for i, c1 := range cubes {
			for _, c2 := range cubes[i+1:] {
				if c1.Care != c2.Care {
					continue
				}
				diff := c1.Value ^ c2.Value
				if bits.OnesCount(diff) != 1 {
					continue
				}
				next[Implicant{Value: c1.Value &^ diff, Care: c1.Care &^ diff}] = false
				current[c1] = true
				current[c2] = true
			}
		}
		for _, c := range cubes {
			if !current[c] {
				primes = append(primes, c)
			}
		}
		current = next
	}
	primes = useful(primes, ones)
	sortImplicants(primes)
	return primes
}

// useful returns the implicants covering at least one of the given minterms.
func useful(imps []Implicant, ones []int) []Implicant {
	var res []Implicant
	for _, imp := range imps {
		for _, m := range ones {
			if imp.Covers(m) {
				res = append(res, imp)
				break
			}
		}
	}
	return res
}

func sortedKeys(set map[Implicant]bool) []Implicant {
	res := make([]Implicant, 0, len(set))
	for imp := range set {
		res = append(res, imp)
	}
	sortImplicants(res)
	return res
}

func sortImplicants(imps []Implicant) {
	sort.Slice(imps, func(i, j int) bool {
		li, lj := imps[i].Literals(), imps[j].Literals()
		if li != lj {
			return li < lj
		}
		if imps[i].Value != imps[j].Value {
			return imps[i].Value < imps[j].Value
		}
		return imps[i].Care < imps[j].Care
	})
}
