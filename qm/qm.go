package qm

import (
	"fmt"

	"github.com/crillab/kmap/logic"
	"github.com/samber/lo"
)

// A Form is the normal form a formula is simplified into.
type Form int

const (
	// SOP is the sum of products, or disjunctive normal form.
	SOP Form = iota
	// POS is the product of sums, or conjunctive normal form.
	POS
)

func (f Form) String() string {
	switch f {
	case SOP:
		return "SOP"
	case POS:
		return "POS"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// A Simplifier reduces boolean functions to minimal two-level forms.
// A Simplifier holds no state between calls and can safely be shared between goroutines.
type Simplifier struct {
	// Check makes the simplifier verify, with a BDD, that each result agrees with its input.
	Check bool
}

// New returns a simplifier that checks its results.
func New() *Simplifier {
	return &Simplifier{Check: true}
}

// Simplify returns a formula equivalent to f over vars, in minimal SOP (a logic.Expr)
// or minimal POS (a logic.CNF) form.
func (s *Simplifier) Simplify(f logic.Formula, vars logic.Vars, form Form) (logic.Formula, error) {
	ones, err := logic.TruthMinterms(f, vars)
	if err != nil {
		return nil, err
	}
	switch form {
	case SOP:
		return s.BuildFromMinterms(vars, ones, nil)
	case POS:
		return s.BuildPOSFromMinterms(vars, ones, nil)
	default:
		return nil, fmt.Errorf("invalid form %v", form)
	}
}

// BuildFromMinterms returns a minimal SOP formula that is true on every index in ones and false on every
// index that is neither in ones nor in dontcares.
// Indices listed in both ones and dontcares are considered as ones.
func (s *Simplifier) BuildFromMinterms(vars logic.Vars, ones, dontcares []int) (logic.Expr, error) {
	ones, dontcares, err := normalize(vars, ones, dontcares)
	if err != nil {
		return nil, err
	}
	n := len(vars)
	cover, err := Cover(Primes(n, ones, dontcares), ones)
	if err != nil {
		return nil, err
	}
	var res logic.Expr
	for _, imp := range cover {
		res = append(res, imp.Term(vars))
	}
	if s.Check {
		if err := s.check(res, ones, dontcares, vars); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// BuildPOSFromMinterms is like BuildFromMinterms, but returns a minimal POS formula.
// It is computed as the dual of the minimal SOP of the complement of the function.
func (s *Simplifier) BuildPOSFromMinterms(vars logic.Vars, ones, dontcares []int) (logic.CNF, error) {
	ones, dontcares, err := normalize(vars, ones, dontcares)
	if err != nil {
		return nil, err
	}
	n := len(vars)
	zeros := logic.Complement(n, ones, dontcares)
	cover, err := Cover(Primes(n, zeros, dontcares), zeros)
	if err != nil {
		return nil, err
	}
	var res logic.CNF
	for _, imp := range cover {
		res = append(res, logic.Dual(imp.Term(vars)))
	}
	if s.Check {
		if err := s.check(res, ones, dontcares, vars); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *Simplifier) check(f logic.Formula, ones, dontcares []int, vars logic.Vars) error {
	expected, err := logic.MintermsToExpr(ones, vars)
	if err != nil {
		return err
	}
	ok, err := logic.Agree(f, expected, vars, dontcares)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("simplified formula %v does not match minterms %v", f, ones)
	}
	return nil
}

// normalize checks ranges and removes duplicates, as well as don't cares that are also ones.
func normalize(vars logic.Vars, ones, dontcares []int) ([]int, []int, error) {
	if len(vars) == 0 || len(vars) > logic.MaxVars {
		return nil, nil, fmt.Errorf("invalid number of variables %d", len(vars))
	}
	if err := logic.CheckRange(ones, len(vars)); err != nil {
		return nil, nil, err
	}
	if err := logic.CheckRange(dontcares, len(vars)); err != nil {
		return nil, nil, err
	}
	resOnes := lo.Uniq(ones)
	resDCs := lo.Filter(lo.Uniq(dontcares), func(m int, _ int) bool { return !lo.Contains(resOnes, m) })
	return resOnes, resDCs, nil
}
