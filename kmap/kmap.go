package kmap

import (
	"fmt"
	"sort"

	"github.com/crillab/kmap/logic"
	"github.com/crillab/kmap/qm"
	"github.com/samber/lo"
)

// A Strategy indicates how the groups of a map are computed.
type Strategy int

const (
	// StrategyExpression derives one group per term of the minimal SOP.
	StrategyExpression Strategy = iota
	// StrategyGreedy searches groups geometrically, essential groups first.
	StrategyGreedy
	// StrategyExact searches a minimum number of geometric groups.
	StrategyExact
)

func (s Strategy) String() string {
	switch s {
	case StrategyExpression:
		return "expr"
	case StrategyGreedy:
		return "greedy"
	case StrategyExact:
		return "exact"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the strategy whose String method returns s.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{StrategyExpression, StrategyGreedy, StrategyExact} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("invalid strategy %q", s)
}

// A Simplifier computes minimal two-level forms from minterms.
// *qm.Simplifier is the default implementation.
type Simplifier interface {
	BuildFromMinterms(vars logic.Vars, ones, dontcares []int) (logic.Expr, error)
	BuildPOSFromMinterms(vars logic.Vars, ones, dontcares []int) (logic.CNF, error)
}

// Options configure the computation of a map.
// The zero value is usable: groups follow the minimal SOP on a map with A (and B) along the columns.
type Options struct {
	Orientation Orientation
	Strategy    Strategy
	Simplifier  Simplifier // If nil, qm.New() is used
}

// A Group is a group of cells of a map along with the product term it stands for.
type Group struct {
	GroupRect
	Term  logic.Term
	Label string
}

// A Result is a simplified function along with its map.
type Result struct {
	Grid      Grid
	Vars      logic.Vars
	Minterms  []int // Sorted, without duplicates
	DontCares []int // Sorted, without duplicates nor minterms
	SOP       logic.Expr
	POS       logic.CNF
	Groups    []Group
}

// SOPText returns the minimal sum of products, as in "A'B + C".
func (r *Result) SOPText() string { return r.SOP.String() }

// POSText returns the minimal product of sums, as in "(A + B')(C)".
func (r *Result) POSText() string { return r.POS.String() }

// Ones returns the cells of the minterms.
func (r *Result) Ones() CellSet {
	cells, _ := r.Grid.Cells(r.Minterms)
	return cells
}

// DontCareCells returns the cells of the don't cares.
func (r *Result) DontCareCells() CellSet {
	cells, _ := r.Grid.Cells(r.DontCares)
	return cells
}

// FromMinterms simplifies the function over n variables that is true on minterms,
// and whose value does not matter on dontcares, and groups the cells of its map.
func FromMinterms(n int, minterms, dontcares []int, opts Options) (*Result, error) {
	grid, err := NewGrid(n, opts.Orientation)
	if err != nil {
		return nil, err
	}
	vars, err := logic.Variables(n)
	if err != nil {
		return nil, err
	}
	if err := logic.CheckRange(minterms, n); err != nil {
		return nil, err
	}
	if err := logic.CheckRange(dontcares, n); err != nil {
		return nil, err
	}
	ones := sortedUniq(minterms)
	dcs := lo.Filter(sortedUniq(dontcares), func(m int, _ int) bool { return !lo.Contains(ones, m) })
	simp := opts.Simplifier
	if simp == nil {
		simp = qm.New()
	}
	res := &Result{Grid: grid, Vars: vars, Minterms: ones, DontCares: dcs}
	if res.SOP, err = simp.BuildFromMinterms(vars, ones, dcs); err != nil {
		return nil, fmt.Errorf("could not simplify into SOP: %w", err)
	}
	if res.POS, err = simp.BuildPOSFromMinterms(vars, ones, dcs); err != nil {
		return nil, fmt.Errorf("could not simplify into POS: %w", err)
	}
	rects, err := res.groups(opts.Strategy)
	if err != nil {
		return nil, err
	}
	for _, rect := range rects {
		t, err := grid.Term(rect, vars)
		if err != nil {
			return nil, err
		}
		res.Groups = append(res.Groups, Group{GroupRect: rect, Term: t, Label: t.String()})
	}
	return res, nil
}

// FromFormula is like FromMinterms, with the minterms of f over the first n variables.
// f must only use these variables.
func FromFormula(n int, f logic.Formula, opts Options) (*Result, error) {
	if _, _, err := Dimensions(n); err != nil {
		return nil, err
	}
	vars, err := logic.Variables(n)
	if err != nil {
		return nil, err
	}
	ones, err := logic.TruthMinterms(f, vars)
	if err != nil {
		return nil, err
	}
	return FromMinterms(n, ones, nil, opts)
}

func (r *Result) groups(s Strategy) ([]GroupRect, error) {
	switch s {
	case StrategyExpression:
		return r.Grid.GroupsFromExpr(r.SOP, r.Vars)
	case StrategyGreedy:
		return r.Grid.SelectGroups(r.Ones())
	case StrategyExact:
		return r.Grid.SelectMinimal(r.Ones())
	default:
		return nil, fmt.Errorf("invalid strategy %v", s)
	}
}

func sortedUniq(vals []int) []int {
	res := lo.Uniq(vals)
	sort.Ints(res)
	return res
}
