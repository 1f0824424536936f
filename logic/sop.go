package logic

import (
	"sort"
	"strings"
)

// A Literal is a variable or its negation.
type Literal struct {
	Var     string
	Negated bool
}

// Pos returns the positive literal of the variable named name.
func Pos(name string) Literal { return Literal{Var: name} }

// Neg returns the negative literal of the variable named name.
func Neg(name string) Literal { return Literal{Var: name, Negated: true} }

// Negation returns the logical negation of l.
func (l Literal) Negation() Literal {
	return Literal{Var: l.Var, Negated: !l.Negated}
}

func (l Literal) nnf() Formula { return l }

func (l Literal) vars(set map[string]struct{}) { set[l.Var] = struct{}{} }

func (l Literal) String() string {
	if l.Negated {
		return l.Var + "'"
	}
	return l.Var
}

func (l Literal) Eval(model map[string]bool) bool {
	return variable(l.Var).Eval(model) != l.Negated
}

// A Term is a product term, i.e a conjunction of literals.
// The empty term is always true.
type Term []Literal

func (t Term) nnf() Formula {
	switch len(t) {
	case 0:
		return True
	case 1:
		return t[0]
	}
	subs := make(and, len(t))
	for i, l := range t {
		subs[i] = l
	}
	return subs.nnf()
}

func (t Term) vars(set map[string]struct{}) {
	for _, l := range t {
		l.vars(set)
	}
}

func (t Term) String() string {
	if len(t) == 0 {
		return "1"
	}
	var sb strings.Builder
	for _, l := range t {
		sb.WriteString(l.String())
	}
	return sb.String()
}

func (t Term) Eval(model map[string]bool) bool {
	for _, l := range t {
		if !l.Eval(model) {
			return false
		}
	}
	return true
}

// Sorted returns a copy of t whose literals follow the order of vars.
// Literals on unknown variables come last, by name.
func (t Term) Sorted(vars Vars) Term {
	res := make(Term, len(t))
	copy(res, t)
	sortLits(res, vars)
	return res
}

// Cube returns the cube associated with t, as a value and a care mask.
// Bit i of care is set iff the variable vars[n-1-i] appears in t, in which case bit i of
// value gives its polarity.
// ok is false if t contains a variable and its negation; the cube is then empty.
func (t Term) Cube(vars Vars) (value, care uint, ok bool, err error) {
	if err := CheckVars(t, vars); err != nil {
		return 0, 0, false, err
	}
	n := len(vars)
	for _, l := range t {
		bit := uint(1) << uint(n-1-vars.Index(l.Var))
		if care&bit != 0 && (value&bit != 0) == l.Negated {
			return 0, 0, false, nil
		}
		care |= bit
		if !l.Negated {
			value |= bit
		}
	}
	return value, care, true, nil
}

// CubeTerm returns the term whose cube is described by value and care over vars.
// It is the converse of Term.Cube.
func CubeTerm(value, care uint, vars Vars) Term {
	n := len(vars)
	var res Term
	for i, name := range vars {
		bit := uint(1) << uint(n-1-i)
		if care&bit == 0 {
			continue
		}
		res = append(res, Literal{Var: name, Negated: value&bit == 0})
	}
	return res
}

// Minterms returns, in ascending order, the index of every assignment over vars satisfying t.
// Variables absent from t range over both values.
func (t Term) Minterms(vars Vars) ([]int, error) {
	value, care, ok, err := t.Cube(vars)
	if err != nil || !ok {
		return nil, err
	}
	var res []int
	for idx := 0; idx < 1<<uint(len(vars)); idx++ {
		if uint(idx)&care == value {
			res = append(res, idx)
		}
	}
	return res, nil
}

// An Expr is a sum of products, i.e a disjunction of terms.
// The empty Expr is false; an Expr containing an empty term is true.
type Expr []Term

// ExprTrue and ExprFalse are the constants of the SOP form.
var (
	ExprTrue  = Expr{Term{}}
	ExprFalse = Expr(nil)
)

// IsTrue returns true iff e is the constant true.
func (e Expr) IsTrue() bool {
	for _, t := range e {
		if len(t) == 0 {
			return true
		}
	}
	return false
}

// IsFalse returns true iff e is the constant false.
func (e Expr) IsFalse() bool {
	return len(e) == 0
}

func (e Expr) nnf() Formula {
	subs := make(or, len(e))
	for i, t := range e {
		subs[i] = t.nnf()
	}
	return subs.nnf()
}

func (e Expr) vars(set map[string]struct{}) {
	for _, t := range e {
		t.vars(set)
	}
}

func (e Expr) String() string {
	if e.IsFalse() {
		return "0"
	}
	if e.IsTrue() {
		return "1"
	}
	strs := make([]string, len(e))
	for i, t := range e {
		strs[i] = t.String()
	}
	return strings.Join(strs, " + ")
}

func (e Expr) Eval(model map[string]bool) bool {
	for _, t := range e {
		if t.Eval(model) {
			return true
		}
	}
	return false
}

// Sorted returns a copy of e whose terms have their literals in the order of vars.
func (e Expr) Sorted(vars Vars) Expr {
	if e == nil {
		return nil
	}
	res := make(Expr, len(e))
	for i, t := range e {
		res[i] = t.Sorted(vars)
	}
	return res
}

// A Clause is a sum term, i.e a disjunction of literals.
// The empty clause is always false.
type Clause []Literal

func (c Clause) nnf() Formula {
	switch len(c) {
	case 0:
		return False
	case 1:
		return c[0]
	}
	subs := make(or, len(c))
	for i, l := range c {
		subs[i] = l
	}
	return subs.nnf()
}

func (c Clause) vars(set map[string]struct{}) {
	for _, l := range c {
		l.vars(set)
	}
}

func (c Clause) String() string {
	if len(c) == 0 {
		return "0"
	}
	strs := make([]string, len(c))
	for i, l := range c {
		strs[i] = l.String()
	}
	return strings.Join(strs, " + ")
}

func (c Clause) Eval(model map[string]bool) bool {
	for _, l := range c {
		if l.Eval(model) {
			return true
		}
	}
	return false
}

// A CNF is a product of sums, i.e a conjunction of clauses.
// The empty CNF is true; a CNF containing an empty clause is false.
type CNF []Clause

// CNFTrue and CNFFalse are the constants of the POS form.
var (
	CNFTrue  = CNF(nil)
	CNFFalse = CNF{Clause{}}
)

// IsTrue returns true iff c is the constant true.
func (c CNF) IsTrue() bool {
	return len(c) == 0
}

// IsFalse returns true iff c is the constant false.
func (c CNF) IsFalse() bool {
	for _, cl := range c {
		if len(cl) == 0 {
			return true
		}
	}
	return false
}

func (c CNF) nnf() Formula {
	subs := make(and, len(c))
	for i, cl := range c {
		subs[i] = cl.nnf()
	}
	return subs.nnf()
}

func (c CNF) vars(set map[string]struct{}) {
	for _, cl := range c {
		cl.vars(set)
	}
}

// String returns the POS notation of c, each clause being parenthesized, as in "(A + B')(C)".
func (c CNF) String() string {
	if c.IsFalse() {
		return "0"
	}
	if c.IsTrue() {
		return "1"
	}
	var sb strings.Builder
	for _, cl := range c {
		sb.WriteString("(")
		sb.WriteString(cl.String())
		sb.WriteString(")")
	}
	return sb.String()
}

func (c CNF) Eval(model map[string]bool) bool {
	for _, cl := range c {
		if !cl.Eval(model) {
			return false
		}
	}
	return true
}

// Sorted returns a copy of c whose clauses have their literals in the order of vars.
func (c CNF) Sorted(vars Vars) CNF {
	if c == nil {
		return nil
	}
	res := make(CNF, len(c))
	for i, cl := range c {
		lits := make([]Literal, len(cl))
		copy(lits, cl)
		sortLits(lits, vars)
		res[i] = lits
	}
	return res
}

func sortLits(lits []Literal, vars Vars) {
	sort.SliceStable(lits, func(i, j int) bool {
		vi, vj := vars.Index(lits[i].Var), vars.Index(lits[j].Var)
		switch {
		case vi == -1 && vj == -1:
			return lits[i].Var < lits[j].Var
		case vi == -1:
			return false
		case vj == -1:
			return true
		}
		return vi < vj
	})
}
