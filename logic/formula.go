package logic

import (
	"fmt"
	"sort"
	"strings"
)

// A Formula is any kind of boolean formula, not necessarily in normal form.
type Formula interface {
	nnf() Formula
	vars(set map[string]struct{})
	String() string
	Eval(model map[string]bool) bool
}

// Names returns the sorted names of all variables appearing in f.
func Names(f Formula) []string {
	set := make(map[string]struct{})
	f.vars(set)
	res := make([]string, 0, len(set))
	for name := range set {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// NNF returns f in negation normal form: negations only apply to variables,
// and nested conjunctions and disjunctions are flattened.
func NNF(f Formula) Formula {
	return f.nnf()
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) nnf() Formula                    { return t }
func (t trueConst) vars(map[string]struct{})        {}
func (t trueConst) String() string                  { return "1" }
func (t trueConst) Eval(model map[string]bool) bool { return true }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) nnf() Formula                    { return f }
func (f falseConst) vars(map[string]struct{})        {}
func (f falseConst) String() string                  { return "0" }
func (f falseConst) Eval(model map[string]bool) bool { return false }

// Const returns True or False.
func Const(b bool) Formula {
	if b {
		return True
	}
	return False
}

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return variable(name)
}

type variable string

func (v variable) nnf() Formula {
	return Literal{Var: string(v)}
}

func (v variable) vars(set map[string]struct{}) {
	set[string(v)] = struct{}{}
}

func (v variable) String() string {
	return string(v)
}

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[string(v)]
	if !ok {
		panic(fmt.Errorf("model lacks binding for variable %s", string(v)))
	}
	return b
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		return Literal{Var: string(f), Negated: true}
	case Literal:
		return f.Negation()
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	case Term, Expr, Clause, CNF:
		return not{f.nnf()}.nnf()
	default:
		panic("invalid formula type")
	}
}

func (n not) vars(set map[string]struct{}) {
	n[0].vars(set)
}

func (n not) String() string {
	switch n[0].(type) {
	case variable, Literal, not:
		return n[0].String() + "'"
	}
	return "(" + n[0].String() + ")'"
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case and: // Simplify: "and"s in the "and" get to the higher level
			res = append(res, nnf...)
		case trueConst: // True is ignored
		case falseConst:
			return False
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return True
	}
	return res
}

func (a and) vars(set map[string]struct{}) {
	for _, s := range a {
		s.vars(set)
	}
}

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		switch f.(type) {
		case or, Expr, Clause:
			strs[i] = "(" + f.String() + ")"
		default:
			strs[i] = f.String()
		}
	}
	return strings.Join(strs, "")
}

func (a and) Eval(model map[string]bool) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		nnf := s.nnf()
		switch nnf := nnf.(type) {
		case or: // Simplify: "or"s in the "or" get to the higher level
			res = append(res, nnf...)
		case falseConst: // False is ignored
		case trueConst:
			return True
		default:
			res = append(res, nnf)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	if len(res) == 0 {
		return False
	}
	return res
}

func (o or) vars(set map[string]struct{}) {
	for _, s := range o {
		s.vars(set)
	}
}

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return strings.Join(strs, " + ")
}

func (o or) Eval(model map[string]bool) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula {
	return and{or{not{f1}, not{f2}}, or{f1, f2}}
}
