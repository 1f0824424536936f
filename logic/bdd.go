package logic

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// Equivalent returns true iff f and g have the same truth table over vars.
func Equivalent(f, g Formula, vars Vars) (bool, error) {
	return Agree(f, g, vars, nil)
}

// Agree returns true iff f and g take the same value on every assignment over vars
// whose index is not listed in dontcares.
// The check is done by building the binary decision diagram of both formulas.
func Agree(f, g Formula, vars Vars, dontcares []int) (bool, error) {
	if err := CheckVars(f, vars); err != nil {
		return false, err
	}
	if err := CheckVars(g, vars); err != nil {
		return false, err
	}
	if err := CheckRange(dontcares, len(vars)); err != nil {
		return false, err
	}
	bdd, err := rudd.New(len(vars))
	if err != nil {
		return false, fmt.Errorf("could not create BDD: %v", err)
	}
	var build func(f Formula) rudd.Node
	build = func(f Formula) rudd.Node {
		switch f := f.(type) {
		case trueConst:
			return bdd.True()
		case falseConst:
			return bdd.False()
		case Literal:
			if f.Negated {
				return bdd.NIthvar(vars.Index(f.Var))
			}
			return bdd.Ithvar(vars.Index(f.Var))
		case and:
			subs := make([]rudd.Node, len(f))
			for i, sub := range f {
				subs[i] = build(sub)
			}
			return bdd.And(subs...)
		case or:
			subs := make([]rudd.Node, len(f))
			for i, sub := range f {
				subs[i] = build(sub)
			}
			return bdd.Or(subs...)
		default:
			panic("invalid NNF formula")
		}
	}
	care := bdd.True()
	if len(dontcares) != 0 {
		dc, err := MintermsToExpr(dontcares, vars)
		if err != nil {
			return false, err
		}
		care = bdd.Not(build(dc.nnf()))
	}
	fn := bdd.And(build(f.nnf()), care)
	gn := bdd.And(build(g.nnf()), care)
	if msg := bdd.Error(); msg != "" {
		return false, fmt.Errorf("could not build BDD: %s", msg)
	}
	return bdd.Equal(fn, gn), nil
}
