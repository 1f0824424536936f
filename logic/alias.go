package logic

import (
	"strings"
	"unicode"
)

// ParseFor parses expr as a formula over vars, like ParseString, and checks it only uses vars.
// When none of the letters of expr is one of vars, and expr has no more distinct letters than vars,
// letters are renamed to vars in order of first appearance: over A, B, "xy'" means "AB'".
// Otherwise, letters outside vars yield a *VarError.
func ParseFor(expr string, vars Vars) (Formula, error) {
	f, err := ParseString(expr)
	if err != nil {
		return nil, err
	}
	var letters []string
	for _, r := range expr {
		if !unicode.IsLetter(r) {
			continue
		}
		name := strings.ToUpper(string(r))
		if vars.Index(name) != -1 {
			return f, CheckVars(f, vars)
		}
		if !contains(letters, name) {
			letters = append(letters, name)
		}
	}
	if len(letters) == 0 || len(letters) > len(vars) {
		return f, CheckVars(f, vars)
	}
	names := make(map[string]string, len(letters))
	for i, l := range letters {
		names[l] = vars[i]
	}
	return rename(f.nnf(), names), nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// rename returns a copy of the NNF formula f where variables are renamed according to names.
func rename(f Formula, names map[string]string) Formula {
	switch f := f.(type) {
	case Literal:
		return Literal{Var: names[f.Var], Negated: f.Negated}
	case and:
		res := make(and, len(f))
		for i, sub := range f {
			res[i] = rename(sub, names)
		}
		return res
	case or:
		res := make(or, len(f))
		for i, sub := range f {
			res[i] = rename(sub, names)
		}
		return res
	case trueConst, falseConst:
		return f
	default:
		panic("invalid formula type")
	}
}
