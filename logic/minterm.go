package logic

// MintermsToExpr returns the canonical SOP whose terms are the full conjunctions associated
// with each minterm, in the given order. Duplicates are ignored.
// An empty list yields ExprFalse.
func MintermsToExpr(minterms []int, vars Vars) (Expr, error) {
	if err := CheckRange(minterms, len(vars)); err != nil {
		return nil, err
	}
	var res Expr
	seen := make(map[int]bool, len(minterms))
	for _, m := range minterms {
		if seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, CubeTerm(uint(m), uint(vars.Size()-1), vars))
	}
	return res, nil
}

// MaxtermsToCNF returns the canonical POS made of one full clause per maxterm.
// An empty list yields CNFTrue.
func MaxtermsToCNF(maxterms []int, vars Vars) (CNF, error) {
	if err := CheckRange(maxterms, len(vars)); err != nil {
		return nil, err
	}
	var res CNF
	seen := make(map[int]bool, len(maxterms))
	for _, m := range maxterms {
		if seen[m] {
			continue
		}
		seen[m] = true
		res = append(res, Dual(CubeTerm(uint(m), uint(vars.Size()-1), vars)))
	}
	return res, nil
}

// Dual returns the clause equivalent to the negation of t.
func Dual(t Term) Clause {
	res := make(Clause, len(t))
	for i, l := range t {
		res[i] = l.Negation()
	}
	return res
}

// TruthMinterms evaluates f on every assignment over vars, by ascending index,
// and returns the indices where f is true.
func TruthMinterms(f Formula, vars Vars) ([]int, error) {
	if err := CheckVars(f, vars); err != nil {
		return nil, err
	}
	var res []int
	for idx := 0; idx < vars.Size(); idx++ {
		if f.Eval(vars.Model(idx)) {
			res = append(res, idx)
		}
	}
	return res, nil
}

// Complement returns the indices in [0, 2^n-1] that are neither in ones nor in dontcares.
func Complement(n int, ones, dontcares []int) []int {
	excluded := make(map[int]bool, len(ones)+len(dontcares))
	for _, m := range ones {
		excluded[m] = true
	}
	for _, m := range dontcares {
		excluded[m] = true
	}
	var res []int
	for idx := 0; idx < 1<<uint(n); idx++ {
		if !excluded[idx] {
			res = append(res, idx)
		}
	}
	return res
}
