package logic

import (
	"fmt"
	"sort"
)

// MaxVars is the maximum number of variables handled by this package.
const MaxVars = 16

// Vars is an ordered list of variable names.
// The first variable is associated with the most significant bit of a minterm index.
type Vars []string

// Variables returns the n first upper-case letters, starting with A.
func Variables(n int) (Vars, error) {
	if n < 1 || n > MaxVars {
		return nil, fmt.Errorf("invalid number of variables %d: must be between 1 and %d", n, MaxVars)
	}
	res := make(Vars, n)
	for i := range res {
		res[i] = string(rune('A' + i))
	}
	return res, nil
}

// Index returns the position of name in vars, or -1.
func (vars Vars) Index(name string) int {
	for i, v := range vars {
		if v == name {
			return i
		}
	}
	return -1
}

// Size returns the number of assignments over vars, i.e 2^len(vars).
func (vars Vars) Size() int {
	return 1 << uint(len(vars))
}

// Model returns the assignment whose index is idx.
func (vars Vars) Model(idx int) map[string]bool {
	n := len(vars)
	model := make(map[string]bool, n)
	for i, v := range vars {
		model[v] = (idx>>uint(n-1-i))&1 == 1
	}
	return model
}

// Bits returns the bits of idx, most significant (first variable) first.
func (vars Vars) Bits(idx int) []int {
	n := len(vars)
	res := make([]int, n)
	for i := range res {
		res[i] = (idx >> uint(n-1-i)) & 1
	}
	return res
}

// CheckVars returns a *VarError if f uses variables that are not in vars.
func CheckVars(f Formula, vars Vars) error {
	var extras []string
	for _, name := range Names(f) {
		if vars.Index(name) == -1 {
			extras = append(extras, name)
		}
	}
	if len(extras) != 0 {
		return &VarError{Names: extras}
	}
	return nil
}

// CheckRange returns a *RangeError if some values are outside of [0, 2^n-1].
func CheckRange(values []int, n int) error {
	max := (1 << uint(n)) - 1
	seen := make(map[int]bool)
	var invalid []int
	for _, v := range values {
		if (v < 0 || v > max) && !seen[v] {
			seen[v] = true
			invalid = append(invalid, v)
		}
	}
	if len(invalid) != 0 {
		sort.Ints(invalid)
		return &RangeError{Values: invalid, Max: max}
	}
	return nil
}
