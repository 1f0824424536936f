package logic

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a minterm or don't care index lies outside [0, 2^n-1].
	ErrOutOfRange = errors.New("index out of range")
	// ErrVariableMismatch is returned when a formula references a variable outside the configured set.
	ErrVariableMismatch = errors.New("variable mismatch")
	// ErrSyntax is returned when a formula cannot be parsed.
	ErrSyntax = errors.New("syntax error")
)

// A RangeError reports indices outside of the valid range [0, Max].
type RangeError struct {
	Values []int // Offending values, sorted and without duplicates
	Max    int
}

func (e *RangeError) Error() string {
	strs := make([]string, len(e.Values))
	for i, v := range e.Values {
		strs[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("indices out of range 0-%d: %s", e.Max, strings.Join(strs, ", "))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// A VarError reports variables that are not part of the expected variable set.
type VarError struct {
	Names []string // Unknown variables, sorted
}

func (e *VarError) Error() string {
	return fmt.Sprintf("variables outside the selected set: %s", strings.Join(e.Names, ", "))
}

func (e *VarError) Unwrap() error { return ErrVariableMismatch }
