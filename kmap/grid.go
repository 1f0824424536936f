package kmap

import (
	"fmt"
	"strings"

	"github.com/crillab/kmap/logic"
)

// gray is the ordering of 2-bit pairs such that consecutive entries, including the last and
// the first ones, differ in exactly one bit.
var gray = [][]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// plain is the ordering of the values of a single bit.
var plain = [][]int{{0}, {1}}

// An Orientation indicates which variables are laid out along the columns of a map.
type Orientation int

const (
	// ColsAB lays the first variables (A for 2 variables, A and B for 4 variables) along the columns.
	ColsAB Orientation = iota
	// RowsAB lays the first variables along the rows.
	RowsAB
)

func (o Orientation) String() string {
	switch o {
	case ColsAB:
		return "ab-cols"
	case RowsAB:
		return "ab-rows"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation returns the orientation whose String method returns s.
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range []Orientation{ColsAB, RowsAB} {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("invalid orientation %q", s)
}

// A Coord is the position of a cell in a map.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Dimensions returns the number of rows and columns of a map over n variables.
func Dimensions(n int) (rows, cols int, err error) {
	switch n {
	case 2:
		return 2, 2, nil
	case 3:
		return 2, 4, nil
	case 4:
		return 4, 4, nil
	}
	return 0, 0, fmt.Errorf("%w: %d variables, maps are available for 2 to 4 variables", ErrInvalidDimension, n)
}

// A Grid describes the layout of a map over N variables.
// A Grid is immutable and can be shared freely.
type Grid struct {
	N       int
	Rows    int
	Cols    int
	Orient  Orientation
	rowVars []int // Indices of the variables whose bits give the row, most significant first
	colVars []int // Indices of the variables whose bits give the column, most significant first
}

// NewGrid returns the layout of a map over n variables with the given orientation.
// For n = 3, rows are always given by A and columns by BC.
func NewGrid(n int, o Orientation) (Grid, error) {
	rows, cols, err := Dimensions(n)
	if err != nil {
		return Grid{}, err
	}
	if o != ColsAB && o != RowsAB {
		return Grid{}, fmt.Errorf("invalid orientation %v", o)
	}
	g := Grid{N: n, Rows: rows, Cols: cols, Orient: o}
	switch {
	case n == 2 && o == ColsAB:
		g.rowVars, g.colVars = []int{1}, []int{0}
	case n == 2:
		g.rowVars, g.colVars = []int{0}, []int{1}
	case n == 3:
		g.rowVars, g.colVars = []int{0}, []int{1, 2}
	case o == ColsAB:
		g.rowVars, g.colVars = []int{2, 3}, []int{0, 1}
	default:
		g.rowVars, g.colVars = []int{0, 1}, []int{2, 3}
	}
	return g, nil
}

func sequence(nbVars int) [][]int {
	if nbVars == 1 {
		return plain
	}
	return gray
}

// position returns the index of the given bits in the sequence of their axis.
func position(bits []int) int {
	for i, seq := range sequence(len(bits)) {
		match := true
		for j := range bits {
			if seq[j] != bits[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	panic("invalid bits")
}

// Size returns the number of cells of g.
func (g Grid) Size() int {
	return g.Rows * g.Cols
}

// Contains returns true iff c is a cell of g.
func (g Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Coord returns the position of the minterm idx.
func (g Grid) Coord(idx int) (Coord, error) {
	if err := logic.CheckRange([]int{idx}, g.N); err != nil {
		return Coord{}, err
	}
	bit := func(v int) int { return (idx >> uint(g.N-1-v)) & 1 }
	rowBits := make([]int, len(g.rowVars))
	for i, v := range g.rowVars {
		rowBits[i] = bit(v)
	}
	colBits := make([]int, len(g.colVars))
	for i, v := range g.colVars {
		colBits[i] = bit(v)
	}
	return Coord{Row: position(rowBits), Col: position(colBits)}, nil
}

// Bits returns the value of each variable in the cell c, first variable first.
func (g Grid) Bits(c Coord) ([]int, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: cell %v outside of a %dx%d map", logic.ErrOutOfRange, c, g.Rows, g.Cols)
	}
	res := make([]int, g.N)
	for i, bit := range sequence(len(g.rowVars))[c.Row] {
		res[g.rowVars[i]] = bit
	}
	for i, bit := range sequence(len(g.colVars))[c.Col] {
		res[g.colVars[i]] = bit
	}
	return res, nil
}

// Index returns the minterm associated with the cell c.
func (g Grid) Index(c Coord) (int, error) {
	bits, err := g.Bits(c)
	if err != nil {
		return 0, err
	}
	idx := 0
	for _, b := range bits {
		idx = idx<<1 | b
	}
	return idx, nil
}

// Cells returns the set of cells associated with the given minterms.
func (g Grid) Cells(minterms []int) (CellSet, error) {
	if err := logic.CheckRange(minterms, g.N); err != nil {
		return nil, err
	}
	res := make(CellSet, len(minterms))
	for _, m := range minterms {
		c, _ := g.Coord(m)
		res.Add(c)
	}
	return res, nil
}

// RowLabels returns the header of each row, as in "CD=01".
func (g Grid) RowLabels(vars logic.Vars) []string {
	return axisLabels(vars, g.rowVars)
}

// ColLabels returns the header of each column, as in "AB=11".
func (g Grid) ColLabels(vars logic.Vars) []string {
	return axisLabels(vars, g.colVars)
}

func axisLabels(vars logic.Vars, axis []int) []string {
	var name strings.Builder
	for _, v := range axis {
		name.WriteString(vars[v])
	}
	seq := sequence(len(axis))
	res := make([]string, len(seq))
	for i, bits := range seq {
		var sb strings.Builder
		sb.WriteString(name.String())
		sb.WriteByte('=')
		for _, b := range bits {
			sb.WriteByte(byte('0' + b))
		}
		res[i] = sb.String()
	}
	return res
}

// IndexToCoord returns the position of the minterm idx in a map over n variables.
func IndexToCoord(n, idx int, o Orientation) (Coord, error) {
	g, err := NewGrid(n, o)
	if err != nil {
		return Coord{}, err
	}
	return g.Coord(idx)
}

// CoordToBits returns the value of each of the n variables in the cell c.
func CoordToBits(c Coord, n int, o Orientation) ([]int, error) {
	g, err := NewGrid(n, o)
	if err != nil {
		return nil, err
	}
	return g.Bits(c)
}

// CoordToIndex returns the minterm associated with the cell c in a map over n variables.
func CoordToIndex(c Coord, n int, o Orientation) (int, error) {
	g, err := NewGrid(n, o)
	if err != nil {
		return 0, err
	}
	return g.Index(c)
}
