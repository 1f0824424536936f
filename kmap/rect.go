package kmap

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// A CellSet is a set of cells of a map.
type CellSet map[Coord]struct{}

// NewCellSet returns the set containing the given cells.
func NewCellSet(cells ...Coord) CellSet {
	res := make(CellSet, len(cells))
	for _, c := range cells {
		res.Add(c)
	}
	return res
}

// Add adds c to s.
func (s CellSet) Add(c Coord) { s[c] = struct{}{} }

// Has returns true iff c belongs to s.
func (s CellSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in s.
func (s CellSet) Len() int { return len(s) }

// Sorted returns the cells of s in row-major order.
func (s CellSet) Sorted() []Coord {
	res := lo.Keys(s)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Row != res[j].Row {
			return res[i].Row < res[j].Row
		}
		return res[i].Col < res[j].Col
	})
	return res
}

// SubsetOf returns true iff every cell of s belongs to other.
func (s CellSet) SubsetOf(other CellSet) bool {
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Equal returns true iff s and other contain the same cells.
func (s CellSet) Equal(other CellSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Overlap returns the number of cells belonging to both s and other.
func (s CellSet) Overlap(other CellSet) int {
	n := 0
	for c := range s {
		if other.Has(c) {
			n++
		}
	}
	return n
}

// Minus returns the cells of s that do not belong to other.
func (s CellSet) Minus(other CellSet) CellSet {
	res := make(CellSet)
	for c := range s {
		if !other.Has(c) {
			res.Add(c)
		}
	}
	return res
}

func (s CellSet) String() string {
	return fmt.Sprint(s.Sorted())
}

// A Rect is a rectangle of cells in a map, given by its top-left cell and its size.
// Rectangles wrap around the edges of the map.
type Rect struct {
	R0, Rows int
	C0, Cols int
}

// Area returns the number of cells of r.
func (r Rect) Area() int { return r.Rows * r.Cols }

// Cells returns the cells covered by r in a map of size nrows x ncols.
func (r Rect) Cells(nrows, ncols int) CellSet {
	return RectCells(r, nrows, ncols)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.Rows, r.Cols, r.R0, r.C0)
}

// RectCells returns the cells covered by r in a map of size nrows x ncols.
// Row and column offsets wrap modulo nrows and ncols: the map is a torus.
func RectCells(r Rect, nrows, ncols int) CellSet {
	res := make(CellSet, r.Area())
	for dr := 0; dr < r.Rows; dr++ {
		for dc := 0; dc < r.Cols; dc++ {
			res.Add(Coord{Row: (r.R0 + dr) % nrows, Col: (r.C0 + dc) % ncols})
		}
	}
	return res
}

// powerSizes returns the powers of two not exceeding limit.
func powerSizes(limit int) []int {
	sizes := []int{1}
	for sizes[len(sizes)-1]*2 <= limit {
		sizes = append(sizes, sizes[len(sizes)-1]*2)
	}
	return sizes
}

// AllRects returns every placement of every rectangle whose height and width are powers of two
// not exceeding nrows and ncols, by decreasing area.
// Rectangles of the same area are ordered by decreasing height, then by top-left cell.
// Different placements may cover the same cells when a rectangle spans a whole dimension.
func AllRects(nrows, ncols int) []Rect {
	sizesR := powerSizes(nrows)
	sizesC := powerSizes(ncols)
	var rects []Rect
	for i := len(sizesR) - 1; i >= 0; i-- {
		for j := len(sizesC) - 1; j >= 0; j-- {
			for r0 := 0; r0 < nrows; r0++ {
				for c0 := 0; c0 < ncols; c0++ {
					rects = append(rects, Rect{R0: r0, Rows: sizesR[i], C0: c0, Cols: sizesC[j]})
				}
			}
		}
	}
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].Area() > rects[j].Area() })
	return rects
}

// A GroupRect is a rectangle together with the cells it covers.
// Cells are derived from the rectangle and the map size; use NewGroupRect to build one.
type GroupRect struct {
	Rect
	Cells CellSet
}

// NewGroupRect returns the group associated with r in a map of size nrows x ncols.
func NewGroupRect(r Rect, nrows, ncols int) GroupRect {
	return GroupRect{Rect: r, Cells: RectCells(r, nrows, ncols)}
}

func (g GroupRect) String() string {
	return fmt.Sprintf("%v%v", g.Rect, g.Cells)
}

// key returns a bitmask identifying the cells of g, for maps of at most 64 cells.
func (g GroupRect) key(ncols int) uint64 {
	var k uint64
	for c := range g.Cells {
		k |= 1 << uint(c.Row*ncols+c.Col)
	}
	return k
}
