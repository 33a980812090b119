package maze

import "fmt"

// Coord is an immutable (row, col) position in a maze grid.
// Two coordinates are equal when both indices are equal, so Coord can be
// compared with == and used as a map key.
type Coord struct {
	row int // Row index, counted from the top.
	col int // Column index, counted from the left.
}

// NewCoord returns the coordinate at the given row and column.
func NewCoord(row, col int) Coord {
	return Coord{row: row, col: col}
}

// Row returns the row index of the coordinate.
func (c Coord) Row() int {
	return c.row
}

// Col returns the column index of the coordinate.
func (c Coord) Col() int {
	return c.col
}

// Equal reports whether c and other name the same cell.
func (c Coord) Equal(other Coord) bool {
	return c == other
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}

// step returns the coordinate one cell away in direction d.
func (c Coord) step(d Direction) Coord {
	delta := offsets[d]
	return Coord{row: c.row + delta.row, col: c.col + delta.col}
}

// adjacent reports whether c and other differ by exactly one step on exactly one axis.
func (c Coord) adjacent(other Coord) bool {
	dr, dc := abs(c.row-other.row), abs(c.col-other.col)
	return dr+dc == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
