/*
Package maze models a rectangular grid of free and wall cells and finds a
4-connected path between a start cell and an exit cell.

A Maze owns its wall grid, its start and exit coordinates, the scratch marks
used while searching, and the path discovered by Search. It performs no I/O;
loading and rendering live in the mazefile and render packages, which only
use the read-only queries exposed here.

The grid has no explicit outer wall. The search treats everything beyond the
declared dimensions as a virtual border it can never cross.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell values of a maze grid.
const (
	Free = false
	Wall = true
)

var (
	ErrEmptyGrid   = errors.New("maze grid is empty")
	ErrRaggedGrid  = errors.New("maze grid is not rectangular")
	ErrOutOfBounds = errors.New("coordinate is outside the maze")
)

// mark is the per-cell search state.
type mark uint8

const (
	unvisited  mark = iota
	inProgress      // on the current search branch
	settled         // part of the discovered path
)

// Maze is a rectangular wall grid with a start and an exit.
// A Maze is not safe for concurrent use by multiple goroutines.
type Maze struct {
	grid     [][]bool // grid[row][col] is Wall or Free
	marks    [][]mark // search scratch space, same shape as grid
	start    Coord
	exit     Coord
	path     []Coord // empty, or the full start to exit chain
	searched bool
}

// New builds a maze from a rectangular grid (true means wall) and two
// coordinates inside it. The grid is copied, so later changes made by the
// caller do not affect the maze.
func New(grid [][]bool, start, exit Coord) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(grid[0])
	owned := make([][]bool, len(grid))
	marks := make([][]mark, len(grid))
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		owned[r] = append([]bool(nil), row...)
		marks[r] = make([]mark, cols)
	}

	m := &Maze{
		grid:  owned,
		marks: marks,
		start: start,
		exit:  exit,
	}

	if !m.InBound(start) {
		return nil, fmt.Errorf("%w: start %s in %dx%d maze", ErrOutOfBounds, start, m.NumRows(), m.NumCols())
	}
	if !m.InBound(exit) {
		return nil, fmt.Errorf("%w: exit %s in %dx%d maze", ErrOutOfBounds, exit, m.NumRows(), m.NumCols())
	}

	return m, nil
}

// NumRows returns the number of rows in the maze.
func (m *Maze) NumRows() int {
	return len(m.grid)
}

// NumCols returns the number of columns in the maze.
func (m *Maze) NumCols() int {
	return len(m.grid[0])
}

// InBound reports whether loc lies inside the maze.
func (m *Maze) InBound(loc Coord) bool {
	return loc.row >= 0 && loc.row < m.NumRows() && loc.col >= 0 && loc.col < m.NumCols()
}

// HasWallAt reports whether there is a wall at loc.
// It returns ErrOutOfBounds when loc is outside the maze.
func (m *Maze) HasWallAt(loc Coord) (bool, error) {
	if !m.InBound(loc) {
		return false, fmt.Errorf("%w: %s in %dx%d maze", ErrOutOfBounds, loc, m.NumRows(), m.NumCols())
	}
	return m.grid[loc.row][loc.col], nil
}

// EntryLoc returns the start location of the maze.
func (m *Maze) EntryLoc() Coord {
	return m.start
}

// ExitLoc returns the exit location of the maze.
func (m *Maze) ExitLoc() Coord {
	return m.exit
}

// Path returns the path found by the last successful Search, starting at the
// entry and ending at the exit. It is empty if no search has succeeded.
func (m *Maze) Path() []Coord {
	return append([]Coord{}, m.path...)
}

// Searched reports whether Search has been called at least once.
func (m *Maze) Searched() bool {
	return m.searched
}

// String draws the maze one line per row: '#' wall, '.' free, 'S' start,
// 'E' exit and '*' for the remaining cells on the path.
func (m *Maze) String() string {
	onPath := make(map[Coord]struct{}, len(m.path))
	for _, c := range m.path {
		onPath[c] = struct{}{}
	}

	var b strings.Builder
	for r, row := range m.grid {
		for c, wall := range row {
			loc := Coord{row: r, col: c}
			_, inPath := onPath[loc]
			switch {
			case loc == m.start:
				b.WriteByte('S')
			case loc == m.exit:
				b.WriteByte('E')
			case inPath:
				b.WriteByte('*')
			case wall:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
