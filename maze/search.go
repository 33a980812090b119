package maze

// frame is one cell on the search stack together with the index into
// SearchOrder of the next neighbour to try.
type frame struct {
	loc  Coord
	next int
}

// Search looks for a path from the entry to the exit and reports whether one
// exists. The path is then available from Path.
//
// A walled entry or exit never has a path. Once a search has succeeded, later
// calls return true without searching again. A failed search is not
// remembered: calling Search again repeats it, and yields the same result.
func (m *Maze) Search() bool {
	m.searched = true

	if m.grid[m.start.row][m.start.col] || m.grid[m.exit.row][m.exit.col] {
		return false
	}
	if len(m.path) > 0 {
		return true
	}

	found := m.walk(m.start)
	if found {
		// cells were collected while unwinding, exit first
		for i, j := 0, len(m.path)-1; i < j; i, j = i+1, j-1 {
			m.path[i], m.path[j] = m.path[j], m.path[i]
		}
	}
	return found
}

// walk runs the depth-first search from the given cell with an explicit
// stack. The stack never holds more than NumRows*NumCols frames because a
// cell is pushed only while unmarked.
func (m *Maze) walk(from Coord) bool {
	stack := make([]frame, 0, m.NumRows()+m.NumCols())

	found, pushed := m.enter(from, &stack)
	if !pushed {
		return found
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if found {
			m.marks[top.loc.row][top.loc.col] = settled
			m.path = append(m.path, top.loc)
			stack = stack[:len(stack)-1]
			continue
		}

		if top.next == len(SearchOrder) {
			// every neighbour failed, free the cell for other branches
			m.marks[top.loc.row][top.loc.col] = unvisited
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.loc.step(SearchOrder[top.next])
		top.next++
		found, _ = m.enter(next, &stack)
	}

	return found
}

// enter applies the checks made on arriving at loc. It reports whether loc is
// the exit, and whether loc was pushed to be expanded further.
func (m *Maze) enter(loc Coord, stack *[]frame) (found, pushed bool) {
	if !m.InBound(loc) {
		return false, false
	}
	if m.marks[loc.row][loc.col] != unvisited {
		return false, false
	}
	// The exit is checked before walls. Search has already rejected a walled exit.
	if loc == m.exit {
		m.marks[loc.row][loc.col] = settled
		m.path = append(m.path, loc)
		return true, false
	}
	if m.grid[loc.row][loc.col] {
		return false, false
	}

	m.marks[loc.row][loc.col] = inProgress
	*stack = append(*stack, frame{loc: loc})
	return false, true
}
