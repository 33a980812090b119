package maze

// Direction is one of the four orthogonal moves allowed through a maze.
type Direction int

const (
	Down Direction = iota
	Up
	Right
	Left
)

// SearchOrder is the order in which Search tries the neighbours of a cell.
// The first neighbour that leads to the exit wins, so this order decides
// which path is reported when several exist.
var SearchOrder = [...]Direction{Down, Up, Right, Left}

var offsets = map[Direction]Coord{
	Down:  {row: 1, col: 0},
	Up:    {row: -1, col: 0},
	Right: {row: 0, col: 1},
	Left:  {row: 0, col: -1},
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
