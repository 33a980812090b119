/*
Package wilson generates perfect mazes with Wilson's algorithm and lays them
out as wall grids that the maze package can search.

Generation works on a lattice of rooms. A loop-erased random walk from an
unvisited room is carved into the maze once it reaches a visited room, until
every room is part of the maze. The rooms and the openings carved between them
are then projected onto a block grid where every room sits at even
coordinates and everything else is wall.
*/
package wilson

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// MaxDimension is the largest number of rooms accepted along either axis.
const MaxDimension = 100

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// room is a position on the room lattice.
type room struct {
	row, col int
}

var roomSteps = [...]room{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Layout is a generated wall grid with its start and exit.
type Layout struct {
	Grid  [][]bool
	Start maze.Coord
	Exit  maze.Coord
}

// generator holds the room lattice while a maze is being carved.
type generator struct {
	rows, cols int
	rng        *rand.Rand
	inMaze     map[room]struct{}
	openings   map[[2]room]struct{}
}

// Generate builds a rows x cols room maze. The start is the top-left room and
// the exit is the bottom-right room. A nil rng uses a time-seeded source.
func Generate(rows, cols int, rng *rand.Rand) (Layout, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return Layout{}, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := &generator{
		rows:     rows,
		cols:     cols,
		rng:      rng,
		inMaze:   make(map[room]struct{}, rows*cols),
		openings: make(map[[2]room]struct{}, rows*cols),
	}
	g.carve()

	return Layout{
		Grid:  g.blocks(),
		Start: maze.NewCoord(0, 0),
		Exit:  maze.NewCoord(2*(rows-1), 2*(cols-1)),
	}, nil
}

// carve grows the maze one loop-erased walk at a time.
func (g *generator) carve() {
	g.inMaze[g.randomRoom()] = struct{}{}

	for len(g.inMaze) < g.rows*g.cols {
		start := g.randomRoomOutside()
		exits := g.randomWalk(start)

		// following the last exit taken from each room erases the loops
		for cur := start; ; {
			next := exits[cur]
			g.inMaze[cur] = struct{}{}
			g.open(cur, next)
			if _, done := g.inMaze[next]; done {
				break
			}
			cur = next
		}
	}
}

// randomWalk wanders from start until it reaches a room already in the maze,
// remembering the last room each visited room was left towards.
func (g *generator) randomWalk(start room) map[room]room {
	exits := make(map[room]room)
	for cur := start; ; {
		nbrs := g.neighbors(cur)
		next := nbrs[g.rng.Intn(len(nbrs))]
		exits[cur] = next
		if _, done := g.inMaze[next]; done {
			return exits
		}
		cur = next
	}
}

// neighbors lists the rooms next to r that are inside the lattice.
func (g *generator) neighbors(r room) []room {
	result := make([]room, 0, len(roomSteps))
	for _, s := range roomSteps {
		n := room{row: r.row + s.row, col: r.col + s.col}
		if n.row >= 0 && n.row < g.rows && n.col >= 0 && n.col < g.cols {
			result = append(result, n)
		}
	}
	return result
}

func (g *generator) randomRoom() room {
	return room{row: g.rng.Intn(g.rows), col: g.rng.Intn(g.cols)}
}

func (g *generator) randomRoomOutside() room {
	for {
		r := g.randomRoom()
		if _, in := g.inMaze[r]; !in {
			return r
		}
	}
}

// open removes the wall between two adjacent rooms.
func (g *generator) open(a, b room) {
	g.openings[[2]room{a, b}] = struct{}{}
}

// blocks projects the rooms and openings onto a wall grid.
func (g *generator) blocks() [][]bool {
	grid := make([][]bool, 2*g.rows-1)
	for r := range grid {
		grid[r] = make([]bool, 2*g.cols-1)
		for c := range grid[r] {
			grid[r][c] = maze.Wall
		}
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			grid[2*r][2*c] = maze.Free
		}
	}
	for pair := range g.openings {
		a, b := pair[0], pair[1]
		grid[a.row+b.row][a.col+b.col] = maze.Free
	}

	return grid
}
