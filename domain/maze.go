// Package domain holds the records the pathfinder service stores and returns.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// MazeRecord is an uploaded or generated maze owned by an account.
type MazeRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Raw       string // canonical maze file text
	Rows      int
	Cols      int
	CreatedAt time.Time
	Solution  *Solution // nil until the maze has been solved
}

// Solution is the outcome of searching a maze.
type Solution struct {
	Found    bool
	Path     []maze.Coord // entry to exit, empty when Found is false
	SolvedAt time.Time
}

// Length returns the number of cells on the path.
func (s *Solution) Length() int {
	return len(s.Path)
}
