package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// MazeSolver stores mazes for their owners and answers path queries on them.
type MazeSolver interface {
	// Submit parses a maze in file format and stores it for the owner.
	Submit(ctx context.Context, owner uuid.UUID, name, raw string) (*dmn.MazeRecord, error)

	// Generate creates a perfect maze with rows x cols rooms and stores it for the owner.
	Generate(ctx context.Context, owner uuid.UUID, name string, rows, cols int, seed int64) (*dmn.MazeRecord, error)

	Get(ctx context.Context, caller, mazeID uuid.UUID) (*dmn.MazeRecord, error)
	Solve(ctx context.Context, caller, mazeID uuid.UUID) (*dmn.Solution, error)

	// Render writes the maze and its path as an image in the given format ("png" or "gif").
	Render(ctx context.Context, caller, mazeID uuid.UUID, format string, w io.Writer) error
}
