package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// SolutionCache stores encoded solutions keyed by maze ID and hands out
// per-maze locks so that a maze is searched by one worker at a time.
type SolutionCache interface {
	// Get returns the cached bytes for the maze. ok is false on a miss.
	Get(ctx context.Context, mazeID uuid.UUID) (data []byte, ok bool, err error)

	// Put stores the bytes for the maze, expiring after ttl.
	Put(ctx context.Context, mazeID uuid.UUID, data []byte, ttl time.Duration) error

	// Lock blocks until the maze lock is held or ctx is done.
	// The returned function releases the lock.
	Lock(ctx context.Context, mazeID uuid.UUID) (unlock func(context.Context) error, err error)
}

// SolutionEncoder converts solutions to and from their cached form.
type SolutionEncoder interface {
	Marshal(*dmn.Solution) ([]byte, error)
	Unmarshal([]byte) (*dmn.Solution, error)
}
