package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// AccountRepo defines the interface for account persistence operations.
type AccountRepo interface {
	// Save inserts or updates an account in the repository.
	// If the account already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, account *dmn.Account) error

	// ByID retrieves an account by its unique ID.
	// Returns dmn.ErrAccountNotFound if no account has the ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Account, error)

	// ByUsername retrieves an account by its username.
	// Returns dmn.ErrAccountNotFound if no account has the username.
	ByUsername(ctx context.Context, username string) (*dmn.Account, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze record, including its solution when set.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns dmn.ErrMazeNotFound if no maze has the ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
