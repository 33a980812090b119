package domain

import "errors"

// Errors returned by repositories.
var (
	ErrMazeNotFound    = errors.New("maze not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already taken")
)
