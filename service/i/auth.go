package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

type Authenticator interface {
	Register(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error)
}
