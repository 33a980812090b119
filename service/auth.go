package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// Claim keys carried by access tokens.
const (
	ClaimAccountID = "accountID"
	ClaimUsername  = "username"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

var _ i.Authenticator = &Auth{}

type Auth struct {
	accountRepo i.AccountRepo
	tokenizer   i.Tokenizer
	logger      i.Logger
	hashCost    int
}

// NewAuth creates the account service. A zero hashCost uses the bcrypt default.
func NewAuth(accountRepo i.AccountRepo, tokenizer i.Tokenizer, logger i.Logger, hashCost int) *Auth {
	return &Auth{
		accountRepo: accountRepo,
		tokenizer:   tokenizer,
		logger:      logger,
		hashCost:    hashCost,
	}
}

func (a *Auth) Register(ctx context.Context, username, password string) error {
	account, err := dmn.NewAccount(dmn.AccountConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
		HashCost:      a.hashCost,
	})
	if err != nil {
		return err
	}

	if err := a.accountRepo.Save(ctx, account); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Registered account %s (%s)", account.ID, account.Username))
	return nil
}

func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error) {
	account, err := a.accountRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dmn.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !account.VerifyPassword(password) {
		a.logger.Debug(fmt.Sprintf("Wrong password for %s", username))
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimAccountID: account.ID.String(),
		ClaimUsername:  account.Username,
	}, tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}
