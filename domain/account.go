package domain

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)

	ErrUsernameTooShort = errors.New("username too short")
	ErrUsernameTooLong  = errors.New("username too long")
	ErrUsernameFormat   = errors.New("invalid username format")
	ErrWeakPassword     = errors.New("weak password")
)

// Account is a user allowed to upload and solve mazes.
type Account struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
}

// AccountConfig holds the parameters for creating an Account.
type AccountConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
	HashCost      int // bcrypt cost, bcrypt.DefaultCost when zero
}

// NewAccount validates the username and password strength and hashes the password.
func NewAccount(config AccountConfig) (*Account, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	cost := config.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), cost)
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameFormat
	}
	return nil
}

func validatePassword(password string) error {
	if zxcvbn.PasswordStrength(password, nil).Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}

// IsValidationError reports whether err was caused by bad account input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUsernameTooShort) || errors.Is(err, ErrUsernameTooLong) ||
		errors.Is(err, ErrUsernameFormat) || errors.Is(err, ErrWeakPassword)
}
