package directory

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/gameportal/internal/model"
)

// Password schemes
const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// PasswordScheme turns a password into its stored form and checks candidates
// against a stored credential
type PasswordScheme interface {
	Encode(password string) (string, error)
	Matches(stored, candidate string) bool
}

// Plaintext stores passwords as given
type Plaintext struct{}

func (Plaintext) Encode(password string) (string, error) {
	return password, nil
}

func (Plaintext) Matches(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt stores bcrypt hashes of passwords
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Encode(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidInput, err)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports false for stored values that are not bcrypt hashes
func (Bcrypt) Matches(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// SchemeByName resolves a configured scheme name
func SchemeByName(name string, bcryptCost int) (PasswordScheme, error) {
	switch name {
	case SchemePlaintext:
		return Plaintext{}, nil
	case SchemeBcrypt, "":
		return Bcrypt{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
