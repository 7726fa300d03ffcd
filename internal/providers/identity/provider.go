// Package identity abstracts the external identity provider. It is the
// only place new identity ids are minted; use cases never invent them.
package identity

import (
	"context"
	"errors"
)

// Identity is a credentialed account known to the provider.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

type Provider interface {
	// SignUp mints a credentialed identity for the email/password pair.
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	// VerifyToken resolves a bearer token to the identity it belongs to.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

var (
	ErrSignUpFailed = errors.New("identity signup failed")
	ErrInvalidToken = errors.New("invalid token")
	ErrUnavailable  = errors.New("identity provider unavailable")
)
