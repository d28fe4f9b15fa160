package client

import (
	"context"

	"github.com/dmitrijs2005/dashauth/internal/client/models"
)

// AuthResult is the canonical outcome of a successful authentication.
type AuthResult struct {
	User  *models.UserProfile
	Token string
}

// RegisterResult is either an authenticated session (Token set) or a bare
// confirmation (Message and/or UserID set, no Token).
type RegisterResult struct {
	AuthResult
	Message string
	UserID  models.UserID
}

// Authenticated reports whether registration also signed the user in.
func (r *RegisterResult) Authenticated() bool {
	return r.Token != "" && r.User != nil
}

type Client interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*RegisterResult, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyToken(ctx context.Context, token string) bool
	Close() error
}
