package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dashauth/internal/common"
	"github.com/dmitrijs2005/dashauth/internal/server/auth"
	"github.com/dmitrijs2005/dashauth/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// Demo account seeded by SeedDemo.
const (
	DemoName     = "Demo User"
	DemoEmail    = "demo@example.com"
	DemoPassword = "password"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	hashCost              int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		hashCost:              bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if err := validated(credentials{Email: email, Password: password}.Validate()); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) IssueToken(user *User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
}

// VerifyToken returns the user a valid token was issued to.
func (s *Service) VerifyToken(ctx context.Context, token string) (*User, error) {
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// ForgotPassword returns a reset token for a known email and "" otherwise, so
// callers can answer both cases the same way.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil
		}
		return "", common.ErrorInternal
	}

	return common.MakeRandHexString(32)
}

// SeedDemo registers the demo account unless it already exists.
func (s *Service) SeedDemo(ctx context.Context) (*User, error) {
	user, err := s.Register(ctx, DemoName, DemoEmail, DemoPassword)
	if errors.Is(err, common.ErrorAlreadyExists) {
		return s.repo.GetUserByEmail(ctx, DemoEmail)
	}
	return user, err
}
