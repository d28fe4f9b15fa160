// Package services contains the application services of the dashauth client.
// This file defines the Auth State Store: the actions that move the Session
// between Anonymous, Authenticating, Authenticated and Failed, and the
// persistence of the token record in the local metadata table.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/dashauth/internal/client/client"
	"github.com/dmitrijs2005/dashauth/internal/client/models"
	"github.com/dmitrijs2005/dashauth/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/dashauth/internal/client/session"
	"github.com/dmitrijs2005/dashauth/internal/dbx"
	"github.com/dmitrijs2005/dashauth/internal/logging"
)

// Keys of the persisted token record.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyRememberMe = "rememberMe"
)

// Navigation targets named in an Outcome.
const (
	RedirectHome  = "/"
	RedirectLogin = "/login"
)

const (
	fallbackLogin    = "Login failed"
	fallbackRegister = "Registration failed"
	fallbackForgot   = "Failed to send reset link"
)

// Outcome describes what an action achieved. Redirect names the route the
// caller should navigate to; the store itself never navigates.
type Outcome struct {
	User     *models.UserProfile
	Message  string
	Redirect string
}

// AuthService is the Auth State Store.
//
// Contract:
//   - Restore: rebuild the Session from the persisted token record.
//   - Login / Register / ForgotPassword: toggle IsLoading around the request,
//     record Error on failure and return the error unchanged.
//   - Logout: reset to Anonymous and clear the persisted record; never fails.
//   - ClearError: drop Error without other side effects.
//   - VerifySession: ask the server whether the current token is still valid.
//   - Session: current snapshot.
//   - Close: release the underlying client.
type AuthService interface {
	Restore(ctx context.Context) models.Session
	Login(ctx context.Context, email, password string, remember bool) (Outcome, error)
	Register(ctx context.Context, name, email, password string) (Outcome, error)
	ForgotPassword(ctx context.Context, email string) (Outcome, error)
	Logout(ctx context.Context) Outcome
	ClearError()
	VerifySession(ctx context.Context) bool
	Session() models.Session
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	holder *session.Holder
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client,
// local database and Session holder.
func NewAuthService(c client.Client, db *sql.DB, holder *session.Holder, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{
		client: c,
		db:     db,
		holder: holder,
		logger: logger.With("module", "auth_store"),
	}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// begin marks an action in flight and returns the function that ends it.
// The returned function must be deferred so loading is cleared on every path.
func (a *authService) begin(authenticating bool) func() {
	a.holder.Update(func(s *models.Session) {
		s.IsLoading = true
		s.Error = ""
		if authenticating {
			s.State = models.StateAuthenticating
		}
	})
	return func() {
		a.holder.Update(func(s *models.Session) { s.IsLoading = false })
	}
}

func (a *authService) commitAuthenticated(user *models.UserProfile, token string) {
	a.holder.Update(func(s *models.Session) {
		s.User = user
		s.Token = token
		s.IsAuthenticated = true
		s.Error = ""
		s.State = models.StateAuthenticated
	})
}

// commitFailed leaves the Session unauthenticated. Any record a previous
// session left on disk goes with it, or the next Restore would revive it.
func (a *authService) commitFailed(ctx context.Context, msg string) {
	a.clearRecord(ctx)
	a.holder.Update(func(s *models.Session) {
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.Error = msg
		s.State = models.StateFailed
	})
}

func (a *authService) Restore(ctx context.Context) models.Session {
	repo := a.getMetadataRepo(a.db)

	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		a.logger.Warn(ctx, "restore: read token", "error", err)
		return a.discardRecord(ctx)
	}
	rawUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		a.logger.Warn(ctx, "restore: read user", "error", err)
		return a.discardRecord(ctx)
	}

	if len(token) == 0 || len(rawUser) == 0 {
		if len(token) > 0 || len(rawUser) > 0 {
			a.logger.Warn(ctx, "restore: partial token record")
		}
		return a.discardRecord(ctx)
	}

	var user models.UserProfile
	if err := json.Unmarshal(rawUser, &user); err != nil {
		a.logger.Warn(ctx, "restore: malformed user record", "error", err)
		return a.discardRecord(ctx)
	}

	a.commitAuthenticated(&user, string(token))
	a.logger.Info(ctx, "session restored", "user_id", user.ID)
	return a.holder.Snapshot()
}

func (a *authService) discardRecord(ctx context.Context) models.Session {
	a.clearRecord(ctx)
	return a.holder.Reset()
}

// clearRecord empties the metadata table, which holds nothing but the token
// record.
func (a *authService) clearRecord(ctx context.Context) {
	if err := a.getMetadataRepo(a.db).Clear(ctx); err != nil {
		a.logger.Warn(ctx, "failed to clear token record", "error", err)
	}
}

// saveRecord writes the token record in a single transaction.
func (a *authService) saveRecord(ctx context.Context, user *models.UserProfile, token string, remember bool) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyUser, rawUser); err != nil {
			return err
		}
		if remember {
			return repo.Set(ctx, KeyRememberMe, []byte("true"))
		}
		return repo.Delete(ctx, KeyRememberMe)
	})
}

// authenticate persists the record and then commits the Session. A storage
// failure leaves the Session Failed so that no token lives only in memory.
func (a *authService) authenticate(ctx context.Context, user *models.UserProfile, token string, remember bool) error {
	if err := a.saveRecord(ctx, user, token, remember); err != nil {
		a.logger.Error(ctx, "failed to persist token record", "error", err)
		a.commitFailed(ctx, err.Error())
		return err
	}
	a.commitAuthenticated(user, token)
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string, remember bool) (Outcome, error) {
	defer a.begin(true)()

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.logger.Info(ctx, "login failed", "email", email, "error", err)
		a.commitFailed(ctx, message(err, fallbackLogin))
		return Outcome{}, err
	}

	if err := a.authenticate(ctx, res.User, res.Token, remember); err != nil {
		return Outcome{}, err
	}

	a.logger.Info(ctx, "login succeeded", "user_id", res.User.ID)
	return Outcome{User: res.User, Redirect: RedirectHome}, nil
}

// Register authenticates only when the server answered with a session. A bare
// confirmation leaves the Session Anonymous and points the caller at /login.
func (a *authService) Register(ctx context.Context, name, email, password string) (Outcome, error) {
	defer a.begin(true)()

	res, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		a.logger.Info(ctx, "registration failed", "email", email, "error", err)
		a.commitFailed(ctx, message(err, fallbackRegister))
		return Outcome{}, err
	}

	if !res.Authenticated() {
		a.clearRecord(ctx)
		a.holder.Update(func(s *models.Session) {
			s.User = nil
			s.Token = ""
			s.IsAuthenticated = false
			s.Error = ""
			s.State = models.StateAnonymous
		})
		a.logger.Info(ctx, "registration confirmed", "user_id", res.UserID)
		return Outcome{Message: res.Message, Redirect: RedirectLogin}, nil
	}

	if err := a.authenticate(ctx, res.User, res.Token, false); err != nil {
		return Outcome{}, err
	}

	a.logger.Info(ctx, "registration succeeded", "user_id", res.User.ID)
	return Outcome{User: res.User, Message: res.Message, Redirect: RedirectHome}, nil
}

// ForgotPassword does not change who is signed in. A failure is recorded in
// Error; an authenticated Session stays Authenticated.
func (a *authService) ForgotPassword(ctx context.Context, email string) (Outcome, error) {
	defer a.begin(false)()

	if err := a.client.ForgotPassword(ctx, email); err != nil {
		msg := message(err, fallbackForgot)
		a.holder.Update(func(s *models.Session) {
			s.Error = msg
			if !s.IsAuthenticated {
				s.State = models.StateFailed
			}
		})
		return Outcome{}, err
	}

	return Outcome{Message: "Password reset link sent to " + email, Redirect: RedirectLogin}, nil
}

func (a *authService) Logout(ctx context.Context) Outcome {
	a.holder.Reset()
	a.clearRecord(ctx)
	return Outcome{Redirect: RedirectLogin}
}

func (a *authService) ClearError() {
	a.holder.Update(func(s *models.Session) { s.Error = "" })
}

// VerifySession is read-only: an invalid token is reported, not acted upon.
func (a *authService) VerifySession(ctx context.Context) bool {
	s := a.holder.Snapshot()
	if !s.IsAuthenticated {
		return false
	}
	return a.client.VerifyToken(ctx, s.Token)
}

func (a *authService) Session() models.Session {
	return a.holder.Snapshot()
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// message picks the text shown to the user for err.
func message(err error, fallback string) string {
	var ae *client.AuthError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
