package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/dashauth/internal/client/client"
	"github.com/dmitrijs2005/dashauth/internal/client/config"
	"github.com/dmitrijs2005/dashauth/internal/client/models"
	"github.com/dmitrijs2005/dashauth/internal/client/router"
	"github.com/dmitrijs2005/dashauth/internal/client/services"
	"github.com/dmitrijs2005/dashauth/internal/client/session"
	"github.com/dmitrijs2005/dashauth/internal/filex"
	"github.com/dmitrijs2005/dashauth/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	router      *router.Router
	holder      *session.Holder
	db          *sql.DB
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local session database, builds the auth client, the
// store and the router, and returns an App ready to Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	holder := session.NewHolder()
	as := services.NewAuthService(apiClient, db, holder, logger)

	a := newApp(as, holder, bufio.NewReader(os.Stdin), os.Stdout, logger)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(as services.AuthService, holder *session.Holder, reader *bufio.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &App{
		authService: as,
		holder:      holder,
		router:      router.New(router.DefaultRoutes(), holder, router.WithLogger(logger)),
		logger:      logger.With("module", "cli"),
		reader:      reader,
		out:         out,
	}
	a.router.OnNavigate(func(from, to router.Location) {
		a.logger.Debug(context.Background(), "navigated", "from", from.FullPath(), "to", to.FullPath())
	})
	return a
}

// Run blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.watchSession(ctx)

	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing auth client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
}

// watchSession logs every Session transition until ctx is done.
func (a *App) watchSession(ctx context.Context) {
	ch, unsubscribe := a.holder.Subscribe()
	defer unsubscribe()

	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return
			}
			a.logger.Debug(ctx, "session changed",
				"state", s.State, "authenticated", s.IsAuthenticated, "loading", s.IsLoading)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.Session().IsAuthenticated
}

func displayName(u *models.UserProfile) string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return fmt.Sprintf("%s <%s>", u.Name, u.Email)
	}
	return u.Email
}
