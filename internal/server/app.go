// Package server wires the stub auth endpoint: configuration, logging, the
// in-memory user store seeded with the demo account and the HTTP server.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/dashauth/internal/logging"
	"github.com/dmitrijs2005/dashauth/internal/server/config"
	"github.com/dmitrijs2005/dashauth/internal/server/httpapi"
	"github.com/dmitrijs2005/dashauth/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	server      *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	us := users.NewService(users.NewMemoryRepository(), c)
	demo, err := us.SeedDemo(context.Background())
	if err != nil {
		return nil, fmt.Errorf("seed demo user: %w", err)
	}
	logger.Info(context.Background(), "demo user ready", "user_id", demo.ID, "email", demo.Email)

	router := httpapi.NewRouter(us, httpapi.Options{
		Logger:              logger,
		BasePath:            c.BasePath,
		RegisterConfirmOnly: c.RegisterConfirmOnly,
	})

	return &App{
		config:      c,
		logger:      logger,
		userService: us,
		server:      httpapi.NewServer(c.EndpointAddr, router, logger),
	}, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "base_path", app.config.BasePath)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
