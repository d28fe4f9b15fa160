// Package httpapi exposes the stub auth endpoint over REST/JSON.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/dashauth/internal/logging"
	"github.com/dmitrijs2005/dashauth/internal/server/users"
	"github.com/go-chi/chi/v5"
)

// Options configure NewRouter.
type Options struct {
	Logger logging.Logger
	// BasePath prefixes every auth route, e.g. "/api/v1". Empty mounts them at the root.
	BasePath string
	// RegisterConfirmOnly makes /register answer {message,user_id} instead of a session.
	RegisterConfirmOnly bool
}

// NewRouter assembles the chi router with middleware and routes.
func NewRouter(us *users.Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	logger := opts.Logger.With("module", "http_api")

	root := chi.NewRouter()
	root.Use(
		recoverer(logger),
		requestID(),
		requestLogger(logger),
	)

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	h := &Handlers{
		users:               us,
		logger:              logger,
		registerConfirmOnly: opts.RegisterConfirmOnly,
	}

	if opts.BasePath != "" && opts.BasePath != "/" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
	} else {
		registerRoutes(root, h)
	}

	return root
}

func registerRoutes(r chi.Router, h *Handlers) {
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Get("/verify-token", h.VerifyToken)
	r.Get("/health", h.Health)
}
