package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/dashauth/internal/client/models"
	"github.com/dmitrijs2005/dashauth/internal/logging"
)

var (
	ErrRedirectLoop     = errors.New("redirect loop")
	ErrTooManyRedirects = errors.New("too many redirects")
)

const defaultMaxRedirects = 5

// Location is a resolved navigation target.
type Location struct {
	Path    string
	Query   url.Values
	Name    string
	Matched []Route
}

// FullPath is the path with its encoded query, if any.
func (l Location) FullPath() string {
	if len(l.Query) == 0 {
		return l.Path
	}
	return l.Path + "?" + encodeQuery(l.Query)
}

// SessionSource supplies the Session the guard evaluates.
type SessionSource interface {
	Snapshot() models.Session
}

// Listener is called after every completed navigation.
type Listener func(from, to Location)

type Router struct {
	routes       []Route
	sessions     SessionSource
	logger       logging.Logger
	maxRedirects int

	mu        sync.Mutex
	current   Location
	history   []Location
	listeners []Listener
}

type Option func(*Router)

func WithLogger(l logging.Logger) Option {
	return func(r *Router) { r.logger = l }
}

// WithMaxRedirects bounds how many guard redirects a single Push follows.
func WithMaxRedirects(n int) Option {
	return func(r *Router) { r.maxRedirects = n }
}

func New(routes []Route, sessions SessionSource, opts ...Option) *Router {
	r := &Router{
		routes:       routes,
		sessions:     sessions,
		logger:       logging.Nop(),
		maxRedirects: defaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("module", "router")
	return r
}

// Resolve parses target ("/path?query") and matches it against the table.
func (r *Router) Resolve(target string) (Location, error) {
	u, err := url.Parse(target)
	if err != nil {
		return Location{}, fmt.Errorf("invalid path %q: %w", target, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return Location{}, fmt.Errorf("invalid path %q: external urls are not routable", target)
	}

	loc := Location{Path: cleanPath(u.Path), Query: u.Query()}
	loc.Matched = Match(r.routes, loc.Path)
	if n := len(loc.Matched); n > 0 {
		loc.Name = loc.Matched[n-1].Name
	}
	return loc, nil
}

// Push navigates to target, following guard redirects. The returned Location
// is where navigation ended up.
func (r *Router) Push(ctx context.Context, target string) (Location, error) {
	seen := make(map[string]bool)

	for hops := 0; ; hops++ {
		if err := ctx.Err(); err != nil {
			return Location{}, err
		}

		loc, err := r.Resolve(target)
		if err != nil {
			return Location{}, err
		}

		full := loc.FullPath()
		if seen[full] {
			return Location{}, fmt.Errorf("%w at %s", ErrRedirectLoop, full)
		}
		seen[full] = true

		d := Guard(loc, r.sessions.Snapshot())
		if d.Allowed() {
			r.commit(loc)
			return loc, nil
		}

		if hops >= r.maxRedirects {
			return Location{}, fmt.Errorf("%w navigating to %s", ErrTooManyRedirects, target)
		}

		r.logger.Debug(ctx, "navigation redirected", "from", full, "to", d.Redirect)
		target = d.Redirect
	}
}

func (r *Router) commit(to Location) {
	r.mu.Lock()
	from := r.current
	r.current = to
	r.history = append(r.history, to)
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(from, to)
	}
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns the locations navigated to, oldest first.
func (r *Router) History() []Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Location(nil), r.history...)
}

func (r *Router) OnNavigate(fn Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

func (r *Router) Routes() []Route {
	return r.routes
}
