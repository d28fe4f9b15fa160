// Package router is the client-side navigation layer: a table of named
// routes, path matching, the authentication guard and navigation history.
package router

import (
	"path"
	"strings"
)

// Meta carries the access rules of a route. RequiresAuth routes are for
// signed-in users only; Guest routes are for anonymous users only.
type Meta struct {
	RequiresAuth bool
	Guest        bool
}

// Route is one entry of the table. A child Path without a leading slash is
// relative to its parent.
type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Children []Route
}

const (
	PathDashboard      = "/"
	PathRequestBuilder = "/request-builder"
	PathTestResults    = "/test-results"
	PathProfile        = "/profile"
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathForgotPassword = "/forgot-password"
)

// DefaultRoutes returns the dashboard's route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathDashboard, Name: "Dashboard", Meta: Meta{RequiresAuth: true}},
		{Path: PathRequestBuilder, Name: "RequestBuilder", Meta: Meta{RequiresAuth: true}},
		{Path: PathTestResults, Name: "TestResults", Meta: Meta{RequiresAuth: true}},
		{Path: PathProfile, Name: "UserProfile", Meta: Meta{RequiresAuth: true}},
		{Path: PathLogin, Name: "Login", Meta: Meta{Guest: true}},
		{Path: PathRegister, Name: "Register", Meta: Meta{Guest: true}},
		{Path: PathForgotPassword, Name: "ForgotPassword", Meta: Meta{Guest: true}},
	}
}

// Match returns the chain of routes matching p, root to leaf. Unknown paths
// match nothing.
func Match(routes []Route, p string) []Route {
	return match(routes, "/", cleanPath(p))
}

func match(routes []Route, parent, p string) []Route {
	for _, r := range routes {
		full := joinPath(parent, r.Path)
		if full == p {
			return []Route{r}
		}
		if len(r.Children) > 0 && strings.HasPrefix(p, strings.TrimSuffix(full, "/")+"/") {
			if chain := match(r.Children, full, p); chain != nil {
				return append([]Route{r}, chain...)
			}
		}
	}
	return nil
}

func joinPath(parent, p string) string {
	if strings.HasPrefix(p, "/") {
		return cleanPath(p)
	}
	return cleanPath(parent + "/" + p)
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
