package router

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/dashauth/internal/client/models"
)

// RedirectQueryKey carries the originally requested path to the login page.
const RedirectQueryKey = "redirect"

// Decision is the guard's verdict. Redirect is empty when navigation is
// allowed as requested.
type Decision struct {
	Redirect string
}

func (d Decision) Allowed() bool { return d.Redirect == "" }

// Guard decides whether `to` may be entered with the Session s. The
// authentication check runs before the guest check.
func Guard(to Location, s models.Session) Decision {
	if requires(to.Matched, func(m Meta) bool { return m.RequiresAuth }) {
		if !s.IsAuthenticated {
			return Decision{Redirect: loginRedirect(to.FullPath())}
		}
		return Decision{}
	}

	if requires(to.Matched, func(m Meta) bool { return m.Guest }) && s.IsAuthenticated {
		return Decision{Redirect: PathDashboard}
	}

	return Decision{}
}

func requires(chain []Route, pred func(Meta) bool) bool {
	for _, r := range chain {
		if pred(r.Meta) {
			return true
		}
	}
	return false
}

// loginRedirect builds /login?redirect=<full path>.
func loginRedirect(fullPath string) string {
	return PathLogin + "?" + encodeQuery(url.Values{RedirectQueryKey: {fullPath}})
}

// encodeQuery is url.Values.Encode with slashes left readable.
func encodeQuery(v url.Values) string {
	return strings.ReplaceAll(v.Encode(), "%2F", "/")
}
