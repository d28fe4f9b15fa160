package cli

import (
	"context"
	"fmt"

	"github.com/common-nighthawk/go-figure"
)

const appName = "dashauth"

func (a *App) getStatus() string {
	s := a.authService.Session()
	loc := a.router.Current()

	status := loc.Path
	if s.IsAuthenticated && s.User != nil {
		status = s.User.Email + " " + status
	}
	if s.IsLoading {
		status += " ..."
	}
	if status != "" {
		status = fmt.Sprintf("(%s)", status)
	}
	return status
}

// Root prints the banner, restores any persisted session, lands on the
// dashboard (or wherever the guard sends us) and runs the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn(figure.NewFigure(appName, "small", true).String())
	printlnFn("Type 'help' for commands")

	if s := a.authService.Restore(ctx); s.IsAuthenticated {
		printlnFn("Restored session for", displayName(s.User))
	}

	_ = a.Navigate(ctx, "/")

	runREPL(ctx, a, a.getStatus, a.reader)
}
