package cli

import (
	"context"
	"fmt"
)

// Navigate asks the router for path and reports where the guard let us in.
func (a *App) Navigate(ctx context.Context, path string) error {
	want, err := a.router.Resolve(path)
	if err != nil {
		printlnFn("Navigation failed:", err)
		return err
	}

	loc, err := a.router.Push(ctx, path)
	if err != nil {
		printlnFn("Navigation failed:", err)
		return err
	}

	if loc.FullPath() != want.FullPath() {
		printlnFn(fmt.Sprintf("Redirected to %s", loc.FullPath()))
	}
	return nil
}

func (a *App) Where() {
	loc := a.router.Current()
	if loc.Name == "" {
		printlnFn(loc.FullPath())
		return
	}
	printlnFn(fmt.Sprintf("%s (%s)", loc.FullPath(), loc.Name))
}

func (a *App) WhoAmI() {
	s := a.authService.Session()
	if !s.IsAuthenticated {
		printlnFn("Not signed in")
	} else {
		printlnFn("Signed in as", displayName(s.User))
	}
	if s.Error != "" {
		printlnFn("Last error:", s.Error)
	}
}

func (a *App) Verify(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in")
		return nil
	}
	if a.authService.VerifySession(ctx) {
		printlnFn("Token is valid")
	} else {
		printlnFn("Token was rejected by the server; use 'logout' and sign in again")
	}
	return nil
}
