package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/dashauth/internal/client/services"
	"github.com/dmitrijs2005/dashauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the store's login action. On
// failure the server's message is printed and returned; on success the app
// navigates where the Outcome says.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	answer, err := getSimpleText(a.reader, "Remember me? [y/N]", a.out)
	if err != nil {
		return err
	}

	out, err := a.authService.Login(ctx, email, string(password), isYes(answer))
	if err != nil {
		printlnFn("Login failed:", a.authService.Session().Error)
		return err
	}

	printlnFn("Welcome,", displayName(out.User))
	return a.follow(ctx, out)
}

// Register prompts for name, email and password. A server that only confirms
// the account sends the user to the login page.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	out, err := a.authService.Register(ctx, name, email, string(password))
	if err != nil {
		printlnFn("Registration failed:", a.authService.Session().Error)
		return err
	}

	if out.Message != "" {
		printlnFn(out.Message)
	}
	if out.User != nil {
		printlnFn("Welcome,", displayName(out.User))
	}
	return a.follow(ctx, out)
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	out, err := a.authService.ForgotPassword(ctx, email)
	if err != nil {
		printlnFn("Request failed:", a.authService.Session().Error)
		return err
	}

	printlnFn(out.Message)
	return a.follow(ctx, out)
}

func (a *App) Logout(ctx context.Context) error {
	out := a.authService.Logout(ctx)
	printlnFn("Logged out")
	return a.follow(ctx, out)
}

func (a *App) ClearError() {
	a.authService.ClearError()
}

// follow performs the navigation an action asked for.
func (a *App) follow(ctx context.Context, out services.Outcome) error {
	if out.Redirect == "" {
		return nil
	}
	return a.Navigate(ctx, out.Redirect)
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
