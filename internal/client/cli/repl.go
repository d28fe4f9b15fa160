package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Forgot(ctx context.Context) error
	Logout(ctx context.Context) error
	Navigate(ctx context.Context, path string) error
	Where()
	WhoAmI()
	Verify(ctx context.Context) error
	ClearError()
}

const (
	helpAnonymous     = "Available commands: login, register, forgot, go <path>, where, whoami, clear, exit"
	helpAuthenticated = "Available commands: go <path>, where, whoami, verify, clear, logout, exit"
)

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
//	help           show available commands
//	login          sign in (email, password, remember me)
//	register       create an account
//	forgot         request a password reset link
//	logout         sign out and forget the stored token
//	go <path>      navigate, e.g. "go /profile"
//	where          show the current route
//	whoami         show the signed-in user and the last error
//	verify         ask the server whether the stored token is still valid
//	clear          clear the last error
//	exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("dashauth %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Input error:", err)
			}
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpAuthenticated)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Navigate(ctx, args[0])

		case "where":
			a.Where()

		case "whoami":
			a.WhoAmI()

		case "verify":
			_ = a.Verify(ctx)

		case "clear":
			a.ClearError()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
