// Package cli provides the interactive dashauth command-line client.
//
// It wires configuration, the local session database, the auth client, the
// Auth State Store and the router, then runs a REPL that stands in for the
// dashboard UI: commands trigger store actions, and the CLI performs the
// navigation each action's Outcome asks for.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
