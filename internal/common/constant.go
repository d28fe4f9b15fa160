// Package common contains shared constants, sentinel errors and small helpers
// used across the dashauth client and the stub auth server.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a client request with server-side logs.
	RequestIDHeaderName = "X-Request-ID"
)
