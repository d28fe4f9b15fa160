package client

import (
	"errors"
	"fmt"
)

// Kind classifies an AuthError.
type Kind int

const (
	// KindTransport: the server could not be reached, failed internally or
	// answered with something that is not JSON.
	KindTransport Kind = iota + 1
	// KindCredential: the server rejected the request (bad credentials,
	// duplicate email, validation).
	KindCredential
	// KindProtocol: a success status whose body lacks required fields.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindCredential:
		return "credential"
	case KindProtocol:
		return "protocol"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrTransport  = errors.New("transport error")
	ErrCredential = errors.New("credential error")
	ErrProtocol   = errors.New("protocol error")
)

const (
	msgUnreachable     = "Unable to reach the authentication server"
	msgInvalidResponse = "Invalid response from the authentication server"
	msgMissingToken    = "missing token"
	msgMissingUser     = "missing user"
)

// AuthError is returned by every failing Client call. Message is safe to show
// to the user; Status is the HTTP status when one was received; Err is the
// underlying cause, if any.
type AuthError struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *AuthError) sentinel() error {
	switch e.Kind {
	case KindCredential:
		return ErrCredential
	case KindProtocol:
		return ErrProtocol
	default:
		return ErrTransport
	}
}

func transportError(msg string, cause error) *AuthError {
	return &AuthError{Kind: KindTransport, Message: msg, Err: cause}
}

func protocolError(status int, msg string) *AuthError {
	return &AuthError{Kind: KindProtocol, Status: status, Message: msg}
}
