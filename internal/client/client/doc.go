// Package client is the Auth Client of dashauth: it turns credentials into
// requests against the remote REST authentication endpoint and normalizes the
// responses into a canonical result or an *AuthError.
//
// # Overview
//
//  1. Client is the transport-agnostic contract used by the session store:
//     Login, Register, ForgotPassword, VerifyToken, Close.
//  2. HTTPClient implements it over net/http against a base URL such as
//     http://127.0.0.1:8080/api/v1.
//  3. InitDatabase / RunMigrations bootstrap the local SQLite database that
//     backs durable session storage.
//
// # Response shapes
//
// Successful auth responses are accepted as {"data":{"user","token"}} or as
// the flat {"user","token"}. decodeAuthEnvelope is the only place that knows
// about both; callers receive an *AuthResult either way.
//
// # Error Handling
//
// Every failure is an *AuthError whose Kind classifies it; match with
// errors.Is against ErrTransport, ErrCredential or ErrProtocol. The Error()
// text is the user-facing message. VerifyToken never fails: any problem is
// reported as an invalid token.
package client
