package client

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/dashauth/internal/client/models"
)

type authPayload struct {
	User    *models.UserProfile `json:"user"`
	Token   string              `json:"token"`
	Message string              `json:"message"`
	UserID  models.UserID       `json:"user_id"`
}

// authEnvelope covers both accepted shapes: the payload nested under "data"
// or spread over the top level.
type authEnvelope struct {
	Data *authPayload `json:"data"`
	authPayload
}

// decodeAuthEnvelope is the single normalization point for success bodies.
// A nested "data" object wins over top-level fields. Bodies that are not JSON
// are transport errors; JSON of the wrong shape is a protocol error.
func decodeAuthEnvelope(status int, body []byte) (authPayload, error) {
	if !json.Valid(body) {
		return authPayload{}, &AuthError{Kind: KindTransport, Status: status, Message: msgInvalidResponse}
	}

	var env authEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return authPayload{}, &AuthError{Kind: KindProtocol, Status: status, Message: msgInvalidResponse, Err: err}
	}

	if env.Data != nil {
		return *env.Data, nil
	}
	return env.authPayload, nil
}

// errorMessage extracts the server's explanation from an error body:
// {"error":"..."}, {"error":{"message":"..."}} or {"message":"..."}.
func errorMessage(body []byte, fallback string) string {
	var eb struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return fallback
	}

	raw := bytes.TrimSpace(eb.Error)
	if len(raw) > 0 {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}

	if eb.Message != "" {
		return eb.Message
	}
	return fallback
}
