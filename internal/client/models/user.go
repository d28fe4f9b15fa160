// Package models defines the client-side data types of dashauth: the user
// profile returned by the server, transient credentials and the Session.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UserID is the server-issued user identifier. The server sends integers,
// but the value is treated as opaque, so both JSON numbers and strings decode.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so a persisted profile
// round-trips to the shape the server sent.
func (id UserID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UserProfile is the opaque user record returned by the server. Only presence
// is checked; fields beyond these are ignored.
type UserProfile struct {
	ID    UserID `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Credentials exist only for the duration of a request and are never persisted.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
