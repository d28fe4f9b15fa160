package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dashauth/internal/common"
	"github.com/dmitrijs2005/dashauth/internal/logging"
	"github.com/dmitrijs2005/dashauth/internal/server/users"
)

const maxBodyBytes = 1 << 20

const (
	msgInvalidBody        = "Invalid request body"
	msgCredentialsMissing = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgEmailTaken         = "This email is already registered"
	msgInvalidEmail       = "Invalid email"
	msgInvalidToken       = "Invalid or expired token"
	msgInternal           = "Internal server error"
	msgRegistered         = "User registered successfully"
	msgResetSent          = "If the email is registered, a password reset link has been sent"
)

type Handlers struct {
	users               *users.Service
	logger              logging.Logger
	registerConfirmOnly bool
}

type userDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toDTO(u *users.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

type sessionDTO struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// decodeStrict rejects unknown fields and bodies over maxBodyBytes.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

func isValidation(err error) bool {
	return errors.Is(err, common.ErrorValidation)
}
