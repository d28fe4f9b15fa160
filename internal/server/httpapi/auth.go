package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dashauth/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotRequest struct {
	Email string `json:"email"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, token, err := h.users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.logger.Error(r.Context(), "login", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, dataEnvelope{Data: sessionDTO{User: toDTO(user), Token: token}})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.users.Register(r.Context(), in.Name, in.Email, in.Password)
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, msgEmailTaken)
		return
	case isValidation(err):
		writeError(w, http.StatusBadRequest, msgInvalidEmail)
		return
	case err != nil:
		h.logger.Error(r.Context(), "register", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.logger.Info(r.Context(), "user registered", "user_id", user.ID)

	if h.registerConfirmOnly {
		writeJSON(w, http.StatusCreated, messageBody{Message: msgRegistered, UserID: user.ID})
		return
	}

	token, err := h.users.IssueToken(user)
	if err != nil {
		h.logger.Error(r.Context(), "issue token", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, dataEnvelope{Data: sessionDTO{User: toDTO(user), Token: token}})
}

// ForgotPassword answers the same way for known and unknown emails. The reset
// token only goes to the log.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forgotRequest
	if err := decodeStrict(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resetToken, err := h.users.ForgotPassword(r.Context(), in.Email)
	if err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, msgInvalidEmail)
			return
		}
		h.logger.Error(r.Context(), "forgot password", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if resetToken != "" {
		h.logger.Info(r.Context(), "password reset requested", "email", in.Email, "reset_token", resetToken)
	}
	writeJSON(w, http.StatusOK, messageBody{Message: msgResetSent})
}

func (h *Handlers) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	user, err := h.users.VerifyToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			writeError(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}
		h.logger.Error(r.Context(), "verify token", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, dataEnvelope{Data: map[string]any{"valid": true, "user": toDTO(user)}})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
