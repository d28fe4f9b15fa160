package httpapi

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/dashauth/internal/server/users"
)

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error(msgCredentialsMissing), users.EmailRule.Error(msgInvalidEmail)),
		validation.Field(&r.Password, validation.Required.Error(msgCredentialsMissing)),
	)
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, 200)),
		validation.Field(&r.Email, validation.Required.Error(msgCredentialsMissing), users.EmailRule.Error(msgInvalidEmail)),
		validation.Field(&r.Password, validation.Required.Error(msgCredentialsMissing)),
	)
}

func (r forgotRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error(msgInvalidEmail), users.EmailRule.Error(msgInvalidEmail)),
	)
}

// validationMessage picks one message out of a field error map, email first.
func validationMessage(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return msgInvalidBody
	}
	for _, field := range []string{"email", "password", "name"} {
		if fe, ok := errs[field]; ok {
			return fe.Error()
		}
	}
	return msgInvalidBody
}
