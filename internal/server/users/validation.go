package users

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/dashauth/internal/common"
)

// EmailRule checks address syntax only. is.Email would also resolve MX
// records, which the in-memory registry has no use for.
var EmailRule = validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, validation.Length(3, 254), EmailRule),
		validation.Field(&c.Password, validation.Required),
	)
}

// validated wraps an ozzo error so callers can match common.ErrorValidation.
func validated(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

func validateEmail(email string) error {
	return validated(validation.Validate(email, validation.Required, EmailRule))
}
