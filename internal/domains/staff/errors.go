package staff

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func IsValidation(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
