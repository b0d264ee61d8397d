package author

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
)

// IsValidation reports whether err is a user-correctable validation
// failure whose message can be shown on the form.
func IsValidation(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
