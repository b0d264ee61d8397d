package category

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// IsValidation reports whether err is a user-correctable validation
// failure.
func IsValidation(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}
