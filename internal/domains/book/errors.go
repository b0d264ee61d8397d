package book

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// AuthorMissingError is returned when a book references an author that
// does not exist. The message is user-facing.
type AuthorMissingError struct {
	AuthorID int64
}

func (e *AuthorMissingError) Error() string {
	return fmt.Sprintf("Autorul cu ID-ul %d nu există.", e.AuthorID)
}

// IsValidation reports whether err is a user-correctable validation
// failure whose message can be shown on the form.
func IsValidation(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var missing *AuthorMissingError
	return errors.As(err, &missing)
}
