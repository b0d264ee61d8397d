package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Author is a catalog author. Books is a back-reference hydrated on
// loads; it is never authoritative for writes.
type Author struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Email     string  `json:"email" db:"email"`
	Biography *string `json:"biography,omitempty" db:"biography"`

	Books []Book `json:"books,omitempty"`
}

// Validate enforces the author form rules. Messages are user-facing
// and shown verbatim on the active form.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name,
			validation.Required.Error("Numele autorului este obligatoriu"),
			validation.Length(2, 100).Error("Numele trebuie să aibă între 2 și 100 de caractere"),
		),
		validation.Field(&a.Email,
			validation.Required.Error("Adresa de email este obligatorie"),
			is.Email.Error("Formatul emailului nu este valid"),
			validation.Length(0, 255).Error("Emailul nu poate avea mai mult de 255 de caractere"),
		),
		validation.Field(&a.Biography,
			validation.Length(0, 1000).Error("Biografia nu poate avea mai mult de 1000 de caractere"),
		),
	)
}
