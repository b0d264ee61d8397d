// Package staff covers the accounts that operate the catalog and their
// token-based authentication.
package staff

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Staff struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Adresa de email este obligatorie"),
			is.Email.Error("Formatul emailului nu este valid"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Parola este obligatorie"),
		),
	)
}

// LoginResponse carries the bearer token and the signed-in account.
type LoginResponse struct {
	Token string `json:"token"`
	Staff Staff  `json:"staff"`
}
