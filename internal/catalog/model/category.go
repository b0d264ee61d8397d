package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name,
			validation.Required.Error("Numele categoriei este obligatoriu"),
			validation.Length(2, 100).Error("Numele trebuie să aibă între 2 și 100 de caractere"),
		),
		validation.Field(&c.Description,
			validation.Length(0, 500).Error("Descrierea nu poate avea mai mult de 500 de caractere"),
		),
	)
}
