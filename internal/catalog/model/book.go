package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Book is a catalog book. Author and Categories are hydrated on loads;
// AuthorID is the authoritative reference.
type Book struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Year      int       `json:"year" db:"year"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Author     *Author    `json:"author,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

// BookCategory is one association row linking a book to a category.
type BookCategory struct {
	BookID     int64 `json:"book_id" db:"book_id"`
	CategoryID int64 `json:"category_id" db:"category_id"`
}

func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error("Titlul cărții este obligatoriu"),
			validation.Length(1, 200).Error("Titlul trebuie să aibă între 1 și 200 de caractere"),
		),
		validation.Field(&b.Year,
			// Required catches the zero value, which Min/Max skip.
			validation.Required.Error("Anul trebuie să fie între 1000 și 9999"),
			validation.Min(1000).Error("Anul trebuie să fie între 1000 și 9999"),
			validation.Max(9999).Error("Anul trebuie să fie între 1000 și 9999"),
		),
		validation.Field(&b.AuthorID,
			validation.Required.Error("Autorul este obligatoriu"),
		),
	)
}

// HasCategory reports whether the book is associated with the category.
func (b Book) HasCategory(categoryID int64) bool {
	for _, c := range b.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// AgeLabel renders how long ago the book was added, in the catalog's
// display language.
func (b Book) AgeLabel(now time.Time) string {
	age := now.Sub(b.CreatedAt)

	switch {
	case age < time.Hour:
		return fmt.Sprintf("%d min", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	case age < 30*24*time.Hour:
		return fmt.Sprintf("%d zile", int(age.Hours()/24))
	case age < 365*24*time.Hour:
		return fmt.Sprintf("%d luni", int(age.Hours()/24/30))
	default:
		return fmt.Sprintf("%d ani", int(age.Hours()/24/365))
	}
}
