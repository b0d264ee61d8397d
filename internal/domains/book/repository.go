package book

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Repository defines book data access. All lookups hydrate the Author
// and Categories relations.
type Repository interface {
	// GetAll returns every book in insertion order, hydrated.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByID returns ErrBookNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetRecent returns the count most recently added books, newest
	// first, hydrated.
	GetRecent(ctx context.Context, count int) ([]model.Book, error)

	// CreateWithCategories inserts the book row and one association
	// per category id in a single transaction, returning the new id.
	// The caller is responsible for resolving category ids to
	// existing categories beforehand.
	CreateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) (int64, error)

	// UpdateWithCategories replaces title, year and author on the
	// existing row, removes all of the book's associations and inserts
	// the given ones, atomically. Returns ErrBookNotFound when absent.
	UpdateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) error

	// Delete removes the book; associations cascade at the schema
	// level. Returns ErrBookNotFound when the id is absent.
	Delete(ctx context.Context, id int64) error
}
