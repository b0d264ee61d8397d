package book

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Service defines book business logic, including the book–category
// association workflow.
type Service interface {
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetRecent(ctx context.Context, count int) ([]model.Book, error)

	// CreateWithCategories validates the book, requires the author to
	// exist, stamps CreatedAt in the catalog time zone, persists the
	// book and one association per existing requested category id
	// (unknown ids are skipped), and returns the hydrated book.
	CreateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) (*model.Book, error)

	// UpdateWithCategories replaces title, year and author of an
	// existing book and swaps its whole association set for the valid
	// requested ids. Returns ErrBookNotFound when the id is absent.
	UpdateWithCategories(ctx context.Context, id int64, b *model.Book, categoryIDs []int64) (*model.Book, error)

	Delete(ctx context.Context, id int64) error
}
