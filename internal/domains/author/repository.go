package author

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Repository defines author data access. Lookups hydrate the Books
// back-reference.
type Repository interface {
	// GetAll returns every author with their books.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// Create inserts a new author and returns it with its id.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Update replaces name, email and biography.
	// Returns ErrAuthorNotFound when the id is absent.
	Update(ctx context.Context, a *model.Author) (*model.Author, error)

	// Delete removes the author; its books cascade at the schema level.
	// Returns ErrAuthorNotFound when the id is absent.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
