package category

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Repository defines category data access.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Category, error)

	// GetByID returns ErrCategoryNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	Create(ctx context.Context, c *model.Category) (*model.Category, error)

	// Update returns ErrCategoryNotFound when the id is absent.
	Update(ctx context.Context, c *model.Category) (*model.Category, error)

	// Delete removes the category; its book associations cascade at
	// the schema level. Returns ErrCategoryNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks existence without fetching the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
