package category

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Service defines category business logic.
type Service interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	Update(ctx context.Context, id int64, c *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}
