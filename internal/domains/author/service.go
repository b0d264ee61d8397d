package author

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Service defines author business logic. Create and Update validate
// the entity before touching the repository; validation failures are
// returned with user-facing messages.
type Service interface {
	GetAll(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
}
