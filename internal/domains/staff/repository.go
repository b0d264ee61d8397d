package staff

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	Create(ctx context.Context, s *Staff) (int64, error)
	Count(ctx context.Context) (int64, error)
}
