package staff

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// EnsureAdmin seeds the configured admin account when the staff
	// table is empty. It is a no-op otherwise.
	EnsureAdmin(ctx context.Context, email, password string) error
}
