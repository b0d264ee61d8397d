package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/staff"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) staff.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	var s staff.Staff
	err := r.pool.QueryRow(ctx, `
        SELECT id, email, full_name, password_hash, created_at
        FROM staff
        WHERE email = $1
    `, email).Scan(&s.ID, &s.Email, &s.FullName, &s.PasswordHash, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, staff.ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *staff.Staff) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO staff (email, full_name, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id
    `, s.Email, s.FullName, s.PasswordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create staff member: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff members: %w", err)
	}
	return count, nil
}
