package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/pkg/cache"
)

// postgresRepository implements author.Repository on pgxpool with a
// Redis read-through cache on single-author lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	authorCacheKeyPrefix  = "author:"
	authorCacheKeyPattern = "author:*"
	cacheTTL              = 15 * time.Minute
)

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, email, biography
        FROM authors
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	index := make(map[int64]int)
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Biography); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		index[a.ID] = len(authors)
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	if err := r.hydrateBooks(ctx, authors, index); err != nil {
		return nil, err
	}

	return authors, nil
}

// hydrateBooks attaches each author's books (no nested hydration).
func (r *postgresRepository) hydrateBooks(ctx context.Context, authors []model.Author, index map[int64]int) error {
	if len(authors) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, title, year, author_id, created_at
        FROM books
        ORDER BY id
    `)
	if err != nil {
		return fmt.Errorf("failed to list books for authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Year, &b.AuthorID, &b.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan book: %w", err)
		}
		if i, ok := index[b.AuthorID]; ok {
			authors[i].Books = append(authors[i].Books, b)
		}
	}
	return rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + fmt.Sprint(id)

	var cached model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var a model.Author
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, email, biography
        FROM authors
        WHERE id = $1
    `, id).Scan(&a.ID, &a.Name, &a.Email, &a.Biography)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	index := map[int64]int{a.ID: 0}
	authors := []model.Author{a}
	if err := r.hydrateBooks(ctx, authors, index); err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, authors[0], cacheTTL)

	return &authors[0], nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	err := r.pool.QueryRow(ctx, `
        INSERT INTO authors (name, email, biography)
        VALUES ($1, $2, $3)
        RETURNING id
    `, a.Name, a.Email, a.Biography).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	_ = r.cache.DeletePattern(ctx, authorCacheKeyPattern)

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE authors
        SET name = $2, email = $3, biography = $4
        WHERE id = $1
    `, a.ID, a.Name, a.Email, a.Biography)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, author.ErrAuthorNotFound
	}

	_ = r.cache.DeletePattern(ctx, authorCacheKeyPattern)

	return a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.DeletePattern(ctx, authorCacheKeyPattern)

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}
