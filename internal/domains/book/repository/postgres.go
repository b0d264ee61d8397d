package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/database"
)

// postgresRepository implements book.Repository on pgxpool. Single-book
// lookups go through a Redis read-through cache; every mutation
// invalidates both book and author entries, since author hydration
// embeds books.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookCacheKeyPrefix    = "book:"
	bookCacheKeyPattern   = "book:*"
	authorCacheKeyPattern = "author:*"
	cacheTTL              = 15 * time.Minute
)

const bookSelect = `
    SELECT b.id, b.title, b.year, b.author_id, b.created_at,
           a.id, a.name, a.email, a.biography
    FROM books b
    LEFT JOIN authors a ON a.id = b.author_id
`

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	return r.queryBooks(ctx, bookSelect+` ORDER BY b.id`)
}

func (r *postgresRepository) GetRecent(ctx context.Context, count int) ([]model.Book, error) {
	return r.queryBooks(ctx, bookSelect+` ORDER BY b.created_at DESC LIMIT $1`, count)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + fmt.Sprint(id)

	var cached model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	books, err := r.queryBooks(ctx, bookSelect+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, book.ErrBookNotFound
	}

	_ = r.cache.Set(ctx, cacheKey, books[0], cacheTTL)

	return &books[0], nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	index := make(map[int64]int)
	for rows.Next() {
		var b model.Book
		var authorID *int64
		var name, email *string
		var biography *string
		err := rows.Scan(
			&b.ID, &b.Title, &b.Year, &b.AuthorID, &b.CreatedAt,
			&authorID, &name, &email, &biography,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if authorID != nil {
			a := model.Author{ID: *authorID, Biography: biography}
			if name != nil {
				a.Name = *name
			}
			if email != nil {
				a.Email = *email
			}
			b.Author = &a
		}
		index[b.ID] = len(books)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	if err := r.hydrateCategories(ctx, books, index); err != nil {
		return nil, err
	}

	return books, nil
}

// hydrateCategories attaches each book's categories through the join
// table, preserving category id order.
func (r *postgresRepository) hydrateCategories(ctx context.Context, books []model.Book, index map[int64]int) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT bc.book_id, c.id, c.name, c.description
        FROM book_categories bc
        JOIN categories c ON c.id = bc.category_id
        WHERE bc.book_id = ANY($1)
        ORDER BY bc.book_id, c.id
    `, ids)
	if err != nil {
		return fmt.Errorf("failed to list book categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int64
		var c model.Category
		if err := rows.Scan(&bookID, &c.ID, &c.Name, &c.Description); err != nil {
			return fmt.Errorf("failed to scan book category: %w", err)
		}
		if i, ok := index[bookID]; ok {
			books[i].Categories = append(books[i].Categories, c)
		}
	}
	return rows.Err()
}

func (r *postgresRepository) CreateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) (int64, error) {
	id, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var bookID int64
		err := tx.QueryRow(ctx, `
            INSERT INTO books (title, year, author_id, created_at)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `, b.Title, b.Year, b.AuthorID, b.CreatedAt).Scan(&bookID)
		if err != nil {
			return 0, fmt.Errorf("failed to create book: %w", err)
		}

		if err := insertAssociations(ctx, tx, bookID, categoryIDs); err != nil {
			return 0, err
		}

		return bookID, nil
	})
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx)

	return id, nil
}

func (r *postgresRepository) UpdateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
            UPDATE books
            SET title = $2, year = $3, author_id = $4
            WHERE id = $1
        `, b.ID, b.Title, b.Year, b.AuthorID)
		if err != nil {
			return fmt.Errorf("failed to update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM book_categories WHERE book_id = $1`, b.ID,
		); err != nil {
			return fmt.Errorf("failed to clear book categories: %w", err)
		}

		return insertAssociations(ctx, tx, b.ID, categoryIDs)
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx)

	return nil
}

func insertAssociations(ctx context.Context, tx pgx.Tx, bookID int64, categoryIDs []int64) error {
	for _, categoryID := range categoryIDs {
		if _, err := tx.Exec(ctx, `
            INSERT INTO book_categories (book_id, category_id)
            VALUES ($1, $2)
            ON CONFLICT DO NOTHING
        `, bookID, categoryID); err != nil {
			return fmt.Errorf("failed to link category %d: %w", categoryID, err)
		}
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx)

	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	_ = r.cache.DeletePattern(ctx, bookCacheKeyPattern)
	_ = r.cache.DeletePattern(ctx, authorCacheKeyPattern)
}
