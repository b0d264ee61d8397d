package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/category"
)

const defaultRecentCount = 3

type bookService struct {
	repo       book.Repository
	authors    author.Repository
	categories category.Repository
	location   *time.Location

	// now is overridable in tests.
	now func() time.Time
}

// NewBookService wires the association workflow. New books are stamped
// with the current time in location regardless of the server clock.
func NewBookService(repo book.Repository, authors author.Repository, categories category.Repository, location *time.Location) book.Service {
	return &bookService{
		repo:       repo,
		authors:    authors,
		categories: categories,
		location:   location,
		now:        time.Now,
	}
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	if id == 0 {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetRecent(ctx context.Context, count int) ([]model.Book, error) {
	if count <= 0 {
		count = defaultRecentCount
	}
	return s.repo.GetRecent(ctx, count)
}

func (s *bookService) CreateWithCategories(ctx context.Context, b *model.Book, categoryIDs []int64) (*model.Book, error) {
	b.Title = strings.TrimSpace(b.Title)

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireAuthor(ctx, b.AuthorID); err != nil {
		return nil, err
	}

	validIDs, err := s.existingCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	toCreate := &model.Book{
		Title:     b.Title,
		Year:      b.Year,
		AuthorID:  b.AuthorID,
		CreatedAt: s.now().In(s.location),
	}

	id, err := s.repo.CreateWithCategories(ctx, toCreate, validIDs)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *bookService) UpdateWithCategories(ctx context.Context, id int64, b *model.Book, categoryIDs []int64) (*model.Book, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Title = strings.TrimSpace(b.Title)

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireAuthor(ctx, b.AuthorID); err != nil {
		return nil, err
	}

	validIDs, err := s.existingCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	// CreatedAt is immutable; only title, year and author change.
	toUpdate := &model.Book{
		ID:       existing.ID,
		Title:    b.Title,
		Year:     b.Year,
		AuthorID: b.AuthorID,
	}

	if err := s.repo.UpdateWithCategories(ctx, toUpdate, validIDs); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) requireAuthor(ctx context.Context, authorID int64) error {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("failed to check author %d: %w", authorID, err)
	}
	if !exists {
		return &book.AuthorMissingError{AuthorID: authorID}
	}
	return nil
}

// existingCategoryIDs keeps the requested ids that resolve to real
// categories. Unknown ids are skipped silently, matching the form
// contract; they are logged so caller bugs stay diagnosable.
func (s *bookService) existingCategoryIDs(ctx context.Context, categoryIDs []int64) ([]int64, error) {
	valid := make([]int64, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		exists, err := s.categories.ExistsByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check category %d: %w", id, err)
		}
		if !exists {
			log.Warn().Int64("category_id", id).Msg("skipping unknown category id")
			continue
		}
		valid = append(valid, id)
	}
	return valid, nil
}
