package service

import (
	"context"
	"strings"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	if id == 0 {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, a)
}

func (s *authorService) Update(ctx context.Context, id int64, a *model.Author) (*model.Author, error) {
	a.ID = id
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
