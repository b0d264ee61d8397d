package service

import (
	"context"
	"strings"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/category"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if id == 0 {
		return nil, category.ErrCategoryNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	c.Name = strings.TrimSpace(c.Name)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, c)
}

func (s *categoryService) Update(ctx context.Context, id int64, c *model.Category) (*model.Category, error) {
	c.ID = id
	c.Name = strings.TrimSpace(c.Name)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
