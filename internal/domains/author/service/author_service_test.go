package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
)

type fakeAuthorRepo struct {
	authors map[int64]model.Author
	nextID  int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[int64]model.Author), nextID: 1}
}

func (f *fakeAuthorRepo) GetAll(ctx context.Context) ([]model.Author, error) { return nil, nil }

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	stored := *a
	stored.ID = f.nextID
	f.nextID++
	f.authors[stored.ID] = stored
	return &stored, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	if _, ok := f.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	return a, nil
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func (f *fakeAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func TestAuthorCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("trims name and email before validating", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		created, err := svc.Create(ctx, &model.Author{
			Name:  "  Liviu Rebreanu  ",
			Email: " lr@example.com ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Liviu Rebreanu", created.Name)
		assert.Equal(t, "lr@example.com", created.Email)
	})

	t.Run("whitespace-only name fails required validation", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo)

		_, err := svc.Create(ctx, &model.Author{Name: "   ", Email: "lr@example.com"})

		require.Error(t, err)
		assert.True(t, author.IsValidation(err))
		assert.Empty(t, repo.authors)
	})
}

func TestAuthorUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies the path id to the entity", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo)

		created, err := svc.Create(ctx, &model.Author{Name: "Liviu Rebreanu", Email: "lr@example.com"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, &model.Author{
			Name:  "Liviu Rebreanu",
			Email: "rebreanu@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "rebreanu@example.com", repo.authors[created.ID].Email)
	})

	t.Run("missing id fails with not found", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		_, err := svc.Update(ctx, 42, &model.Author{Name: "Cineva", Email: "c@example.com"})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})
}

func TestAuthorGetByID(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
