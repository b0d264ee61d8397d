package pages

import (
	"context"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/category"
)

// CategoryPage is the categories list page: searchable by name and
// description, no named filters.
type CategoryPage struct {
	*listing.Controller[model.Category]

	// Saved holds the entity persisted by the last successful Save.
	Saved *model.Category
}

func NewCategoryPage(categories category.Service, nav listing.Navigator) *CategoryPage {
	p := &CategoryPage{}

	cfg := listing.Config[model.Category]{
		Path: "/categories",
		SearchText: func(c model.Category) []string {
			fields := []string{c.Name}
			if c.Description != nil {
				fields = append(fields, *c.Description)
			}
			return fields
		},
		NewDraft: func() model.Category {
			return model.Category{}
		},
		EditDraft: func(c model.Category) model.Category {
			return model.Category{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
			}
		},
		Load: categories.GetAll,
		Save: func(ctx context.Context, draft model.Category, editing bool) error {
			var saved *model.Category
			var err error
			if editing {
				saved, err = categories.Update(ctx, draft.ID, &draft)
			} else {
				saved, err = categories.Create(ctx, &draft)
			}
			if err == nil {
				p.Saved = saved
			}
			return classify(err, category.IsValidation)
		},
		Delete:     categories.Delete,
		SaveErrMsg: "A apărut o eroare la salvarea categoriei. Te rugăm să încerci din nou.",
	}

	p.Controller = listing.New(cfg, nav)
	return p
}
