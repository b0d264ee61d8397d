package pages

import (
	"context"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
)

// AuthorPage is the authors list page: searchable by name and email,
// no named filters.
type AuthorPage struct {
	*listing.Controller[model.Author]

	// Saved holds the entity persisted by the last successful Save.
	Saved *model.Author
}

func NewAuthorPage(authors author.Service, nav listing.Navigator) *AuthorPage {
	p := &AuthorPage{}

	cfg := listing.Config[model.Author]{
		Path: "/authors",
		SearchText: func(a model.Author) []string {
			return []string{a.Name, a.Email}
		},
		NewDraft: func() model.Author {
			return model.Author{}
		},
		EditDraft: func(a model.Author) model.Author {
			return model.Author{
				ID:        a.ID,
				Name:      a.Name,
				Email:     a.Email,
				Biography: a.Biography,
			}
		},
		Load: authors.GetAll,
		Save: func(ctx context.Context, draft model.Author, editing bool) error {
			var saved *model.Author
			var err error
			if editing {
				saved, err = authors.Update(ctx, draft.ID, &draft)
			} else {
				saved, err = authors.Create(ctx, &draft)
			}
			if err == nil {
				p.Saved = saved
			}
			return classify(err, author.IsValidation)
		},
		Delete:     authors.Delete,
		SaveErrMsg: "A apărut o eroare la salvarea autorului. Te rugăm să încerci din nou.",
	}

	p.Controller = listing.New(cfg, nav)
	return p
}
