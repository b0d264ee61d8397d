package pages

import (
	"context"
	"sort"
	"strconv"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/category"
)

// BookPage is the books list page. On top of the generic controller it
// carries the author and category lists that feed the filter dropdowns
// and the form, plus the category checkbox selection for the draft.
type BookPage struct {
	*listing.Controller[model.Book]

	// Authors and Categories back the filter dropdowns and the form
	// selectors. They are refreshed together with the book list.
	Authors    []model.Author
	Categories []model.Category

	// SelectedCategoryIDs is the draft's category checkbox state.
	SelectedCategoryIDs map[int64]bool

	// ShowCategoryError is set when a create is attempted with no
	// category selected.
	ShowCategoryError bool

	// Saved holds the entity persisted by the last successful Save.
	Saved *model.Book
}

func NewBookPage(books book.Service, authors author.Service, categories category.Service, nav listing.Navigator) *BookPage {
	p := &BookPage{
		SelectedCategoryIDs: make(map[int64]bool),
	}

	cfg := listing.Config[model.Book]{
		Path: "/books",
		SearchText: func(b model.Book) []string {
			fields := []string{b.Title}
			if b.Author != nil {
				fields = append(fields, b.Author.Name)
			}
			return fields
		},
		Filters: []listing.FilterSpec[model.Book]{
			{
				Key: "authorId",
				Match: func(b model.Book, value string) bool {
					return strconv.FormatInt(b.AuthorID, 10) == value
				},
			},
			{
				Key: "categoryId",
				Match: func(b model.Book, value string) bool {
					id, err := strconv.ParseInt(value, 10, 64)
					if err != nil {
						return false
					}
					return b.HasCategory(id)
				},
			},
		},
		NewDraft: func() model.Book {
			return model.Book{}
		},
		EditDraft: func(b model.Book) model.Book {
			return model.Book{
				ID:       b.ID,
				Title:    b.Title,
				Year:     b.Year,
				AuthorID: b.AuthorID,
			}
		},
		Load: func(ctx context.Context) ([]model.Book, error) {
			loaded, err := books.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			if p.Authors, err = authors.GetAll(ctx); err != nil {
				return nil, err
			}
			if p.Categories, err = categories.GetAll(ctx); err != nil {
				return nil, err
			}
			return loaded, nil
		},
		Save: func(ctx context.Context, draft model.Book, editing bool) error {
			if draft.AuthorID == 0 {
				return listing.Invalid("Te rugăm să selectezi un autor.")
			}
			if !editing && len(p.SelectedCategoryIDs) == 0 {
				p.ShowCategoryError = true
				return listing.Invalid("Te rugăm să selectezi cel puțin o categorie pentru carte.")
			}

			var saved *model.Book
			var err error
			if editing {
				saved, err = books.UpdateWithCategories(ctx, draft.ID, &draft, p.selectedIDs())
			} else {
				saved, err = books.CreateWithCategories(ctx, &draft, p.selectedIDs())
			}
			if err == nil {
				p.Saved = saved
			}
			return classify(err, book.IsValidation)
		},
		Delete:     books.Delete,
		SaveErrMsg: "A apărut o eroare la salvarea cărții. Te rugăm să încerci din nou.",
	}

	p.Controller = listing.New(cfg, nav)
	return p
}

// ToggleAddForm resets the category selection alongside the draft.
func (p *BookPage) ToggleAddForm() {
	p.Controller.ToggleAddForm()
	p.SelectedCategoryIDs = make(map[int64]bool)
	p.ShowCategoryError = false
}

// StartEdit seeds the category selection from the book's current
// associations.
func (p *BookPage) StartEdit(b model.Book) {
	p.Controller.StartEdit(b)
	p.SelectedCategoryIDs = make(map[int64]bool)
	for _, c := range b.Categories {
		p.SelectedCategoryIDs[c.ID] = true
	}
	p.ShowCategoryError = false
}

func (p *BookPage) CancelForm() {
	p.Controller.CancelForm()
	p.SelectedCategoryIDs = make(map[int64]bool)
	p.ShowCategoryError = false
}

// ToggleCategory flips one category checkbox and clears the missing
// selection error as soon as anything is checked.
func (p *BookPage) ToggleCategory(categoryID int64) {
	if p.SelectedCategoryIDs[categoryID] {
		delete(p.SelectedCategoryIDs, categoryID)
	} else {
		p.SelectedCategoryIDs[categoryID] = true
	}
	if len(p.SelectedCategoryIDs) > 0 {
		p.ShowCategoryError = false
	}
}

// SetSelectedCategories replaces the whole checkbox selection.
func (p *BookPage) SetSelectedCategories(ids []int64) {
	p.SelectedCategoryIDs = make(map[int64]bool, len(ids))
	for _, id := range ids {
		p.SelectedCategoryIDs[id] = true
	}
	if len(p.SelectedCategoryIDs) > 0 {
		p.ShowCategoryError = false
	}
}

func (p *BookPage) selectedIDs() []int64 {
	ids := make([]int64, 0, len(p.SelectedCategoryIDs))
	for id := range p.SelectedCategoryIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
