package listing_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/catalog/listing"
)

type item struct {
	ID    int64
	Name  string
	Notes string
	Group string
}

type fixture struct {
	controller *listing.Controller[item]
	nav        *listing.RecordingNavigator

	items   []item
	loadErr error

	saveErr     error
	savedDrafts []item
	deletedIDs  []int64
}

func newFixture(items []item) *fixture {
	f := &fixture{nav: &listing.RecordingNavigator{}, items: items}

	cfg := listing.Config[item]{
		Path: "/items",
		SearchText: func(it item) []string {
			return []string{it.Name, it.Notes}
		},
		Filters: []listing.FilterSpec[item]{
			{
				Key: "group",
				Match: func(it item, value string) bool {
					return it.Group == value
				},
			},
		},
		NewDraft:  func() item { return item{} },
		EditDraft: func(it item) item { return it },
		Load: func(ctx context.Context) ([]item, error) {
			if f.loadErr != nil {
				return nil, f.loadErr
			}
			return f.items, nil
		},
		Save: func(ctx context.Context, draft item, editing bool) error {
			if f.saveErr != nil {
				return f.saveErr
			}
			f.savedDrafts = append(f.savedDrafts, draft)
			return nil
		},
		Delete: func(ctx context.Context, id int64) error {
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		},
		SaveErrMsg: "something went wrong",
	}

	f.controller = listing.New(cfg, f.nav)
	return f
}

func makeItems(n int) []item {
	items := make([]item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, item{
			ID:    int64(i),
			Name:  fmt.Sprintf("Item %02d", i),
			Group: strconv.Itoa(i % 3),
		})
	}
	return items
}

func TestControllerSearch(t *testing.T) {
	ctx := context.Background()

	items := []item{
		{ID: 1, Name: "Mihai Eminescu", Notes: "poet"},
		{ID: 2, Name: "Ion Creangă", Notes: "prose"},
		{ID: 3, Name: "ION LUCA CARAGIALE", Notes: "playwright"},
	}

	t.Run("empty term returns all items", func(t *testing.T) {
		f := newFixture(items)
		require.NoError(t, f.controller.LoadAll(ctx))

		assert.Len(t, f.controller.FilteredItems(), 3)
	})

	t.Run("matches case-insensitively across fields", func(t *testing.T) {
		f := newFixture(items)
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("ion")
		f.controller.Filter(true)

		filtered := f.controller.FilteredItems()
		require.Len(t, filtered, 2)
		assert.Equal(t, int64(2), filtered[0].ID)
		assert.Equal(t, int64(3), filtered[1].ID)
	})

	t.Run("searches every configured field", func(t *testing.T) {
		f := newFixture(items)
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("playwright")
		f.controller.Filter(true)

		require.Len(t, f.controller.FilteredItems(), 1)
		assert.Equal(t, int64(3), f.controller.FilteredItems()[0].ID)
	})

	t.Run("no matches yields empty view", func(t *testing.T) {
		f := newFixture(items)
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("nothing here")
		f.controller.Filter(true)

		assert.Empty(t, f.controller.FilteredItems())
		assert.Equal(t, 1, f.controller.TotalPages())
		assert.Equal(t, 0, f.controller.StartItem())
		assert.Equal(t, 0, f.controller.EndItem())
	})
}

func TestControllerNamedFilters(t *testing.T) {
	ctx := context.Background()

	t.Run("empty value is a wildcard", func(t *testing.T) {
		f := newFixture(makeItems(9))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetFilterValue("group", "")
		f.controller.Filter(true)

		assert.Len(t, f.controller.FilteredItems(), 9)
	})

	t.Run("non-empty value filters exactly", func(t *testing.T) {
		f := newFixture(makeItems(9))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetFilterValue("group", "1")
		f.controller.Filter(true)

		filtered := f.controller.FilteredItems()
		require.Len(t, filtered, 3)
		for _, it := range filtered {
			assert.Equal(t, "1", it.Group)
		}
	})

	t.Run("search and filter combine", func(t *testing.T) {
		f := newFixture(makeItems(9))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("item 0")
		f.controller.SetFilterValue("group", "1")
		f.controller.Filter(true)

		filtered := f.controller.FilteredItems()
		require.Len(t, filtered, 3)
		assert.Equal(t, int64(1), filtered[0].ID)
		assert.Equal(t, int64(4), filtered[1].ID)
		assert.Equal(t, int64(7), filtered[2].ID)
	})
}

func TestControllerPagination(t *testing.T) {
	ctx := context.Background()

	t.Run("pages concatenate to the filtered set", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		var collected []item
		for p := 1; p <= f.controller.TotalPages(); p++ {
			f.controller.GoToPage(p)
			collected = append(collected, f.controller.PageItems()...)
		}

		assert.Equal(t, f.controller.FilteredItems(), collected)
	})

	t.Run("25 items at 10 per page", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		assert.Equal(t, 3, f.controller.TotalPages())
		assert.Equal(t, 1, f.controller.StartItem())
		assert.Equal(t, 10, f.controller.EndItem())
		assert.Len(t, f.controller.PageItems(), 10)

		f.controller.NextPage()
		f.controller.NextPage()

		assert.Equal(t, 3, f.controller.CurrentPage())
		assert.Equal(t, 21, f.controller.StartItem())
		assert.Equal(t, 25, f.controller.EndItem())
		assert.Len(t, f.controller.PageItems(), 5)

		// A further NextPage is a no-op.
		f.controller.NextPage()
		assert.Equal(t, 3, f.controller.CurrentPage())
	})

	t.Run("GoToPage ignores out-of-range targets", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.GoToPage(0)
		assert.Equal(t, 1, f.controller.CurrentPage())

		f.controller.GoToPage(4)
		assert.Equal(t, 1, f.controller.CurrentPage())

		f.controller.PreviousPage()
		assert.Equal(t, 1, f.controller.CurrentPage())
	})

	t.Run("navigation pushes a replace URL", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.GoToPage(2)

		assert.True(t, f.nav.Replaced)
		assert.Contains(t, f.nav.URL, "page=2")
	})

	t.Run("SetItemsPerPage resets to page 1", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.GoToPage(3)
		f.controller.SetItemsPerPage(5)

		assert.Equal(t, 1, f.controller.CurrentPage())
		assert.Equal(t, 5, f.controller.TotalPages())
	})

	t.Run("SetItemsPerPage ignores non-positive sizes", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetItemsPerPage(0)
		assert.Equal(t, listing.DefaultItemsPerPage, f.controller.ItemsPerPage())
	})

	t.Run("page numbers window around the current page", func(t *testing.T) {
		f := newFixture(makeItems(100))
		require.NoError(t, f.controller.LoadAll(ctx))

		assert.Equal(t, []int{1, 2, 3}, f.controller.PageNumbers())

		f.controller.GoToPage(5)
		assert.Equal(t, []int{3, 4, 5, 6, 7}, f.controller.PageNumbers())

		f.controller.GoToPage(10)
		assert.Equal(t, []int{8, 9, 10}, f.controller.PageNumbers())
	})
}

func TestControllerURL(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips search, filters and pagination", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("item")
		f.controller.SetFilterValue("group", "2")
		f.controller.SetItemsPerPage(5)
		f.controller.Filter(true)
		f.controller.GoToPage(2)

		parsed, err := url.Parse(f.controller.URL())
		require.NoError(t, err)

		g := newFixture(makeItems(25))
		require.NoError(t, g.controller.LoadAll(ctx))
		g.controller.LoadFromURL(parsed.Query())

		assert.Equal(t, "item", g.controller.SearchTerm())
		assert.Equal(t, "2", g.controller.FilterValue("group"))
		assert.Equal(t, 2, g.controller.CurrentPage())
		assert.Equal(t, 5, g.controller.ItemsPerPage())
		assert.Equal(t, f.controller.FilteredItems(), g.controller.FilteredItems())
	})

	t.Run("omits empty search and filters", func(t *testing.T) {
		f := newFixture(makeItems(5))
		require.NoError(t, f.controller.LoadAll(ctx))

		u := f.controller.URL()
		assert.NotContains(t, u, "search=")
		assert.NotContains(t, u, "group=")
		assert.Contains(t, u, "page=1")
		assert.Contains(t, u, "perPage=10")
	})

	t.Run("unparsable numerics leave state unchanged", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))
		f.controller.GoToPage(2)

		f.controller.LoadFromURL(url.Values{
			"page":    {"abc"},
			"perPage": {"-4"},
		})

		assert.Equal(t, 2, f.controller.CurrentPage())
		assert.Equal(t, listing.DefaultItemsPerPage, f.controller.ItemsPerPage())
	})

	t.Run("ApplyFilters pushes page 1 with push navigation", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.GoToPage(3)
		f.controller.SetSearchTerm("item 1")
		f.controller.ApplyFilters()

		assert.Equal(t, 1, f.controller.CurrentPage())
		assert.False(t, f.nav.Replaced)
		assert.Contains(t, f.nav.URL, "page=1")
		assert.Contains(t, f.nav.URL, "search=item+1")
	})

	t.Run("ClearFilters resets everything and navigates to the bare path", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.SetSearchTerm("item 1")
		f.controller.SetFilterValue("group", "1")
		f.controller.SetItemsPerPage(5)
		f.controller.ApplyFilters()

		f.controller.ClearFilters()

		assert.Equal(t, "", f.controller.SearchTerm())
		assert.Equal(t, "", f.controller.FilterValue("group"))
		assert.Equal(t, 1, f.controller.CurrentPage())
		assert.Equal(t, listing.DefaultItemsPerPage, f.controller.ItemsPerPage())
		assert.Equal(t, "/items", f.nav.URL)
		assert.Len(t, f.controller.FilteredItems(), 25)
	})
}

func TestControllerLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure keeps prior state", func(t *testing.T) {
		f := newFixture(makeItems(5))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.loadErr = errors.New("connection refused")
		err := f.controller.LoadAll(ctx)

		require.Error(t, err)
		assert.Len(t, f.controller.AllItems(), 5)
		assert.Len(t, f.controller.FilteredItems(), 5)
	})

	t.Run("reload keeps the current page", func(t *testing.T) {
		f := newFixture(makeItems(25))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.GoToPage(2)
		require.NoError(t, f.controller.LoadAll(ctx))

		assert.Equal(t, 2, f.controller.CurrentPage())
	})
}

func TestControllerForms(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle add form resets the draft", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.ToggleAddForm()
		assert.True(t, f.controller.ShowAddForm())
		assert.Equal(t, item{}, f.controller.Draft())

		f.controller.ToggleAddForm()
		assert.False(t, f.controller.ShowAddForm())
	})

	t.Run("edit and add forms are mutually exclusive", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.ToggleAddForm()
		f.controller.StartEdit(f.controller.AllItems()[1])

		assert.True(t, f.controller.ShowEditForm())
		assert.False(t, f.controller.ShowAddForm())
		assert.Equal(t, int64(2), f.controller.Draft().ID)
	})

	t.Run("successful save reloads and closes the form", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))

		f.controller.ToggleAddForm()
		f.controller.SetDraft(item{Name: "New Item"})

		ok := f.controller.Save(ctx)

		require.True(t, ok)
		assert.False(t, f.controller.ShowAddForm())
		assert.Empty(t, f.controller.ErrorMessage())
		require.Len(t, f.savedDrafts, 1)
		assert.Equal(t, "New Item", f.savedDrafts[0].Name)
	})

	t.Run("validation failure keeps the form open with the specific message", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))
		f.saveErr = listing.Invalid("numele este obligatoriu")

		f.controller.ToggleAddForm()
		ok := f.controller.Save(ctx)

		require.False(t, ok)
		assert.True(t, f.controller.ShowAddForm())
		assert.True(t, f.controller.SaveFailedValidation())
		assert.Equal(t, "numele este obligatoriu", f.controller.ErrorMessage())
	})

	t.Run("unexpected failure surfaces the generic message", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))
		f.saveErr = errors.New("connection reset")

		f.controller.ToggleAddForm()
		ok := f.controller.Save(ctx)

		require.False(t, ok)
		assert.True(t, f.controller.ShowAddForm())
		assert.False(t, f.controller.SaveFailedValidation())
		assert.Equal(t, "something went wrong", f.controller.ErrorMessage())
	})

	t.Run("cancel clears form state", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))
		f.saveErr = listing.Invalid("invalid")

		f.controller.ToggleAddForm()
		f.controller.Save(ctx)
		f.controller.CancelForm()

		assert.False(t, f.controller.ShowAddForm())
		assert.Empty(t, f.controller.ErrorMessage())
		assert.False(t, f.controller.SaveFailedValidation())
	})

	t.Run("delete removes through the port and reloads", func(t *testing.T) {
		f := newFixture(makeItems(3))
		require.NoError(t, f.controller.LoadAll(ctx))

		ok := f.controller.Delete(ctx, 2)

		require.True(t, ok)
		assert.Equal(t, []int64{2}, f.deletedIDs)
	})
}
