// Package listing implements the list-page state machine shared by the
// author, book and category pages: one item set loaded through a
// persistence port, an in-memory filtered view derived from a search
// term and named filters, pagination, add/edit form state, and
// round-tripping of all of it through a shareable URL query string.
package listing

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultItemsPerPage is the page size after ClearFilters and on a
	// freshly constructed controller.
	DefaultItemsPerPage = 10

	// pageWindow is how many page numbers are shown on each side of
	// the current page.
	pageWindow = 2
)

// ValidationError marks a save failure the user can correct: its
// message is shown verbatim on the open form. Any other error is
// treated as unexpected and replaced with the page's generic message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid wraps a user-facing message as a ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// FilterSpec is one named exact-match filter. An empty value acts as a
// wildcard.
type FilterSpec[T any] struct {
	// Key is the query-string parameter, e.g. "authorId".
	Key string
	// Match reports whether the item passes the filter for a
	// non-empty value.
	Match func(item T, value string) bool
}

// Config adapts the generic controller to one entity type.
type Config[T any] struct {
	// Path is the base list URL, e.g. "/books".
	Path string

	// SearchText returns the fields matched case-insensitively
	// against the search term.
	SearchText func(item T) []string

	// Filters are the entity's named filters, in query-string order.
	Filters []FilterSpec[T]

	// NewDraft returns an empty draft for the add form.
	NewDraft func() T

	// EditDraft returns a draft holding a shallow copy of the item's
	// editable fields.
	EditDraft func(item T) T

	// Load fetches all items from the persistence port.
	Load func(ctx context.Context) ([]T, error)

	// Save persists the draft. editing distinguishes update from
	// create. Return a *ValidationError to keep the form open with a
	// specific message.
	Save func(ctx context.Context, draft T, editing bool) error

	// Delete removes one item by id.
	Delete func(ctx context.Context, id int64) error

	// SaveErrMsg is the generic localized message shown when Save
	// fails for a reason the user cannot correct.
	SaveErrMsg string
}

// Controller owns the state of one list page. It is not safe for
// concurrent use: one controller serves one user interaction at a time.
type Controller[T any] struct {
	cfg Config[T]
	nav Navigator

	allItems      []T
	filteredItems []T
	searchTerm    string
	filterValues  map[string]string
	currentPage   int
	itemsPerPage  int

	showAddForm  bool
	showEditForm bool
	currentItem  T
	errorMessage string
	invalidSave  bool
}

func New[T any](cfg Config[T], nav Navigator) *Controller[T] {
	return &Controller[T]{
		cfg:          cfg,
		nav:          nav,
		filterValues: make(map[string]string),
		currentPage:  1,
		itemsPerPage: DefaultItemsPerPage,
	}
}

// LoadAll fetches all items and recomputes the filtered view without
// resetting the page. On failure the previous state is kept; the error
// is logged and returned so HTTP callers can translate it.
func (c *Controller[T]) LoadAll(ctx context.Context) error {
	items, err := c.cfg.Load(ctx)
	if err != nil {
		log.Error().Err(err).Str("page", c.cfg.Path).Msg("failed to load items")
		return err
	}

	c.allItems = items
	c.Filter(false)
	return nil
}

// Filter recomputes filteredItems from the search term and the active
// named filters. Empty values act as wildcards.
func (c *Controller[T]) Filter(resetPage bool) {
	term := strings.ToLower(c.searchTerm)

	filtered := make([]T, 0, len(c.allItems))
	for _, item := range c.allItems {
		if !c.matchesSearch(item, term) {
			continue
		}
		if !c.matchesFilters(item) {
			continue
		}
		filtered = append(filtered, item)
	}

	c.filteredItems = filtered
	if resetPage {
		c.currentPage = 1
	}
}

func (c *Controller[T]) matchesSearch(item T, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range c.cfg.SearchText(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (c *Controller[T]) matchesFilters(item T) bool {
	for _, f := range c.cfg.Filters {
		value := c.filterValues[f.Key]
		if value == "" {
			continue
		}
		if !f.Match(item, value) {
			return false
		}
	}
	return true
}

// Pagination view

func (c *Controller[T]) TotalItems() int { return len(c.filteredItems) }

func (c *Controller[T]) TotalPages() int {
	pages := int(math.Ceil(float64(len(c.filteredItems)) / float64(c.itemsPerPage)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageItems returns the slice of filtered items visible on the current
// page.
func (c *Controller[T]) PageItems() []T {
	start := (c.currentPage - 1) * c.itemsPerPage
	if start >= len(c.filteredItems) {
		return nil
	}
	end := start + c.itemsPerPage
	if end > len(c.filteredItems) {
		end = len(c.filteredItems)
	}
	return c.filteredItems[start:end]
}

// StartItem is the 1-based index of the first visible item, 0 when the
// view is empty.
func (c *Controller[T]) StartItem() int {
	if len(c.filteredItems) == 0 {
		return 0
	}
	start := (c.currentPage-1)*c.itemsPerPage + 1
	if start > len(c.filteredItems) {
		start = len(c.filteredItems)
	}
	return start
}

// EndItem is the 1-based index of the last visible item, 0 when the
// view is empty.
func (c *Controller[T]) EndItem() int {
	if len(c.filteredItems) == 0 {
		return 0
	}
	end := c.currentPage * c.itemsPerPage
	if end > len(c.filteredItems) {
		end = len(c.filteredItems)
	}
	return end
}

// PageNumbers returns the window of page numbers around the current
// page, clamped to the valid range.
func (c *Controller[T]) PageNumbers() []int {
	lo := c.currentPage - pageWindow
	if lo < 1 {
		lo = 1
	}
	hi := c.currentPage + pageWindow
	if total := c.TotalPages(); hi > total {
		hi = total
	}

	numbers := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		numbers = append(numbers, p)
	}
	return numbers
}

// GoToPage moves to page p and pushes the shareable URL with
// replace-navigation. Out-of-range pages are a no-op.
func (c *Controller[T]) GoToPage(p int) {
	if p < 1 || p > c.TotalPages() {
		return
	}
	c.currentPage = p
	c.nav.Navigate(c.URL(), true)
}

func (c *Controller[T]) NextPage()     { c.GoToPage(c.currentPage + 1) }
func (c *Controller[T]) PreviousPage() { c.GoToPage(c.currentPage - 1) }

// SetItemsPerPage changes the page size and returns to page 1.
func (c *Controller[T]) SetItemsPerPage(n int) {
	if n < 1 {
		return
	}
	c.itemsPerPage = n
	c.currentPage = 1
	c.nav.Navigate(c.URL(), true)
}

// ApplyFilters pushes a navigable URL for the current search and
// filter values with the page forced back to 1, then refilters.
func (c *Controller[T]) ApplyFilters() {
	c.currentPage = 1
	c.nav.Navigate(c.URL(), false)
	c.Filter(true)
}

// ClearFilters resets search, filters and pagination to defaults and
// navigates to the bare list URL.
func (c *Controller[T]) ClearFilters() {
	c.searchTerm = ""
	for key := range c.filterValues {
		delete(c.filterValues, key)
	}
	c.currentPage = 1
	c.itemsPerPage = DefaultItemsPerPage
	c.nav.Navigate(c.cfg.Path, false)
	c.Filter(true)
}

// URL encodes the current search, filter and pagination state as a
// shareable URL.
func (c *Controller[T]) URL() string {
	q := url.Values{}
	if c.searchTerm != "" {
		q.Set("search", c.searchTerm)
	}
	for _, f := range c.cfg.Filters {
		if value := c.filterValues[f.Key]; value != "" {
			q.Set(f.Key, value)
		}
	}
	q.Set("page", strconv.Itoa(c.currentPage))
	q.Set("perPage", strconv.Itoa(c.itemsPerPage))
	return c.cfg.Path + "?" + q.Encode()
}

// LoadFromURL parses query parameters back into the controller state.
// Missing or unparsable numeric parameters leave the current values in
// place; the page is not reset.
func (c *Controller[T]) LoadFromURL(query url.Values) {
	c.searchTerm = query.Get("search")
	for _, f := range c.cfg.Filters {
		c.filterValues[f.Key] = query.Get(f.Key)
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page >= 1 {
		c.currentPage = page
	}
	if perPage, err := strconv.Atoi(query.Get("perPage")); err == nil && perPage >= 1 {
		c.itemsPerPage = perPage
	}
	c.Filter(false)
}

// Form state

// ToggleAddForm flips the add form. Entering add mode resets the draft
// and clears the error message; edit mode always exits.
func (c *Controller[T]) ToggleAddForm() {
	c.showAddForm = !c.showAddForm
	c.showEditForm = false
	if c.showAddForm {
		c.currentItem = c.cfg.NewDraft()
		c.errorMessage = ""
		c.invalidSave = false
	}
}

// StartEdit enters edit mode with a draft copied from item.
func (c *Controller[T]) StartEdit(item T) {
	c.showEditForm = true
	c.showAddForm = false
	c.currentItem = c.cfg.EditDraft(item)
	c.errorMessage = ""
	c.invalidSave = false
}

// CancelForm exits both form modes and clears form errors.
func (c *Controller[T]) CancelForm() {
	c.showAddForm = false
	c.showEditForm = false
	c.errorMessage = ""
	c.invalidSave = false
}

// Save persists the draft through the configured hook. On success the
// item set is reloaded and the form closes. On failure the form stays
// open: validation errors surface their specific message, anything
// else the generic one.
func (c *Controller[T]) Save(ctx context.Context) bool {
	c.errorMessage = ""
	c.invalidSave = false

	err := c.cfg.Save(ctx, c.currentItem, c.showEditForm)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.errorMessage = verr.Message
			c.invalidSave = true
		} else {
			log.Error().Err(err).Str("page", c.cfg.Path).Msg("failed to save item")
			c.errorMessage = c.cfg.SaveErrMsg
		}
		return false
	}

	// Reload failures keep the stale item set; they are already logged.
	_ = c.LoadAll(ctx)
	c.CancelForm()
	return true
}

// Delete removes one item and reloads on success. Failures are logged
// and reported to the caller only through the return value.
func (c *Controller[T]) Delete(ctx context.Context, id int64) bool {
	if err := c.cfg.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("page", c.cfg.Path).Int64("id", id).Msg("failed to delete item")
		return false
	}
	_ = c.LoadAll(ctx)
	return true
}

// Accessors

func (c *Controller[T]) AllItems() []T       { return c.allItems }
func (c *Controller[T]) FilteredItems() []T  { return c.filteredItems }
func (c *Controller[T]) SearchTerm() string  { return c.searchTerm }
func (c *Controller[T]) CurrentPage() int    { return c.currentPage }
func (c *Controller[T]) ItemsPerPage() int   { return c.itemsPerPage }
func (c *Controller[T]) ShowAddForm() bool   { return c.showAddForm }
func (c *Controller[T]) ShowEditForm() bool  { return c.showEditForm }
func (c *Controller[T]) Draft() T            { return c.currentItem }
func (c *Controller[T]) ErrorMessage() string { return c.errorMessage }

// SaveFailedValidation reports whether the last failed Save was a
// validation failure (specific message) rather than an unexpected one.
func (c *Controller[T]) SaveFailedValidation() bool { return c.invalidSave }

func (c *Controller[T]) SetSearchTerm(term string) { c.searchTerm = term }
func (c *Controller[T]) SetDraft(item T)           { c.currentItem = item }

func (c *Controller[T]) FilterValue(key string) string { return c.filterValues[key] }

func (c *Controller[T]) SetFilterValue(key, value string) { c.filterValues[key] = value }
