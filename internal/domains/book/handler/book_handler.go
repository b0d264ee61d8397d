package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/catalog/pages"
	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/category"
	"library-catalog-backend/internal/export"
	"library-catalog-backend/internal/shared/response"
)

type BookHandler struct {
	books      book.Service
	authors    author.Service
	categories category.Service
	location   *time.Location
}

func NewBookHandler(books book.Service, authors author.Service, categories category.Service, location *time.Location) *BookHandler {
	return &BookHandler{
		books:      books,
		authors:    authors,
		categories: categories,
		location:   location,
	}
}

// bookRequest is the write payload: book fields plus the full category
// selection replacing any existing associations.
type bookRequest struct {
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	AuthorID    int64   `json:"author_id"`
	CategoryIDs []int64 `json:"category_ids"`
}

func (h *BookHandler) newPage() *pages.BookPage {
	return pages.NewBookPage(h.books, h.authors, h.categories, &listing.RecordingNavigator{})
}

// List serves the books list view. Query parameters follow the page
// contract: search, authorId, categoryId, page, perPage.
func (h *BookHandler) List(c *gin.Context) {
	p := h.newPage()
	p.LoadFromURL(c.Request.URL.Query())

	if err := p.LoadAll(c.Request.Context()); err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea cărților.")
		return
	}

	meta := &response.Meta{
		Page:       p.CurrentPage(),
		PerPage:    p.ItemsPerPage(),
		Total:      p.TotalItems(),
		TotalPages: p.TotalPages(),
		StartItem:  p.StartItem(),
		EndItem:    p.EndItem(),
	}
	response.SuccessWithMeta(c, http.StatusOK, p.PageItems(), meta, &response.Links{Self: p.URL()})
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul cărții nu este valid.")
		return
	}

	b, err := h.books.GetByID(c.Request.Context(), id)
	if errors.Is(err, book.ErrBookNotFound) {
		response.NotFound(c, "Cartea nu a fost găsită.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea cărții.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"book": b,
		"age":  b.AgeLabel(time.Now().In(h.location)),
	})
}

// GetRecent returns the latest additions, newest first. count defaults
// server-side when absent or unparsable.
func (h *BookHandler) GetRecent(c *gin.Context) {
	count, _ := strconv.Atoi(c.Query("count"))

	books, err := h.books.GetRecent(c.Request.Context(), count)
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea cărților recente.")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Export streams the whole catalog as a CSV download in current load
// order.
func (h *BookHandler) Export(c *gin.Context) {
	books, err := h.books.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la exportul cărților.")
		return
	}

	csv := export.BooksCSV(books, h.location)

	c.Header("Content-Disposition", `attachment; filename="books.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func (h *BookHandler) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	p := h.newPage()
	p.ToggleAddForm()
	p.SetDraft(model.Book{Title: req.Title, Year: req.Year, AuthorID: req.AuthorID})
	p.SetSelectedCategories(req.CategoryIDs)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusCreated, p.Saved)
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul cărții nu este valid.")
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	existing, err := h.books.GetByID(c.Request.Context(), id)
	if errors.Is(err, book.ErrBookNotFound) {
		response.NotFound(c, "Cartea nu a fost găsită.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea cărții.")
		return
	}

	p := h.newPage()
	p.StartEdit(*existing)
	p.SetDraft(model.Book{ID: id, Title: req.Title, Year: req.Year, AuthorID: req.AuthorID})
	p.SetSelectedCategories(req.CategoryIDs)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusOK, p.Saved)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul cărții nu este valid.")
		return
	}

	if _, err := h.books.GetByID(c.Request.Context(), id); errors.Is(err, book.ErrBookNotFound) {
		response.NotFound(c, "Cartea nu a fost găsită.")
		return
	}

	p := h.newPage()
	if !p.Delete(c.Request.Context(), id) {
		response.InternalServerError(c, "A apărut o eroare la ștergerea cărții. Te rugăm să încerci din nou.")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *BookHandler) saveFailed(c *gin.Context, p *pages.BookPage) {
	if p.SaveFailedValidation() {
		response.BadRequest(c, p.ErrorMessage())
		return
	}
	response.InternalServerError(c, p.ErrorMessage())
}
