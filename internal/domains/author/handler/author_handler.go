package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/catalog/pages"
	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// newPage builds a fresh page controller for one request. The recording
// navigator captures the canonical URL pushed by state changes.
func (h *AuthorHandler) newPage() *pages.AuthorPage {
	return pages.NewAuthorPage(h.service, &listing.RecordingNavigator{})
}

// List serves the authors list view. Query parameters follow the page
// contract: search, page, perPage.
func (h *AuthorHandler) List(c *gin.Context) {
	p := h.newPage()
	p.LoadFromURL(c.Request.URL.Query())

	if err := p.LoadAll(c.Request.Context()); err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea autorilor.")
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

func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul autorului nu este valid.")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, author.ErrAuthorNotFound) {
		response.NotFound(c, "Autorul nu a fost găsit.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea autorului.")
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var a model.Author
	if err := c.ShouldBindJSON(&a); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	p := h.newPage()
	p.ToggleAddForm()
	p.SetDraft(a)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusCreated, p.Saved)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul autorului nu este valid.")
		return
	}

	var a model.Author
	if err := c.ShouldBindJSON(&a); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, author.ErrAuthorNotFound) {
		response.NotFound(c, "Autorul nu a fost găsit.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea autorului.")
		return
	}

	p := h.newPage()
	p.StartEdit(*existing)
	a.ID = id
	p.SetDraft(a)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusOK, p.Saved)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul autorului nu este valid.")
		return
	}

	if _, err := h.service.GetByID(c.Request.Context(), id); errors.Is(err, author.ErrAuthorNotFound) {
		response.NotFound(c, "Autorul nu a fost găsit.")
		return
	}

	p := h.newPage()
	if !p.Delete(c.Request.Context(), id) {
		response.InternalServerError(c, "A apărut o eroare la ștergerea autorului. Te rugăm să încerci din nou.")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *AuthorHandler) saveFailed(c *gin.Context, p *pages.AuthorPage) {
	if p.SaveFailedValidation() {
		response.BadRequest(c, p.ErrorMessage())
		return
	}
	response.InternalServerError(c, p.ErrorMessage())
}
