package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/catalog/listing"
	"library-catalog-backend/internal/catalog/model"
	"library-catalog-backend/internal/catalog/pages"
	"library-catalog-backend/internal/domains/category"
	"library-catalog-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) newPage() *pages.CategoryPage {
	return pages.NewCategoryPage(h.service, &listing.RecordingNavigator{})
}

func (h *CategoryHandler) List(c *gin.Context) {
	p := h.newPage()
	p.LoadFromURL(c.Request.URL.Query())

	if err := p.LoadAll(c.Request.Context()); err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea categoriilor.")
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

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul categoriei nu este valid.")
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, category.ErrCategoryNotFound) {
		response.NotFound(c, "Categoria nu a fost găsită.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea categoriei.")
		return
	}

	response.Success(c, http.StatusOK, cat)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var cat model.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	p := h.newPage()
	p.ToggleAddForm()
	p.SetDraft(cat)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusCreated, p.Saved)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul categoriei nu este valid.")
		return
	}

	var cat model.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, category.ErrCategoryNotFound) {
		response.NotFound(c, "Categoria nu a fost găsită.")
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la încărcarea categoriei.")
		return
	}

	p := h.newPage()
	p.StartEdit(*existing)
	cat.ID = id
	p.SetDraft(cat)

	if !p.Save(c.Request.Context()) {
		h.saveFailed(c, p)
		return
	}

	response.Success(c, http.StatusOK, p.Saved)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID-ul categoriei nu este valid.")
		return
	}

	if _, err := h.service.GetByID(c.Request.Context(), id); errors.Is(err, category.ErrCategoryNotFound) {
		response.NotFound(c, "Categoria nu a fost găsită.")
		return
	}

	p := h.newPage()
	if !p.Delete(c.Request.Context(), id) {
		response.InternalServerError(c, "A apărut o eroare la ștergerea categoriei. Te rugăm să încerci din nou.")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *CategoryHandler) saveFailed(c *gin.Context, p *pages.CategoryPage) {
	if p.SaveFailedValidation() {
		response.BadRequest(c, p.ErrorMessage())
		return
	}
	response.InternalServerError(c, p.ErrorMessage())
}
