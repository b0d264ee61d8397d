package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/staff"
	"library-catalog-backend/internal/shared/response"
)

type AuthHandler struct {
	service staff.Service
}

func NewAuthHandler(service staff.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req staff.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cererea nu este validă.")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if errors.Is(err, staff.ErrInvalidCredentials) {
		response.Unauthorized(c, "Emailul sau parola nu sunt corecte.")
		return
	}
	if staff.IsValidation(err) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalServerError(c, "A apărut o eroare la autentificare. Te rugăm să încerci din nou.")
		return
	}

	response.Success(c, http.StatusOK, result)
}
