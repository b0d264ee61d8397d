package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/container"
)

// NewRouter builds the HTTP surface. Reads are public; every mutation
// requires a staff token.
func NewRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	r.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unavailable")
			return
		}
		if err := c.Redis.Ping(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "redis unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	v1 := r.Group("/api/v1")
	auth := middleware.Auth(c.JWT)

	v1.POST("/auth/login", c.AuthHandler.Login)

	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.POST("", auth, c.AuthorHandler.Create)
		authors.PUT("/:id", auth, c.AuthorHandler.Update)
		authors.DELETE("/:id", auth, c.AuthorHandler.Delete)
	}

	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/recent", c.BookHandler.GetRecent)
		books.GET("/export", c.BookHandler.Export)
		books.GET("/:id", c.BookHandler.Get)
		books.POST("", auth, c.BookHandler.Create)
		books.PUT("/:id", auth, c.BookHandler.Update)
		books.DELETE("/:id", auth, c.BookHandler.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.Get)
		categories.POST("", auth, c.CategoryHandler.Create)
		categories.PUT("/:id", auth, c.CategoryHandler.Update)
		categories.DELETE("/:id", auth, c.CategoryHandler.Delete)
	}

	v1.GET("/dashboard", c.DashboardHandler.GetStats)

	return r
}
