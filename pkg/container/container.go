// Package container wires configuration, infrastructure, repositories,
// services and handlers into one object owned by main.
package container

import (
	"context"
	"fmt"

	"library-catalog-backend/internal/config"
	authorhandler "library-catalog-backend/internal/domains/author/handler"
	authorrepo "library-catalog-backend/internal/domains/author/repository"
	authorservice "library-catalog-backend/internal/domains/author/service"
	bookhandler "library-catalog-backend/internal/domains/book/handler"
	bookrepo "library-catalog-backend/internal/domains/book/repository"
	bookservice "library-catalog-backend/internal/domains/book/service"
	categoryhandler "library-catalog-backend/internal/domains/category/handler"
	categoryrepo "library-catalog-backend/internal/domains/category/repository"
	categoryservice "library-catalog-backend/internal/domains/category/service"
	dashboardhandler "library-catalog-backend/internal/domains/dashboard/handler"
	dashboardservice "library-catalog-backend/internal/domains/dashboard/service"
	staffhandler "library-catalog-backend/internal/domains/staff/handler"
	staffrepo "library-catalog-backend/internal/domains/staff/repository"
	staffservice "library-catalog-backend/internal/domains/staff/service"
	rediscache "library-catalog-backend/internal/infrastructure/cache"
	"library-catalog-backend/internal/infrastructure/database"
	"library-catalog-backend/pkg/jwt"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *rediscache.RedisClient
	JWT    *jwt.Manager

	AuthorHandler    *authorhandler.AuthorHandler
	BookHandler      *bookhandler.BookHandler
	CategoryHandler  *categoryhandler.CategoryHandler
	DashboardHandler *dashboardhandler.DashboardHandler
	AuthHandler      *staffhandler.AuthHandler
}

// New builds the dependency graph: connects to PostgreSQL and Redis,
// runs pending migrations, seeds the admin account and constructs every
// handler.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redis := rediscache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	location, err := cfg.Catalog.Location()
	if err != nil {
		db.Close()
		_ = redis.Close()
		return nil, err
	}

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.JWTExpiry())

	authorRepository := authorrepo.NewPostgresRepository(db.Pool, redis)
	categoryRepository := categoryrepo.NewPostgresRepository(db.Pool)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool, redis)
	staffRepository := staffrepo.NewPostgresRepository(db.Pool)

	authorService := authorservice.NewAuthorService(authorRepository)
	categoryService := categoryservice.NewCategoryService(categoryRepository)
	bookService := bookservice.NewBookService(bookRepository, authorRepository, categoryRepository, location)
	dashboardService := dashboardservice.NewDashboardService(bookService, authorService, categoryService)
	staffService := staffservice.NewStaffService(staffRepository, tokens)

	if err := staffService.EnsureAdmin(ctx, cfg.Catalog.AdminEmail, cfg.Catalog.AdminPassword); err != nil {
		db.Close()
		_ = redis.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redis,
		JWT:    tokens,

		AuthorHandler:    authorhandler.NewAuthorHandler(authorService),
		BookHandler:      bookhandler.NewBookHandler(bookService, authorService, categoryService, location),
		CategoryHandler:  categoryhandler.NewCategoryHandler(categoryService),
		DashboardHandler: dashboardhandler.NewDashboardHandler(dashboardService),
		AuthHandler:      staffhandler.NewAuthHandler(staffService),
	}, nil
}

func (c *Container) Cleanup() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
