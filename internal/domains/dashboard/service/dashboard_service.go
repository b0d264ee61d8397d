package service

import (
	"context"
	"time"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/domains/category"
	"library-catalog-backend/internal/domains/dashboard"
)

const (
	topN      = 5
	trendDays = 30
)

type dashboardService struct {
	books      book.Service
	authors    author.Service
	categories category.Service

	// now is overridable in tests.
	now func() time.Time
}

func NewDashboardService(books book.Service, authors author.Service, categories category.Service) dashboard.Service {
	return &dashboardService{
		books:      books,
		authors:    authors,
		categories: categories,
		now:        time.Now,
	}
}

// GetStats loads the three entity sets once and derives every figure
// from that snapshot.
func (s *dashboardService) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	authors, err := s.authors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &dashboard.Snapshot{
		Books:      books,
		Authors:    authors,
		Categories: categories,
		Now:        s.now,
	}

	return &dashboard.Stats{
		TotalBooks:            snapshot.TotalBooks(),
		TotalAuthors:          snapshot.TotalAuthors(),
		TotalCategories:       snapshot.TotalCategories(),
		BooksThisMonth:        snapshot.BooksThisMonth(),
		BooksByYear:           snapshot.BooksByYear(),
		TopCategories:         snapshot.TopCategories(topN),
		TopAuthors:            snapshot.TopAuthors(topN),
		RecentTrend:           snapshot.RecentTrend(trendDays),
		AverageBooksPerAuthor: snapshot.AverageBooksPerAuthor(),
		MostRecentBook:        snapshot.MostRecentBook(),
	}, nil
}
