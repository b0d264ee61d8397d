package dashboard

import (
	"context"

	"library-catalog-backend/internal/catalog/model"
)

// Stats is the dashboard payload.
type Stats struct {
	TotalBooks            int64          `json:"total_books"`
	TotalAuthors          int64          `json:"total_authors"`
	TotalCategories       int64          `json:"total_categories"`
	BooksThisMonth        int64          `json:"books_this_month"`
	BooksByYear           []YearCount    `json:"books_by_year"`
	TopCategories         []CategoryStat `json:"top_categories"`
	TopAuthors            []AuthorStat   `json:"top_authors"`
	RecentTrend           []TrendPoint   `json:"recent_trend"`
	AverageBooksPerAuthor float64        `json:"average_books_per_author"`
	MostRecentBook        *model.Book    `json:"most_recent_book,omitempty"`
}

type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}
