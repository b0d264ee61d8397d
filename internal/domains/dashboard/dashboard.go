// Package dashboard aggregates the catalog into the numbers shown on
// the landing page. All figures are derived in memory from a single
// load of the three entity sets, so every statistic on one snapshot is
// consistent with the others.
package dashboard

import (
	"math"
	"sort"
	"time"

	"library-catalog-backend/internal/catalog/model"
)

// Snapshot is one consistent view of the catalog. Now supplies the
// clock for time-relative figures.
type Snapshot struct {
	Books      []model.Book
	Authors    []model.Author
	Categories []model.Category
	Now        func() time.Time
}

// YearCount is the number of books published in one year.
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// CategoryStat is a category's share of the catalog.
type CategoryStat struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AuthorStat is an author's book count.
type AuthorStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TrendPoint is the number of books added on one calendar day.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

func (s *Snapshot) TotalBooks() int64      { return int64(len(s.Books)) }
func (s *Snapshot) TotalAuthors() int64    { return int64(len(s.Authors)) }
func (s *Snapshot) TotalCategories() int64 { return int64(len(s.Categories)) }

// BooksThisMonth counts books added in the current calendar month.
func (s *Snapshot) BooksThisMonth() int64 {
	now := s.Now()
	var count int64
	for _, b := range s.Books {
		added := b.CreatedAt.In(now.Location())
		if added.Year() == now.Year() && added.Month() == now.Month() {
			count++
		}
	}
	return count
}

// BooksByYear groups books by publication year, ascending.
func (s *Snapshot) BooksByYear() []YearCount {
	byYear := make(map[int]int64)
	for _, b := range s.Books {
		byYear[b.Year]++
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	counts := make([]YearCount, 0, len(years))
	for _, year := range years {
		counts = append(counts, YearCount{Year: year, Count: byYear[year]})
	}
	return counts
}

// TopCategories returns the n most used categories with their share of
// the total book count, rounded half-to-even to one decimal. Ties
// break by name.
func (s *Snapshot) TopCategories(n int) []CategoryStat {
	byName := make(map[string]int64)
	for _, b := range s.Books {
		for _, c := range b.Categories {
			byName[c.Name]++
		}
	}

	stats := make([]CategoryStat, 0, len(byName))
	for name, count := range byName {
		stats = append(stats, CategoryStat{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	if n < len(stats) {
		stats = stats[:n]
	}

	if total := s.TotalBooks(); total > 0 {
		for i := range stats {
			pct := float64(stats[i].Count) / float64(total) * 100
			stats[i].Percentage = math.RoundToEven(pct*10) / 10
		}
	}
	return stats
}

// TopAuthors returns the n authors with the most books. Ties break by
// name.
func (s *Snapshot) TopAuthors(n int) []AuthorStat {
	names := make(map[int64]string, len(s.Authors))
	for _, a := range s.Authors {
		names[a.ID] = a.Name
	}

	byAuthor := make(map[int64]int64)
	for _, b := range s.Books {
		byAuthor[b.AuthorID]++
	}

	stats := make([]AuthorStat, 0, len(byAuthor))
	for id, count := range byAuthor {
		name, ok := names[id]
		if !ok {
			continue
		}
		stats = append(stats, AuthorStat{Name: name, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})

	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// RecentTrend returns one point per calendar day for the last days
// days plus today, oldest first. Days with no additions hold zero.
func (s *Snapshot) RecentTrend(days int) []TrendPoint {
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	byDay := make(map[time.Time]int64)
	for _, b := range s.Books {
		added := b.CreatedAt.In(now.Location())
		day := time.Date(added.Year(), added.Month(), added.Day(), 0, 0, 0, 0, now.Location())
		byDay[day]++
	}

	points := make([]TrendPoint, 0, days+1)
	for i := days; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, TrendPoint{Date: day, Count: byDay[day]})
	}
	return points
}

// AverageBooksPerAuthor is the mean book count over all authors, zero
// when there are no authors.
func (s *Snapshot) AverageBooksPerAuthor() float64 {
	if len(s.Authors) == 0 {
		return 0
	}
	return float64(len(s.Books)) / float64(len(s.Authors))
}

// MostRecentBook returns the latest added book, nil on an empty
// catalog.
func (s *Snapshot) MostRecentBook() *model.Book {
	var latest *model.Book
	for i := range s.Books {
		if latest == nil || s.Books[i].CreatedAt.After(latest.CreatedAt) {
			latest = &s.Books[i]
		}
	}
	return latest
}
