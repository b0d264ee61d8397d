package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/catalog/model"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func testSnapshot() *Snapshot {
	now := fixedNow()

	roman := model.Category{ID: 1, Name: "Roman"}
	poezie := model.Category{ID: 2, Name: "Poezie"}
	teatru := model.Category{ID: 3, Name: "Teatru"}

	return &Snapshot{
		Books: []model.Book{
			{ID: 1, Title: "Ion", Year: 1920, AuthorID: 1, CreatedAt: now.AddDate(0, 0, -1), Categories: []model.Category{roman}},
			{ID: 2, Title: "Baltagul", Year: 1930, AuthorID: 2, CreatedAt: now.AddDate(0, 0, -1), Categories: []model.Category{roman}},
			{ID: 3, Title: "Luceafărul", Year: 1883, AuthorID: 3, CreatedAt: now.AddDate(0, -2, 0), Categories: []model.Category{poezie}},
			{ID: 4, Title: "O scrisoare pierdută", Year: 1884, AuthorID: 4, CreatedAt: now.AddDate(0, 0, -40), Categories: []model.Category{teatru, poezie}},
		},
		Authors: []model.Author{
			{ID: 1, Name: "Liviu Rebreanu"},
			{ID: 2, Name: "Mihail Sadoveanu"},
			{ID: 3, Name: "Mihai Eminescu"},
			{ID: 4, Name: "Ion Luca Caragiale"},
		},
		Categories: []model.Category{roman, poezie, teatru},
		Now:        fixedNow,
	}
}

func TestSnapshotCounts(t *testing.T) {
	s := testSnapshot()

	assert.Equal(t, int64(4), s.TotalBooks())
	assert.Equal(t, int64(4), s.TotalAuthors())
	assert.Equal(t, int64(3), s.TotalCategories())
	assert.Equal(t, 1.0, s.AverageBooksPerAuthor())
}

func TestSnapshotBooksThisMonth(t *testing.T) {
	s := testSnapshot()

	// Two books added yesterday fall in June; the others do not.
	assert.Equal(t, int64(2), s.BooksThisMonth())
}

func TestSnapshotBooksByYear(t *testing.T) {
	s := testSnapshot()

	assert.Equal(t, []YearCount{
		{Year: 1883, Count: 1},
		{Year: 1884, Count: 1},
		{Year: 1920, Count: 1},
		{Year: 1930, Count: 1},
	}, s.BooksByYear())
}

func TestSnapshotTopCategories(t *testing.T) {
	s := testSnapshot()

	t.Run("counts multi-category books once per category", func(t *testing.T) {
		stats := s.TopCategories(5)

		require.Len(t, stats, 3)
		assert.Equal(t, CategoryStat{Name: "Poezie", Count: 2, Percentage: 50.0}, stats[0])
		assert.Equal(t, CategoryStat{Name: "Roman", Count: 2, Percentage: 50.0}, stats[1])
		assert.Equal(t, CategoryStat{Name: "Teatru", Count: 1, Percentage: 25.0}, stats[2])
	})

	t.Run("truncates to n", func(t *testing.T) {
		assert.Len(t, s.TopCategories(2), 2)
	})

	t.Run("percentage rounds to one decimal", func(t *testing.T) {
		three := &Snapshot{
			Books: []model.Book{
				{ID: 1, Categories: []model.Category{{Name: "Roman"}}},
				{ID: 2, Categories: []model.Category{{Name: "Roman"}}},
				{ID: 3},
			},
			Now: fixedNow,
		}

		stats := three.TopCategories(5)
		require.Len(t, stats, 1)
		assert.Equal(t, 66.7, stats[0].Percentage)
	})

	t.Run("exact midpoints round half to even", func(t *testing.T) {
		// 1 of 16 books is 6.25%, which lands on 6.2, not 6.3.
		books := make([]model.Book, 16)
		for i := range books {
			books[i].ID = int64(i + 1)
		}
		books[0].Categories = []model.Category{{Name: "Roman"}}

		s := &Snapshot{Books: books, Now: fixedNow}

		stats := s.TopCategories(5)
		require.Len(t, stats, 1)
		assert.Equal(t, 6.2, stats[0].Percentage)
	})
}

func TestSnapshotTopAuthors(t *testing.T) {
	s := testSnapshot()

	stats := s.TopAuthors(2)

	require.Len(t, stats, 2)
	for _, stat := range stats {
		assert.Equal(t, int64(1), stat.Count)
	}
	// All counts tie, so order falls back to name.
	assert.Equal(t, "Ion Luca Caragiale", stats[0].Name)
	assert.Equal(t, "Liviu Rebreanu", stats[1].Name)
}

func TestSnapshotRecentTrend(t *testing.T) {
	s := testSnapshot()

	points := s.RecentTrend(30)

	require.Len(t, points, 31)

	// Oldest to newest, ending today.
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, points[30].Date)
	assert.Equal(t, today.AddDate(0, 0, -30), points[0].Date)

	var total int64
	for _, p := range points {
		total += p.Count
	}
	// Only the two books from yesterday fall inside the window.
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(2), points[29].Count)
}

func TestSnapshotMostRecentBook(t *testing.T) {
	t.Run("returns the latest addition", func(t *testing.T) {
		s := testSnapshot()

		latest := s.MostRecentBook()
		require.NotNil(t, latest)
		assert.Contains(t, []int64{1, 2}, latest.ID)
	})

	t.Run("nil on an empty catalog", func(t *testing.T) {
		s := &Snapshot{Now: fixedNow}
		assert.Nil(t, s.MostRecentBook())
	})
}

func TestSnapshotAverageWithNoAuthors(t *testing.T) {
	s := &Snapshot{
		Books: []model.Book{{ID: 1}},
		Now:   fixedNow,
	}
	assert.Equal(t, 0.0, s.AverageBooksPerAuthor())
}
