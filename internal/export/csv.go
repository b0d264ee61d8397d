// Package export renders catalog data for download.
package export

import (
	"strconv"
	"strings"
	"time"

	"library-catalog-backend/internal/catalog/model"
)

const dateAddedFormat = "02/01/2006 15:04"

var booksHeader = []string{"Title", "Author", "Author Email", "Year", "Categories", "Date Added"}

// BooksCSV renders books as CSV in the given order, one row per book
// after the fixed header. Every field is quoted and embedded quotes
// are doubled, so encoding/csv-style always-quoted output is written
// by hand. Timestamps render in loc.
func BooksCSV(books []model.Book, loc *time.Location) string {
	var sb strings.Builder

	writeRow(&sb, booksHeader)

	for _, b := range books {
		authorName := "N/A"
		authorEmail := "N/A"
		if b.Author != nil {
			authorName = b.Author.Name
			authorEmail = b.Author.Email
		}

		names := make([]string, 0, len(b.Categories))
		for _, c := range b.Categories {
			names = append(names, c.Name)
		}

		writeRow(&sb, []string{
			b.Title,
			authorName,
			authorEmail,
			strconv.Itoa(b.Year),
			strings.Join(names, "; "),
			b.CreatedAt.In(loc).Format(dateAddedFormat),
		})
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteString("\r\n")
}
