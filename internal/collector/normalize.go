package collector

import (
	"database/sql"
	"fmt"

	"github.com/samber/lo"

	"github.com/daniilsolovey/news-collector/internal/db"
)

// Normalize reshapes raw API records into news rows with the fixed
// ten-column schema. Absent or null keys become NULL, keys outside the
// schema are dropped, and order is preserved. Field content is passed
// through unvalidated.
func Normalize(records []map[string]any) []db.News {
	return lo.Map(records, func(record map[string]any, _ int) db.News {
		return db.News{
			Author:      nullString(record, "author"),
			Title:       nullString(record, "title"),
			Description: nullString(record, "description"),
			URL:         nullString(record, "url"),
			Source:      nullString(record, "source"),
			Image:       nullString(record, "image"),
			Category:    nullString(record, "category"),
			Language:    nullString(record, "language"),
			Country:     nullString(record, "country"),
			PublishedAt: nullString(record, "published_at"),
		}
	})
}

func nullString(record map[string]any, key string) sql.NullString {
	value, ok := record[key]
	if !ok || value == nil {
		return sql.NullString{}
	}

	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}

	return sql.NullString{String: s, Valid: true}
}
