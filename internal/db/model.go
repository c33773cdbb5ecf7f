package db

import (
	"database/sql"
)

// Columns is the fixed schema of the news table, in column order. The
// backup writer and the create-table DDL both derive from it.
var Columns = []string{
	"author",
	"title",
	"description",
	"url",
	"source",
	"image",
	"category",
	"language",
	"country",
	"published_at",
}

// News is one ingested article row. Every column is nullable text; the
// table has no key and duplicates across runs are kept as-is.
type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	Author      sql.NullString `pg:"author"`
	Title       sql.NullString `pg:"title"`
	Description sql.NullString `pg:"description"`
	URL         sql.NullString `pg:"url"`
	Source      sql.NullString `pg:"source"`
	Image       sql.NullString `pg:"image"`
	Category    sql.NullString `pg:"category"`
	Language    sql.NullString `pg:"language"`
	Country     sql.NullString `pg:"country"`
	PublishedAt sql.NullString `pg:"published_at"`
}

// Values returns the row's ten column values in schema order, with NULL
// rendered as the empty string.
func (n News) Values() []string {
	fields := []sql.NullString{
		n.Author,
		n.Title,
		n.Description,
		n.URL,
		n.Source,
		n.Image,
		n.Category,
		n.Language,
		n.Country,
		n.PublishedAt,
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		if f.Valid {
			values[i] = f.String
		}
	}

	return values
}
