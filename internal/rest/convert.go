package rest

import (
	"database/sql"

	"github.com/samber/lo"

	"github.com/daniilsolovey/news-collector/internal/db"
)

func NewNews(n db.News) News {
	return News{
		Author:      nullable(n.Author),
		Title:       nullable(n.Title),
		Description: nullable(n.Description),
		URL:         nullable(n.URL),
		Source:      nullable(n.Source),
		Image:       nullable(n.Image),
		Category:    nullable(n.Category),
		Language:    nullable(n.Language),
		Country:     nullable(n.Country),
		PublishedAt: nullable(n.PublishedAt),
	}
}

func NewNewsList(list []db.News) []News {
	return lo.Map(list, func(n db.News, _ int) News { return NewNews(n) })
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}
