// Package backup writes failed news batches to dated CSV files.
package backup

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/daniilsolovey/news-collector/internal/db"
)

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
	}
}

// Write stores the whole batch as news_<YYYY>_<MM>_<DD>.csv under the
// writer's directory and returns the file path. The header row carries
// the schema column names; NULL values are written as empty cells. A
// second write on the same day overwrites the day's file.
func (w *Writer) Write(articles []db.News, day time.Time) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("news_%s.csv", day.Format("2006_01_02")))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}

	cw := csv.NewWriter(file)

	if err := cw.Write(db.Columns); err != nil {
		file.Close()
		return "", fmt.Errorf("write backup header: %w", err)
	}

	for _, article := range articles {
		if err := cw.Write(article.Values()); err != nil {
			file.Close()
			return "", fmt.Errorf("write backup row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		file.Close()
		return "", fmt.Errorf("flush backup file: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close backup file: %w", err)
	}

	return path, nil
}
