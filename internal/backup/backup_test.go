package backup

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-collector/internal/db"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	batch := db.TestArticles()
	day := time.Date(2024, 1, 14, 23, 59, 0, 0, time.UTC)

	path, err := w.Write(batch, day)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "news_2024_01_14.csv"), path)

	rows := readCSV(t, path)
	require.Len(t, rows, len(batch)+1, "header plus one row per article")

	assert.Equal(t, db.Columns, rows[0])
	for i, article := range batch {
		assert.Equal(t, article.Values(), rows[i+1])
	}

	// the second article has NULL author, description and image
	assert.Equal(t, "", rows[2][0])
	assert.Equal(t, "", rows[2][2])
	assert.Equal(t, "", rows[2][5])
}

func TestWriter_Write_EmptyBatch(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.Write(nil, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 1, "only the header row")
	assert.Equal(t, db.Columns, rows[0])
}

func TestWriter_Write_SameDayOverwrites(t *testing.T) {
	w := NewWriter(t.TempDir())
	day := time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC)

	first, err := w.Write(db.TestArticles(), day)
	require.NoError(t, err)

	second, err := w.Write(db.TestArticles()[:1], day)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	rows := readCSV(t, second)
	assert.Len(t, rows, 2, "the later run replaces the earlier file")
}

func TestWriter_Write_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups", "news")
	w := NewWriter(dir)

	path, err := w.Write(db.TestArticles(), time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	return rows
}
