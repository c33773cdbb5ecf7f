package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://api.mediastack.com/v1", cfg.API.BaseURL)
	assert.Equal(t, "ai", cfg.API.Keywords)
	assert.Equal(t, "en", cfg.API.Languages)
	assert.Equal(t, "published_desc", cfg.API.Sort)
	assert.Equal(t, 100, cfg.API.Limit)
	assert.Equal(t, 86400, cfg.Collector.IntervalSeconds)
	assert.Empty(t, cfg.API.AccessKey, "the credential never has a default")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
DatabaseURL = "postgres://collector:secret@db:5432/news?sslmode=disable"

[API]
Keywords = "climate"
Limit = 25

[Collector]
IntervalSeconds = 3600
BackupDir = "/var/backups/news"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "climate", cfg.API.Keywords)
	assert.Equal(t, 25, cfg.API.Limit)
	assert.Equal(t, "en", cfg.API.Languages, "unset values keep their defaults")
	assert.Equal(t, 3600, cfg.Collector.IntervalSeconds)
	assert.Equal(t, "/var/backups/news", cfg.Collector.BackupDir)
	assert.Equal(t, time.Hour, cfg.Interval())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPGOptions(t *testing.T) {
	cfg := Default()
	cfg.DatabaseURL = "postgres://collector:secret@db:5432/news?sslmode=disable"

	opt, err := cfg.PGOptions()
	require.NoError(t, err)
	assert.Equal(t, "db:5432", opt.Addr)
	assert.Equal(t, "collector", opt.User)
	assert.Equal(t, "news", opt.Database)

	cfg.DatabaseURL = "not a url"
	_, err = cfg.PGOptions()
	assert.Error(t, err)
}
