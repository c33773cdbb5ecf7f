package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	// TestDBURLEnv names the environment variable holding the test
	// database connection string. Integration tests are skipped when it
	// is not set.
	TestDBURLEnv = "TEST_DATABASE_URL"
	// MigrationsDir is the directory containing the goose migrations.
	MigrationsDir = "../../migrations"
)

// ResetPublicSchema drops and recreates the public schema
func ResetPublicSchema(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	if err != nil {
		return fmt.Errorf("reset public schema: %w", err)
	}
	return nil
}

// RunMigrations runs database migrations from the migrations directory
func RunMigrations(ctx context.Context, databaseURL, migrationsDir string) error {
	config, err := pgx.ParseConnectionString(databaseURL)
	if err != nil {
		return fmt.Errorf("parse connection string: %w", err)
	}

	sqldb := stdlib.OpenDB(config)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping test db: %w", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// EnsureTablesExist verifies that the expected tables are present
func EnsureTablesExist(ctx context.Context, database *pg.DB, tables []string) error {
	for _, table := range tables {
		var exists bool
		_, err := database.QueryOneContext(ctx, pg.Scan(&exists),
			`SELECT EXISTS (SELECT 1 FROM pg_tables WHERE schemaname = 'public' AND tablename = ?)`,
			table)
		if err != nil {
			return fmt.Errorf("check table %q: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("expected table %q does not exist", table)
		}
	}
	return nil
}

// TestArticles returns a deterministic batch of rows for test seeding.
func TestArticles() []News {
	text := func(s string) sql.NullString {
		return sql.NullString{String: s, Valid: true}
	}

	return []News{
		{
			Author:      text("Jane Smith"),
			Title:       text("AI reshapes the newsroom"),
			Description: text("How editors adopt machine learning tools"),
			URL:         text("https://example.com/articles/1"),
			Source:      text("example"),
			Image:       text("https://example.com/images/1.jpg"),
			Category:    text("technology"),
			Language:    text("en"),
			Country:     text("us"),
			PublishedAt: text("2024-01-14T12:00:00+00:00"),
		},
		{
			Author:      sql.NullString{},
			Title:       text("Markets react to chip shortage"),
			Description: sql.NullString{},
			URL:         text("https://example.com/articles/2"),
			Source:      text("example"),
			Image:       sql.NullString{},
			Category:    text("business"),
			Language:    text("en"),
			Country:     text("gb"),
			PublishedAt: text("2024-01-13T09:30:00+00:00"),
		},
		{
			Author:      text("Li Wei"),
			Title:       text("Robotics startups raise record funding"),
			Description: text("A funding roundup"),
			URL:         text("https://example.com/articles/3"),
			Source:      text("example"),
			Image:       text("https://example.com/images/3.jpg"),
			Category:    text("technology"),
			Language:    text("en"),
			Country:     text("de"),
			PublishedAt: text("2024-01-12T18:45:00+00:00"),
		},
	}
}
