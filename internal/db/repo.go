package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const createNewsTable = `
CREATE TABLE IF NOT EXISTS news (
	author text,
	title text,
	description text,
	url text,
	source text,
	image text,
	category text,
	language text,
	country text,
	published_at text
)`

type Repository struct {
	db pg.DBI
}

// txRunner is satisfied by both *pg.DB and *pg.Tx, so tests can wrap a
// Repository around an outer transaction.
type txRunner interface {
	RunInTransaction(ctx context.Context, fn func(*pg.Tx) error) error
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
	}

	return nil
}

// EnsureSchema creates the news table if it does not exist yet. The table
// shape never changes after creation.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createNewsTable); err != nil {
		return fmt.Errorf("create news table: %w", err)
	}

	return nil
}

// InsertArticles appends the whole batch inside a single transaction.
// On any failure the transaction is rolled back and no rows are kept.
func (r *Repository) InsertArticles(ctx context.Context, articles []News) error {
	if len(articles) == 0 {
		return nil
	}

	runner, ok := r.db.(txRunner)
	if !ok {
		return errors.New("database connection does not support transactions")
	}

	err := runner.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, &articles).Insert(); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("insert news batch: %w", err)
	}

	return nil
}

// News returns the most recently published rows, up to limit.
func (r *Repository) News(ctx context.Context, limit int) ([]News, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"published_at" DESC NULLS LAST`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*News)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

// Tables lists the tables in the public schema.
func (r *Repository) Tables(ctx context.Context) ([]string, error) {
	var tables []string
	_, err := r.db.QueryContext(ctx, &tables,
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)

	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}

	return tables, nil
}
