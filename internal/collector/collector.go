// Package collector drives the fetch, normalize and persist pipeline for
// news articles, once or on a fixed interval.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/news-collector/internal/db"
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]map[string]any, error)
}

type Store interface {
	EnsureSchema(ctx context.Context) error
	InsertArticles(ctx context.Context, articles []db.News) error
}

type BackupWriter interface {
	Write(articles []db.News, day time.Time) (string, error)
}

// Outcome reports how a single run finished.
type Outcome int

const (
	// OutcomeStored means the batch was committed to the store.
	OutcomeStored Outcome = iota
	// OutcomeBackedUp means the store write failed and the batch was
	// written to the backup file instead.
	OutcomeBackedUp
	// OutcomeAborted means the run failed before a batch was produced.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeBackedUp:
		return "backed up"
	case OutcomeAborted:
		return "aborted"
	}

	return "unknown"
}

type Collector struct {
	fetcher Fetcher
	store   Store
	backup  BackupWriter
	log     *slog.Logger

	// now is overridable in tests; it names the backup file's day.
	now func() time.Time
}

func New(fetcher Fetcher, store Store, backup BackupWriter, log *slog.Logger) *Collector {
	return &Collector{
		fetcher: fetcher,
		store:   store,
		backup:  backup,
		log:     log,
		now:     time.Now,
	}
}

// RunOnce executes one full pipeline run. A fetch failure aborts the run
// and is returned to the caller. A store failure is recovered locally by
// writing the batch to the backup file; only a failure of the backup
// write itself surfaces as an error after that point.
func (c *Collector) RunOnce(ctx context.Context) (Outcome, error) {
	c.log.Info("collecting news data")

	records, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return OutcomeAborted, fmt.Errorf("fetch news: %w", err)
	}

	c.log.Info("news data collected", "records", len(records))

	batch := Normalize(records)

	c.log.Info("saving news data", "rows", len(batch))

	outcome, err := c.persist(ctx, batch)
	if err != nil {
		return outcome, err
	}

	if outcome == OutcomeStored {
		c.log.Info("news data saved", "rows", len(batch))
	}

	return outcome, nil
}

func (c *Collector) persist(ctx context.Context, batch []db.News) (Outcome, error) {
	err := c.store.EnsureSchema(ctx)
	if err == nil {
		err = c.store.InsertArticles(ctx, batch)
	}

	if err == nil {
		return OutcomeStored, nil
	}

	c.log.Error("failed to save news data, falling back to backup file", "error", err)

	path, backupErr := c.backup.Write(batch, c.now())
	if backupErr != nil {
		return OutcomeAborted, fmt.Errorf("write backup after store failure: %w", backupErr)
	}

	c.log.Info("news data saved to backup file", "path", path, "rows", len(batch))

	return OutcomeBackedUp, nil
}

// Run repeats the pipeline until ctx is cancelled, sleeping interval
// between runs. The sleep is the same whether the previous run was
// committed, degraded to backup, or aborted; failed runs are logged and
// the loop continues.
func (c *Collector) Run(ctx context.Context, interval time.Duration) error {
	for {
		if _, err := c.RunOnce(ctx); err != nil {
			c.log.Error("news collection run failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
