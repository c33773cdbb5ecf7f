package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/news-collector/config"
	"github.com/daniilsolovey/news-collector/internal/backup"
	"github.com/daniilsolovey/news-collector/internal/collector"
	"github.com/daniilsolovey/news-collector/internal/db"
	"github.com/daniilsolovey/news-collector/internal/mediastack"
	"github.com/daniilsolovey/news-collector/internal/rest"
)

type App struct {
	Repo      *db.Repository
	Collector *collector.Collector
	Echo      *echo.Echo
	Logger    *slog.Logger
	Config    config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)
	coll := collector.New(
		mediastack.New(cfg.API, nil),
		repo,
		backup.NewWriter(cfg.Collector.BackupDir),
		logger,
	)
	handler := rest.NewHandler(repo, logger)

	return &App{
		Repo:      repo,
		Collector: coll,
		Echo:      handler.RegisterRoutes(),
		Logger:    logger,
		Config:    cfg,
	}
}

// RunOnce executes a single collection run and returns its error, if any.
func (a *App) RunOnce(ctx context.Context) error {
	_, err := a.Collector.RunOnce(ctx)
	return err
}

// Run starts the inspection API and blocks on the collection loop until
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	go func() {
		addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
		if err := a.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
			a.Logger.Error("inspection server stopped", "error", err)
		}
	}()

	return a.Collector.Run(ctx, a.Config.Interval())
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		err = nil
	}

	if closeErr := a.Repo.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}
