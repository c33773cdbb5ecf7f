package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-collector/config"
	"github.com/daniilsolovey/news-collector/internal/app"
)

var (
	flConfig    = flag.String("config", "", "path to TOML configuration file (CONFIG)")
	flAccessKey = flag.String("access-key", "", "news API access key (ACCESS_KEY)")
	flInterval  = flag.Int("interval", 0, "collection interval in seconds, overrides config (INTERVAL)")
	flOnce      = flag.Bool("once", false, "run a single collection and exit (ONCE)")
	flDebug     = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	lg          *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	cfg, err := config.Load(*flConfig)
	if err != nil {
		exitOnError(err)
	}

	if *flAccessKey != "" {
		cfg.API.AccessKey = *flAccessKey
	}

	if *flInterval > 0 {
		cfg.Collector.IntervalSeconds = *flInterval
	}

	opt, err := cfg.PGOptions()
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	db := pg.Connect(opt)
	if err := db.Ping(ctx); err != nil {
		db.Close()
		exitOnError(err)
	}

	service := app.New(cfg, db, lg)

	if *flOnce {
		if err := service.RunOnce(ctx); err != nil {
			lg.Error("collection run failed", "error", err)
			service.Repo.Close()
			os.Exit(1)
		}
		service.Repo.Close()
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(runCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
