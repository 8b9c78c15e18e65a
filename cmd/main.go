package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"ads-dashboard/internal/adapter/http"
	"ads-dashboard/internal/adapter/postgres"
	"ads-dashboard/internal/adapter/usecase"
	"ads-dashboard/internal/adapter/xlsx"
	"ads-dashboard/internal/config"
	"ads-dashboard/internal/config/configs"
	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/port"
	"ads-dashboard/internal/db"
)

// main is the entry point of the ads dashboard. It loads configuration,
// reads the campaign report once, then serves the dashboard over HTTP. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from the environment and an optional .env file.
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A signal during the load aborts it; quit still receives the signal
	// and sets the exit code.
	loadCtx, stopLoad := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	ds, err := loadDataset(loadCtx, cfg, logger)
	stopLoad()
	if err != nil {
		select {
		case value := <-quit:
			exitCode = 128 + int(value.(syscall.Signal))
			logger.Info("dataset load interrupted", slog.String("signal", value.String()))
		default:
			logger.Error("dataset load error", slog.Any("error", err))
		}
		return
	}

	svc := usecase.NewDashboardUseCase(ds)
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case value := <-quit:
			exitCode = 128 + int(value.(syscall.Signal))
			logger.Info("shutdown signal received", slog.String("signal", value.String()))
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}
}

// loadDataset reads the report from the configured source. The Postgres
// pool is only held for the duration of the load.
func loadDataset(ctx context.Context, cfg config.Config, logger *slog.Logger) (*domain.Dataset, error) {
	var src port.DatasetSource
	switch cfg.Dataset.Source {
	case configs.SourcePostgres:
		// Apply the embedded schema first when asked to.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(ctx, cfg.Psql.Addr.String(), logger); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		src = postgres.NewCampaignRepository(pool)
	default:
		src = xlsx.NewLoader(cfg.Dataset.Path, cfg.Dataset.Sheet, logger)
	}

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset ready",
		slog.String("source", cfg.Dataset.Source),
		slog.Int("records", ds.Len()),
		slog.Int("campaigns", len(ds.Campaigns())),
		slog.String("min_date", ds.MinDate().Format(domain.DateLayout)),
		slog.String("max_date", ds.MaxDate().Format(domain.DateLayout)),
	)
	return ds, nil
}
