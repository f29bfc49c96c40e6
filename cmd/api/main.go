package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/issue-dashboard/internal/api/http"
	"github.com/spec-kit/issue-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/issue-dashboard/internal/config"
	"github.com/spec-kit/issue-dashboard/internal/events"
	"github.com/spec-kit/issue-dashboard/internal/ingest"
	"github.com/spec-kit/issue-dashboard/internal/observability"
	"github.com/spec-kit/issue-dashboard/internal/persistence"
	"github.com/spec-kit/issue-dashboard/internal/repository"
	"github.com/spec-kit/issue-dashboard/internal/service"
	"github.com/spec-kit/issue-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	snapshotCache := persistence.NewSnapshotCache(redis, cfg.Refresh.SnapshotCacheTTL)

	store := repository.NewIssueStore()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()
	worker.RegisterRefreshMonitoring(dispatcher, logger, metrics)

	fetcher := ingest.NewSheetFetcher(cfg.Sheet.SpreadsheetID, cfg.Sheet.SheetName, cfg.Sheet.URL)
	refreshService := service.NewRefreshService(*cfg, service.RefreshDependencies{
		Fetcher:    fetcher,
		Cache:      snapshotCache,
		Store:      store,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	dashboardService := service.NewDashboardService(service.DashboardDependencies{
		Store:        store,
		Dispatcher:   dispatcher,
		StaleAgeDays: cfg.Refresh.StaleAgeDays,
	})

	// Initial load before accepting traffic; the fallback chain means
	// this always produces a dataset.
	if _, err := refreshService.Refresh(ctx); err != nil && !errors.Is(err, service.ErrRefreshSuperseded) {
		logger.Error("initial refresh failed", zap.Error(err))
	}
	worker.StartRefreshWorker(ctx, refreshService, cfg.Refresh.Interval, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, store)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	refreshHandler := handlers.NewRefreshHandler(refreshService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Dashboard: dashboardHandler,
		Refresh:   refreshHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
