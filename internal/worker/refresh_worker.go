package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/issue-dashboard/internal/events"
	"github.com/spec-kit/issue-dashboard/internal/observability"
	"github.com/spec-kit/issue-dashboard/internal/service"
)

// StartRefreshWorker re-runs the full refresh pipeline on a fixed
// interval until ctx is canceled.
func StartRefreshWorker(ctx context.Context, refresh *service.RefreshService, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		logger.Warn("periodic refresh disabled", zap.Duration("interval", interval))
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := refresh.Refresh(ctx); err != nil && !errors.Is(err, service.ErrRefreshSuperseded) {
					logger.Error("periodic refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// RegisterRefreshMonitoring subscribes logging and metrics handlers to
// the dataset lifecycle events.
func RegisterRefreshMonitoring(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	dispatcher.Subscribe(events.EventDatasetRefreshed, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.DatasetRefreshedPayload)
		if !ok {
			return nil
		}
		metrics.RecordRefresh(string(payload.Source), event.Timestamp)
		logger.Info("dataset refreshed",
			zap.String("source", string(payload.Source)),
			zap.Int("records", payload.Records),
			zap.Duration("duration", payload.Duration),
		)
		return nil
	})

	dispatcher.Subscribe(events.EventDatasetRefreshFailed, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.DatasetRefreshFailedPayload)
		if !ok {
			return nil
		}
		metrics.RecordRefresh("failed", event.Timestamp)
		logger.Warn("dataset refresh failed", zap.String("reason", payload.Reason))
		return nil
	})

	dispatcher.Subscribe(events.EventExportGenerated, func(_ context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.ExportGeneratedPayload)
		if !ok {
			return nil
		}
		logger.Info("export generated",
			zap.String("file", payload.FileName),
			zap.Int("records", payload.Records),
		)
		return nil
	})
}
