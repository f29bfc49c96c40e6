package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spec-kit/issue-dashboard/internal/config"
	"github.com/spec-kit/issue-dashboard/internal/domain"
	"github.com/spec-kit/issue-dashboard/internal/events"
	"github.com/spec-kit/issue-dashboard/internal/ingest"
	"github.com/spec-kit/issue-dashboard/internal/repository"
	apperrors "github.com/spec-kit/issue-dashboard/pkg/util"
)

// Fetcher downloads the raw issue feed.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// SnapshotCache stores and retrieves the last good raw feed.
type SnapshotCache interface {
	Store(ctx context.Context, csvText string) error
	Load(ctx context.Context) (string, error)
}

// RefreshService runs the load -> normalize -> replace pipeline. Each
// cycle takes a monotonically increasing token before fetching and
// discards its result if a newer cycle started meanwhile, so a slow
// response can never overwrite fresher state.
type RefreshService struct {
	fetcher      Fetcher
	cache        SnapshotCache
	store        *repository.IssueStore
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	limiter      *rate.Limiter
	fetchTimeout time.Duration
	token        atomic.Uint64
	now          func() time.Time
}

// RefreshDependencies bundles collaborators for the refresh service.
type RefreshDependencies struct {
	Fetcher    Fetcher
	Cache      SnapshotCache
	Store      *repository.IssueStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Now        func() time.Time
}

// NewRefreshService constructs the service.
func NewRefreshService(cfg config.Config, deps RefreshDependencies) *RefreshService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	perMinute := cfg.Refresh.ManualPerMinute
	if perMinute <= 0 {
		perMinute = 6
	}
	burst := cfg.Refresh.ManualBurst
	if burst <= 0 {
		burst = 1
	}
	return &RefreshService{
		fetcher:      deps.Fetcher,
		cache:        deps.Cache,
		store:        deps.Store,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
		limiter:      rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		fetchTimeout: cfg.Sheet.FetchTimeout,
		now:          now,
	}
}

// Refresh runs one full cycle. It never returns a fetch error: the tier
// chain (live feed, cached snapshot, demo data) always yields a
// dataset. The only non-nil return happens when a newer cycle
// superseded this one and its result was discarded.
func (s *RefreshService) Refresh(ctx context.Context) (domain.Dataset, error) {
	token := s.token.Add(1)
	start := s.now()

	dataset := s.loadDataset(ctx)

	if current := s.token.Load(); current != token {
		s.logger.Info("discarding stale refresh result",
			zap.Uint64("token", token),
			zap.Uint64("current", current),
		)
		s.publish(ctx, events.EventDatasetRefreshFailed, events.DatasetRefreshFailedPayload{
			Reason: "superseded",
			Token:  token,
		})
		return domain.Dataset{}, ErrRefreshSuperseded
	}

	s.store.Replace(dataset)
	s.publish(ctx, events.EventDatasetRefreshed, events.DatasetRefreshedPayload{
		Source:   dataset.Source,
		Records:  len(dataset.Issues),
		Duration: s.now().Sub(start),
		Token:    token,
	})
	return dataset, nil
}

// TriggerManual runs a refresh on behalf of a user action, subject to
// rate limiting.
func (s *RefreshService) TriggerManual(ctx context.Context) (domain.Dataset, error) {
	if !s.limiter.Allow() {
		return domain.Dataset{}, apperrors.NewRateLimited("refresh triggered too frequently")
	}
	return s.Refresh(ctx)
}

// loadDataset walks the fallback chain: live feed, then cached
// snapshot, then built-in demo records. Every tier failure is logged
// and non-fatal.
func (s *RefreshService) loadDataset(ctx context.Context) domain.Dataset {
	if issues, raw, err := s.fetchLive(ctx); err == nil {
		s.storeSnapshot(ctx, raw)
		return domain.Dataset{Issues: issues, Source: domain.SourceLive, FetchedAt: s.now()}
	} else {
		s.logger.Warn("live feed unavailable", zap.Error(err))
	}

	if issues, err := s.loadCached(ctx); err == nil {
		return domain.Dataset{Issues: issues, Source: domain.SourceCache, FetchedAt: s.now()}
	} else {
		s.logger.Warn("snapshot cache unavailable", zap.Error(err))
	}

	return domain.Dataset{
		Issues:    ingest.DemoIssues(s.now()),
		Source:    domain.SourceDemo,
		FetchedAt: s.now(),
	}
}

func (s *RefreshService) fetchLive(ctx context.Context) ([]domain.Issue, string, error) {
	fetchCtx := ctx
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	raw, err := s.fetcher.Fetch(fetchCtx)
	if err != nil {
		return nil, "", err
	}
	issues, err := ingest.ParseDocument(raw)
	if err != nil {
		return nil, "", err
	}
	return issues, raw, nil
}

func (s *RefreshService) loadCached(ctx context.Context) ([]domain.Issue, error) {
	if s.cache == nil {
		return nil, persistenceUnconfigured
	}
	raw, err := s.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ingest.ParseDocument(raw)
}

func (s *RefreshService) storeSnapshot(ctx context.Context, raw string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Store(ctx, raw); err != nil {
		s.logger.Warn("failed to cache feed snapshot", zap.Error(err))
	}
}

func (s *RefreshService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
