package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/issue-dashboard/internal/config"
	"github.com/spec-kit/issue-dashboard/internal/domain"
	"github.com/spec-kit/issue-dashboard/internal/events"
	"github.com/spec-kit/issue-dashboard/internal/repository"
	apperrors "github.com/spec-kit/issue-dashboard/pkg/util"
)

const liveFeed = "Issue ID,Client,Resolved Y/N,Next Follow Up Date\n1,Acme,N,\n2,Globex,Y,\n"
const cachedFeed = "Issue ID,Client,Resolved Y/N,Next Follow Up Date\n9,Cached Co,N,\n"

type stubFetcher struct {
	body string
	err  error
	// onFetch runs before returning, letting tests start a competing
	// refresh mid-flight.
	onFetch func()
	calls   int
}

func (f *stubFetcher) Fetch(ctx context.Context) (string, error) {
	f.calls++
	if f.onFetch != nil {
		hook := f.onFetch
		f.onFetch = nil
		hook()
	}
	return f.body, f.err
}

type stubCache struct {
	stored []string
	body   string
	err    error
}

func (c *stubCache) Store(ctx context.Context, csvText string) error {
	c.stored = append(c.stored, csvText)
	return nil
}

func (c *stubCache) Load(ctx context.Context) (string, error) {
	return c.body, c.err
}

func newTestRefreshService(fetcher Fetcher, cache SnapshotCache, store *repository.IssueStore) *RefreshService {
	cfg := config.Config{}
	cfg.Refresh.ManualPerMinute = 60
	cfg.Refresh.ManualBurst = 1
	return NewRefreshService(cfg, RefreshDependencies{
		Fetcher:    fetcher,
		Cache:      cache,
		Store:      store,
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
	})
}

func TestRefreshLiveFeed(t *testing.T) {
	store := repository.NewIssueStore()
	cache := &stubCache{}
	svc := newTestRefreshService(&stubFetcher{body: liveFeed}, cache, store)

	dataset, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceLive, dataset.Source)
	assert.Len(t, dataset.Issues, 2)

	// A good live fetch refreshes the snapshot cache.
	require.Len(t, cache.stored, 1)
	assert.Equal(t, liveFeed, cache.stored[0])

	stored, loaded := store.Snapshot()
	require.True(t, loaded)
	assert.Equal(t, domain.SourceLive, stored.Source)
}

func TestRefreshFallsBackToCache(t *testing.T) {
	store := repository.NewIssueStore()
	svc := newTestRefreshService(
		&stubFetcher{err: errors.New("connection refused")},
		&stubCache{body: cachedFeed},
		store,
	)

	dataset, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCache, dataset.Source)
	require.Len(t, dataset.Issues, 1)
	assert.Equal(t, "Cached Co", dataset.Issues[0].Client)
}

func TestRefreshFallsBackToDemo(t *testing.T) {
	store := repository.NewIssueStore()
	svc := newTestRefreshService(
		&stubFetcher{err: errors.New("connection refused")},
		&stubCache{err: errors.New("redis down")},
		store,
	)

	dataset, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDemo, dataset.Source)
	assert.NotEmpty(t, dataset.Issues)
}

func TestRefreshUnparseableFeedFallsBack(t *testing.T) {
	store := repository.NewIssueStore()
	svc := newTestRefreshService(
		&stubFetcher{body: "just one line"},
		&stubCache{err: errors.New("empty")},
		store,
	)

	dataset, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDemo, dataset.Source)
}

func TestRefreshDiscardsStaleResult(t *testing.T) {
	store := repository.NewIssueStore()
	fetcher := &stubFetcher{body: liveFeed}
	svc := newTestRefreshService(fetcher, &stubCache{err: errors.New("empty")}, store)

	// The first cycle's fetch kicks off a second, newer cycle before
	// returning; the first result must then be discarded.
	var innerErr error
	fetcher.onFetch = func() {
		fetcher.body = cachedFeed
		_, innerErr = svc.Refresh(context.Background())
	}

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrRefreshSuperseded)
	require.NoError(t, innerErr)

	// The store holds the newer cycle's dataset.
	dataset, loaded := store.Snapshot()
	require.True(t, loaded)
	require.Len(t, dataset.Issues, 1)
	assert.Equal(t, "Cached Co", dataset.Issues[0].Client)
	assert.Equal(t, 2, fetcher.calls)
}

func TestTriggerManualRateLimited(t *testing.T) {
	store := repository.NewIssueStore()
	cfg := config.Config{}
	cfg.Refresh.ManualPerMinute = 1
	cfg.Refresh.ManualBurst = 1
	svc := NewRefreshService(cfg, RefreshDependencies{
		Fetcher: &stubFetcher{body: liveFeed},
		Store:   store,
		Logger:  zap.NewNop(),
	})

	_, err := svc.TriggerManual(context.Background())
	require.NoError(t, err)

	_, err = svc.TriggerManual(context.Background())
	require.Error(t, err)
	assert.Equal(t, "RATE_LIMITED", apperrors.ToDomainError(err).Code)
}
