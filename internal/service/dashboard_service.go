package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/issue-dashboard/internal/analytics"
	"github.com/spec-kit/issue-dashboard/internal/domain"
	"github.com/spec-kit/issue-dashboard/internal/events"
	"github.com/spec-kit/issue-dashboard/internal/repository"
	apperrors "github.com/spec-kit/issue-dashboard/pkg/util"
)

// DashboardService answers read queries over the canonical issue set.
// All computation happens on snapshots; the service itself holds no
// mutable state beyond its collaborators.
type DashboardService struct {
	store        *repository.IssueStore
	dispatcher   events.Dispatcher
	staleAgeDays int
	now          func() time.Time
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	Store        *repository.IssueStore
	Dispatcher   events.Dispatcher
	StaleAgeDays int
	Now          func() time.Time
}

// Overview is the one-shot dashboard payload: summary cards, every
// chart series, and the filtered table rows.
type Overview struct {
	Summary            analytics.Summary
	StatusSeries       []analytics.SeriesPoint
	PrioritySeries     []analytics.SeriesPoint
	CitySeries         []analytics.SeriesPoint
	MonthlySeries      []analytics.MonthlyBucket
	AssigneeIssueTypes analytics.StackedSeries
	OldestPerAssignee  []analytics.OldestIssue
	Rows               []domain.Issue
	TotalCount         int
	Source             domain.DatasetSource
	LastUpdated        time.Time
}

// UnresolvedView is the 20-day aging tab payload.
type UnresolvedView struct {
	Count  int
	Groups []analytics.AgingGroup
}

// Export is a rendered CSV download.
type Export struct {
	FileName string
	CSV      string
	Records  int
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	staleAge := deps.StaleAgeDays
	if staleAge <= 0 {
		staleAge = 20
	}
	return &DashboardService{
		store:        deps.Store,
		dispatcher:   deps.Dispatcher,
		staleAgeDays: staleAge,
		now:          now,
	}
}

// Overview computes the full dashboard for the given criteria. Every
// view is recomputed from scratch on each call; nothing is cached or
// updated incrementally.
func (s *DashboardService) Overview(criteria domain.FilterCriteria) (*Overview, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	filtered := analytics.Apply(dataset.Issues, criteria)
	summary := analytics.Summarize(filtered)

	return &Overview{
		Summary: summary,
		StatusSeries: []analytics.SeriesPoint{
			{Label: string(domain.StatusOpen), Count: summary.Open, Color: "#f59e0b"},
			{Label: string(domain.StatusClosed), Count: summary.Closed, Color: "#10b981"},
			{Label: string(domain.StatusOnHold), Count: summary.OnHold, Color: "#ef4444"},
		},
		PrioritySeries:     analytics.ByPriority(filtered),
		CitySeries:         analytics.ByCity(filtered),
		MonthlySeries:      analytics.ByMonth(filtered),
		AssigneeIssueTypes: analytics.ByAssigneeIssueType(filtered),
		OldestPerAssignee:  analytics.OldestOpenPerAssignee(filtered, s.now()),
		Rows:               filtered,
		TotalCount:         len(dataset.Issues),
		Source:             dataset.Source,
		LastUpdated:        dataset.FetchedAt,
	}, nil
}

// Issues returns the filtered rows plus the canonical set size, for
// "showing X of Y" rendering.
func (s *DashboardService) Issues(criteria domain.FilterCriteria) ([]domain.Issue, int, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, 0, err
	}
	return analytics.Apply(dataset.Issues, criteria), len(dataset.Issues), nil
}

// Summary returns per-status counts for the filtered set.
func (s *DashboardService) Summary(criteria domain.FilterCriteria) (analytics.Summary, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(analytics.Apply(dataset.Issues, criteria)), nil
}

// FilterOptions lists dropdown values from the unfiltered canonical set.
func (s *DashboardService) FilterOptions() (analytics.FilterOptions, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return analytics.FilterOptions{}, err
	}
	return analytics.Options(dataset.Issues), nil
}

// Unresolved builds the aging view over the full canonical set.
func (s *DashboardService) Unresolved() (*UnresolvedView, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	count, groups := analytics.UnresolvedAging(dataset.Issues, s.now(), s.staleAgeDays)
	return &UnresolvedView{Count: count, Groups: groups}, nil
}

// BuildExport serializes the current filtered set as a CSV download.
// An empty filtered set is rejected before the serializer runs.
func (s *DashboardService) BuildExport(ctx context.Context, criteria domain.FilterCriteria) (*Export, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	filtered := analytics.Apply(dataset.Issues, criteria)
	if len(filtered) == 0 {
		return nil, apperrors.NewValidationError("no issues match the current filters", nil)
	}

	csvText, err := analytics.ToCSV(filtered)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	export := &Export{
		FileName: fmt.Sprintf("issues_export_%d.csv", s.now().UnixMilli()),
		CSV:      csvText,
		Records:  len(filtered),
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventExportGenerated,
			Timestamp: s.now(),
			Payload: events.ExportGeneratedPayload{
				FileName: export.FileName,
				Records:  export.Records,
			},
		})
	}
	return export, nil
}

// Source reports where the current dataset came from and when.
func (s *DashboardService) Source() (domain.DatasetSource, time.Time, error) {
	dataset, err := s.snapshot()
	if err != nil {
		return "", time.Time{}, err
	}
	return dataset.Source, dataset.FetchedAt, nil
}

func (s *DashboardService) snapshot() (domain.Dataset, error) {
	dataset, ok := s.store.Snapshot()
	if !ok {
		return domain.Dataset{}, apperrors.NewUnavailable("dataset not loaded yet")
	}
	return dataset, nil
}
