package dto

import (
	"github.com/spec-kit/issue-dashboard/internal/analytics"
	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// IssueRow is one table row with derived display values attached.
type IssueRow struct {
	IssueID             string `json:"issue_id"`
	Client              string `json:"client"`
	City                string `json:"city"`
	Issue               string `json:"issue"`
	VehicleNumber       string `json:"vehicle_number"`
	Priority            string `json:"priority"`
	PriorityBucket      string `json:"priority_bucket"`
	AssignedTo          string `json:"assigned_to"`
	RaisedAt            string `json:"raised_at"`
	RaisedAtDisplay     string `json:"raised_at_display"`
	Status              string `json:"status"`
	NextFollowUp        string `json:"next_follow_up"`
	NextFollowUpDisplay string `json:"next_follow_up_display"`
}

// SummaryResponse mirrors the dashboard summary cards.
type SummaryResponse struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
	OnHold int `json:"on_hold"`
}

// DashboardResponse is the one-shot payload for the main view.
type DashboardResponse struct {
	Summary            SummaryResponse           `json:"summary"`
	StatusSeries       []analytics.SeriesPoint   `json:"status_series"`
	PrioritySeries     []analytics.SeriesPoint   `json:"priority_series"`
	CitySeries         []analytics.SeriesPoint   `json:"city_series"`
	MonthlySeries      []analytics.MonthlyBucket `json:"monthly_series"`
	AssigneeIssueTypes analytics.StackedSeries   `json:"assignee_issue_types"`
	OldestPerAssignee  []OldestIssueResponse     `json:"oldest_per_assignee"`
	Rows               []IssueRow                `json:"rows"`
	ShowingCount       int                       `json:"showing_count"`
	TotalCount         int                       `json:"total_count"`
	Source             string                    `json:"source"`
	LastUpdated        string                    `json:"last_updated"`
}

// IssueListResponse carries filtered rows plus table info counts.
type IssueListResponse struct {
	Rows         []IssueRow `json:"rows"`
	ShowingCount int        `json:"showing_count"`
	TotalCount   int        `json:"total_count"`
}

// OldestIssueResponse is one assignee's oldest unresolved issue.
type OldestIssueResponse struct {
	Assignee string   `json:"assignee"`
	Issue    IssueRow `json:"issue"`
	AgeDays  int      `json:"age_days"`
}

// AgedIssueResponse is a table row with its age attached.
type AgedIssueResponse struct {
	IssueRow
	AgeDays int `json:"age_days"`
}

// AgingGroupResponse is one assignee section of the aging tab.
type AgingGroupResponse struct {
	Assignee string              `json:"assignee"`
	Count    int                 `json:"count"`
	Issues   []AgedIssueResponse `json:"issues"`
}

// UnresolvedResponse is the aging tab payload.
type UnresolvedResponse struct {
	Count  int                  `json:"count"`
	Groups []AgingGroupResponse `json:"groups"`
}

// RefreshResponse reports a completed manual refresh.
type RefreshResponse struct {
	Source      string `json:"source"`
	Records     int    `json:"records"`
	LastUpdated string `json:"last_updated"`
}

// NewIssueRow derives display values for one canonical issue.
func NewIssueRow(issue domain.Issue) IssueRow {
	return IssueRow{
		IssueID:             issue.IssueID,
		Client:              issue.Client,
		City:                issue.City,
		Issue:               issue.IssueDescription,
		VehicleNumber:       issue.VehicleNumber,
		Priority:            issue.Priority,
		PriorityBucket:      domain.PriorityBucket(issue.Priority),
		AssignedTo:          issue.AssignedTo,
		RaisedAt:            issue.RaisedAt,
		RaisedAtDisplay:     domain.FormatDate(issue.RaisedAt),
		Status:              string(domain.Classify(issue)),
		NextFollowUp:        issue.NextFollowUp,
		NextFollowUpDisplay: domain.FormatDate(issue.NextFollowUp),
	}
}

// NewIssueRows maps a filtered slice into table rows.
func NewIssueRows(issues []domain.Issue) []IssueRow {
	rows := make([]IssueRow, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, NewIssueRow(issue))
	}
	return rows
}
