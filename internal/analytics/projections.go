package analytics

import (
	"time"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// Chart colors, matching the original dashboard palette.
const (
	colorRed    = "#ef4444"
	colorAmber  = "#f59e0b"
	colorGreen  = "#10b981"
	colorGray   = "#6b7280"
	colorBlue   = "#2563eb"
	unknownName = "Unknown"
)

var stackPalette = []string{
	"#2563eb", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
	"#06b6d4", "#84cc16", "#f97316", "#ec4899", "#6366f1",
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// SeriesPoint is one labeled count in a chart-ready series.
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color,omitempty"`
}

// MonthlyBucket tracks issue volume for one calendar month bucket. Open
// vs closed here is the binary resolved check, not the three-way
// classifier.
type MonthlyBucket struct {
	Month  string `json:"month"`
	Total  int    `json:"total"`
	Open   int    `json:"open"`
	Closed int    `json:"closed"`
}

// StackedDataset is one issue-type layer of the assignee chart.
type StackedDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
	Color string `json:"color"`
}

// StackedSeries is the assignee x issue-type chart: one data column per
// assignee, one dataset per distinct issue type in the filtered set.
type StackedSeries struct {
	Assignees []string         `json:"assignees"`
	Datasets  []StackedDataset `json:"datasets"`
}

// OldestIssue is the earliest-raised unresolved issue for one assignee.
type OldestIssue struct {
	Assignee string       `json:"assignee"`
	Issue    domain.Issue `json:"issue"`
	AgeDays  int          `json:"age_days"`
}

// Group labels everywhere preserve first-encounter order of the scanned
// input, matching how the original rendered its charts.

// ByPriority counts issues per raw priority label, color-coded by the
// high/med/low substring heuristic. Empty labels bucket to "Unknown".
func ByPriority(issues []domain.Issue) []SeriesPoint {
	return countBy(issues, func(issue domain.Issue) string {
		return orUnknown(issue.Priority)
	}, priorityColor)
}

// ByCity counts issues per raw city value, defaulting to "Unknown".
func ByCity(issues []domain.Issue) []SeriesPoint {
	return countBy(issues, func(issue domain.Issue) string {
		return orUnknown(issue.City)
	}, func(string) string { return colorBlue })
}

// ByMonth buckets issues by the calendar month of their raised date.
// Unparseable or absent timestamps bucket to "Unknown".
func ByMonth(issues []domain.Issue) []MonthlyBucket {
	var order []string
	buckets := make(map[string]*MonthlyBucket)

	for _, issue := range issues {
		month := unknownName
		if raised, ok := domain.ParseDate(issue.RaisedAt); ok {
			month = monthNames[raised.Month()-1]
		}
		bucket, seen := buckets[month]
		if !seen {
			bucket = &MonthlyBucket{Month: month}
			buckets[month] = bucket
			order = append(order, month)
		}
		bucket.Total++
		if domain.Resolved(issue) {
			bucket.Closed++
		} else {
			bucket.Open++
		}
	}

	out := make([]MonthlyBucket, 0, len(order))
	for _, month := range order {
		out = append(out, *buckets[month])
	}
	return out
}

// ByAssigneeIssueType builds the stacked series of issue types per
// assignee. Defaults: "Unassigned" assignee, "Unknown" issue type.
func ByAssigneeIssueType(issues []domain.Issue) StackedSeries {
	var assignees, issueTypes []string
	counts := make(map[string]map[string]int)

	for _, issue := range issues {
		assignee := orUnassigned(issue.AssignedTo)
		issueType := orUnknown(issue.IssueDescription)

		if _, seen := counts[assignee]; !seen {
			counts[assignee] = make(map[string]int)
			assignees = append(assignees, assignee)
		}
		if !containsString(issueTypes, issueType) {
			issueTypes = append(issueTypes, issueType)
		}
		counts[assignee][issueType]++
	}

	series := StackedSeries{Assignees: assignees}
	for i, issueType := range issueTypes {
		dataset := StackedDataset{
			Label: issueType,
			Data:  make([]int, len(assignees)),
			Color: stackPalette[i%len(stackPalette)],
		}
		for j, assignee := range assignees {
			dataset.Data[j] = counts[assignee][issueType]
		}
		series.Datasets = append(series.Datasets, dataset)
	}
	return series
}

// OldestOpenPerAssignee finds, for each assignee, the earliest-raised
// issue that is not resolved (binary check) and has a parseable raised
// date. Age is whole days relative to now. Ties keep the first issue
// encountered.
func OldestOpenPerAssignee(issues []domain.Issue, now time.Time) []OldestIssue {
	var order []string
	oldest := make(map[string]domain.Issue)
	raisedAt := make(map[string]time.Time)

	for _, issue := range issues {
		if domain.Resolved(issue) {
			continue
		}
		raised, ok := domain.ParseDate(issue.RaisedAt)
		if !ok {
			continue
		}
		assignee := orUnassigned(issue.AssignedTo)
		current, seen := raisedAt[assignee]
		if !seen {
			order = append(order, assignee)
		}
		if !seen || raised.Before(current) {
			oldest[assignee] = issue
			raisedAt[assignee] = raised
		}
	}

	out := make([]OldestIssue, 0, len(order))
	for _, assignee := range order {
		out = append(out, OldestIssue{
			Assignee: assignee,
			Issue:    oldest[assignee],
			AgeDays:  domain.AgeDays(raisedAt[assignee], now),
		})
	}
	return out
}

func countBy(issues []domain.Issue, key func(domain.Issue) string, color func(string) string) []SeriesPoint {
	var order []string
	counts := make(map[string]int)
	for _, issue := range issues {
		label := key(issue)
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	out := make([]SeriesPoint, 0, len(order))
	for _, label := range order {
		out = append(out, SeriesPoint{Label: label, Count: counts[label], Color: color(label)})
	}
	return out
}

func priorityColor(label string) string {
	switch domain.PriorityBucket(label) {
	case "high":
		return colorRed
	case "medium":
		return colorAmber
	case "low":
		return colorGreen
	default:
		return colorGray
	}
}

func orUnknown(value string) string {
	if value == "" {
		return unknownName
	}
	return value
}

func orUnassigned(value string) string {
	if value == "" {
		return "Unassigned"
	}
	return value
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
