package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

func TestByPriority(t *testing.T) {
	issues := []domain.Issue{
		{Priority: "High"},
		{Priority: "Low"},
		{Priority: "High"},
		{Priority: ""},
		{Priority: "P1"},
	}

	series := ByPriority(issues)
	require.Equal(t, []SeriesPoint{
		{Label: "High", Count: 2, Color: colorRed},
		{Label: "Low", Count: 1, Color: colorGreen},
		{Label: "Unknown", Count: 1, Color: colorGray},
		{Label: "P1", Count: 1, Color: colorGray},
	}, series)
}

func TestByCity(t *testing.T) {
	issues := []domain.Issue{
		{City: "Pune"},
		{City: "Mumbai"},
		{City: "Pune"},
		{City: ""},
	}

	series := ByCity(issues)
	require.Len(t, series, 3)
	assert.Equal(t, "Pune", series[0].Label)
	assert.Equal(t, 2, series[0].Count)
	assert.Equal(t, "Mumbai", series[1].Label)
	assert.Equal(t, "Unknown", series[2].Label)
}

func TestByMonth(t *testing.T) {
	issues := []domain.Issue{
		{RaisedAt: "2025-01-15", ResolvedFlag: "N"},
		{RaisedAt: "2025-01-20", ResolvedFlag: "Y"},
		{RaisedAt: "2025-03-02", ResolvedFlag: "N"},
		{RaisedAt: "not a date", ResolvedFlag: "N"},
		// "true" counts as open here: the monthly trend uses the binary
		// yes/y check, not the display classifier.
		{RaisedAt: "2025-03-09", ResolvedFlag: "true"},
	}

	buckets := ByMonth(issues)
	require.Equal(t, []MonthlyBucket{
		{Month: "Jan", Total: 2, Open: 1, Closed: 1},
		{Month: "Mar", Total: 2, Open: 2, Closed: 0},
		{Month: "Unknown", Total: 1, Open: 1, Closed: 0},
	}, buckets)
}

func TestByAssigneeIssueType(t *testing.T) {
	issues := []domain.Issue{
		{AssignedTo: "Ravi", IssueDescription: "Engine"},
		{AssignedTo: "Priya", IssueDescription: "Brakes"},
		{AssignedTo: "Ravi", IssueDescription: "Brakes"},
		{AssignedTo: "", IssueDescription: ""},
	}

	series := ByAssigneeIssueType(issues)
	require.Equal(t, []string{"Ravi", "Priya", "Unassigned"}, series.Assignees)
	require.Len(t, series.Datasets, 3)

	assert.Equal(t, "Engine", series.Datasets[0].Label)
	assert.Equal(t, []int{1, 0, 0}, series.Datasets[0].Data)
	assert.Equal(t, "Brakes", series.Datasets[1].Label)
	assert.Equal(t, []int{1, 1, 0}, series.Datasets[1].Data)
	assert.Equal(t, "Unknown", series.Datasets[2].Label)
	assert.Equal(t, []int{0, 0, 1}, series.Datasets[2].Data)

	// Colors cycle through the palette in dataset order.
	assert.Equal(t, stackPalette[0], series.Datasets[0].Color)
	assert.Equal(t, stackPalette[1], series.Datasets[1].Color)
}

func TestOldestOpenPerAssignee(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []domain.Issue{
		{IssueID: "1", AssignedTo: "Bob", RaisedAt: "2025-03-01", ResolvedFlag: "N"},
		{IssueID: "2", AssignedTo: "Bob", RaisedAt: "2025-01-01", ResolvedFlag: "N"},
		{IssueID: "3", AssignedTo: "Bob", RaisedAt: "2024-12-01", ResolvedFlag: "Y"},
		{IssueID: "4", AssignedTo: "Alice", RaisedAt: "garbage", ResolvedFlag: "N"},
		{IssueID: "5", AssignedTo: "", RaisedAt: "2025-05-20", ResolvedFlag: "no"},
	}

	oldest := OldestOpenPerAssignee(issues, now)
	require.Len(t, oldest, 2)

	assert.Equal(t, "Bob", oldest[0].Assignee)
	assert.Equal(t, "2", oldest[0].Issue.IssueID)
	assert.Equal(t, 151, oldest[0].AgeDays)

	assert.Equal(t, "Unassigned", oldest[1].Assignee)
	assert.Equal(t, "5", oldest[1].Issue.IssueID)
}

func TestOldestOpenPerAssigneeTieKeepsFirst(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	issues := []domain.Issue{
		{IssueID: "first", AssignedTo: "Bob", RaisedAt: "2025-01-01", ResolvedFlag: "N"},
		{IssueID: "second", AssignedTo: "Bob", RaisedAt: "2025-01-01", ResolvedFlag: "N"},
	}

	oldest := OldestOpenPerAssignee(issues, now)
	require.Len(t, oldest, 1)
	assert.Equal(t, "first", oldest[0].Issue.IssueID)
}
