package ingest

import (
	"time"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// DemoIssues returns the built-in fallback dataset served when neither
// the live feed nor the snapshot cache can produce records. Dates are
// derived from now so the trend and aging views stay illustrative.
func DemoIssues(now time.Time) []domain.Issue {
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}
	return []domain.Issue{
		{
			IssueID:          "DEMO-1",
			Client:           "Acme Logistics",
			City:             "Pune",
			IssueDescription: "Engine overheating",
			VehicleNumber:    "MH12AB1234",
			Priority:         "High",
			AssignedTo:       "Ravi",
			RaisedAt:         day(32),
			ResolvedFlag:     "N",
			NextFollowUp:     day(-2),
		},
		{
			IssueID:          "DEMO-2",
			Client:           "Bharat Freight",
			City:             "Mumbai",
			IssueDescription: "Brake pad wear",
			VehicleNumber:    "MH01CD5678",
			Priority:         "Medium",
			AssignedTo:       "Priya",
			RaisedAt:         day(25),
			ResolvedFlag:     "N",
			NextFollowUp:     "",
		},
		{
			IssueID:          "DEMO-3",
			Client:           "Acme Logistics",
			City:             "Pune",
			IssueDescription: "GPS unit offline",
			VehicleNumber:    "MH12EF9012",
			Priority:         "Low",
			AssignedTo:       "Ravi",
			RaisedAt:         day(12),
			ResolvedFlag:     "Y",
			NextFollowUp:     "",
		},
		{
			IssueID:          "DEMO-4",
			Client:           "Sunrise Couriers",
			City:             "Nashik",
			IssueDescription: "Tyre puncture",
			VehicleNumber:    "MH15GH3456",
			Priority:         "Low",
			AssignedTo:       "Amit",
			RaisedAt:         day(5),
			ResolvedFlag:     "Yes",
			NextFollowUp:     "",
		},
		{
			IssueID:          "DEMO-5",
			Client:           "Bharat Freight",
			City:             "Mumbai",
			IssueDescription: "Engine overheating",
			VehicleNumber:    "MH01IJ7890",
			Priority:         "High",
			AssignedTo:       "",
			RaisedAt:         day(2),
			ResolvedFlag:     "No",
			NextFollowUp:     "",
		},
	}
}
