package analytics

import "github.com/spec-kit/issue-dashboard/internal/domain"

// Summary holds per-status counts for the dashboard cards. Total always
// equals Open + Closed + OnHold and the input length.
type Summary struct {
	Total  int `json:"total"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
	OnHold int `json:"on_hold"`
}

// Summarize reduces issues into per-status counts using the display
// classifier.
func Summarize(issues []domain.Issue) Summary {
	summary := Summary{Total: len(issues)}
	for _, issue := range issues {
		switch domain.Classify(issue) {
		case domain.StatusClosed:
			summary.Closed++
		case domain.StatusOnHold:
			summary.OnHold++
		default:
			summary.Open++
		}
	}
	return summary
}
