package analytics

import (
	"time"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// AgedIssue pairs an issue with its age in whole days.
type AgedIssue struct {
	Issue   domain.Issue `json:"issue"`
	AgeDays int          `json:"age_days"`
}

// AgingGroup holds one assignee's long-unresolved issues, in original
// encounter order. There is no secondary sort by age.
type AgingGroup struct {
	Assignee string      `json:"assignee"`
	Issues   []AgedIssue `json:"issues"`
}

// UnresolvedAging builds the aging view: issues that are unresolved by
// the binary check, have a parseable raised date, and are at least
// minAgeDays old. Issues with unparseable dates are excluded even when
// unresolved. Groups appear in first-encounter order of assignee.
func UnresolvedAging(issues []domain.Issue, now time.Time, minAgeDays int) (int, []AgingGroup) {
	var order []string
	groups := make(map[string]*AgingGroup)
	total := 0

	for _, issue := range issues {
		if domain.Resolved(issue) {
			continue
		}
		raised, ok := domain.ParseDate(issue.RaisedAt)
		if !ok {
			continue
		}
		age := domain.AgeDays(raised, now)
		if age < minAgeDays {
			continue
		}

		assignee := orUnassigned(issue.AssignedTo)
		group, seen := groups[assignee]
		if !seen {
			group = &AgingGroup{Assignee: assignee}
			groups[assignee] = group
			order = append(order, assignee)
		}
		group.Issues = append(group.Issues, AgedIssue{Issue: issue, AgeDays: age})
		total++
	}

	out := make([]AgingGroup, 0, len(order))
	for _, assignee := range order {
		out = append(out, *groups[assignee])
	}
	return total, out
}
