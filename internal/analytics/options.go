package analytics

import (
	"sort"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// FilterOptions lists the selectable values for each dropdown, computed
// from the full canonical set so filtering never hides options.
type FilterOptions struct {
	Cities     []string `json:"cities"`
	Clients    []string `json:"clients"`
	Assignees  []string `json:"assignees"`
	Priorities []string `json:"priorities"`
	Statuses   []string `json:"statuses"`
}

// Options extracts distinct, sorted, non-empty values per dimension.
func Options(issues []domain.Issue) FilterOptions {
	return FilterOptions{
		Cities:     distinct(issues, func(i domain.Issue) string { return i.City }),
		Clients:    distinct(issues, func(i domain.Issue) string { return i.Client }),
		Assignees:  distinct(issues, func(i domain.Issue) string { return i.AssignedTo }),
		Priorities: distinct(issues, func(i domain.Issue) string { return i.Priority }),
		Statuses: []string{
			string(domain.StatusOpen),
			string(domain.StatusClosed),
			string(domain.StatusOnHold),
		},
	}
}

func distinct(issues []domain.Issue, field func(domain.Issue) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, issue := range issues {
		value := field(issue)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
