package analytics

import (
	"strings"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// Apply returns the order-preserving subsequence of issues matching
// every dimension of criteria. All dimensions are reevaluated on every
// pass; applying the same criteria twice is a no-op. Default criteria
// return the input unchanged in content.
func Apply(issues []domain.Issue, criteria domain.FilterCriteria) []domain.Issue {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))

	filtered := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if search != "" && !strings.Contains(issue.SearchText(), search) {
			continue
		}
		if !matchesSelector(criteria.City, issue.City) {
			continue
		}
		if !matchesSelector(criteria.Client, issue.Client) {
			continue
		}
		if !matchesSelector(criteria.AssignedTo, issue.AssignedTo) {
			continue
		}
		if !matchesSelector(criteria.Priority, issue.Priority) {
			continue
		}
		if criteria.Status != "" && criteria.Status != domain.FilterAll &&
			!domain.MatchesStatusFilter(issue, domain.Status(criteria.Status)) {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

// matchesSelector applies one dropdown selector: "All" (or unset) means
// no constraint, anything else must match the field exactly,
// case-sensitively.
func matchesSelector(selector, value string) bool {
	if selector == "" || selector == domain.FilterAll {
		return true
	}
	return selector == value
}
