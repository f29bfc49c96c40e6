package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		resolved string
		followUp string
		want     Status
	}{
		{"yes closes", "Yes", "", StatusClosed},
		{"y closes", "y", "", StatusClosed},
		{"true closes", "TRUE", "", StatusClosed},
		{"closed token closes", "Closed", "", StatusClosed},
		{"resolved wins over follow-up", "Y", "2025-06-01", StatusClosed},
		{"follow-up means on hold", "N", "2025-06-01", StatusOnHold},
		{"unknown flag with follow-up is on hold", "maybe", "2025-06-01", StatusOnHold},
		{"no flag no follow-up is open", "", "", StatusOpen},
		{"n is open", "n", "", StatusOpen},
		{"untrimmed flag is normalized", "  yes  ", "", StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := Issue{ResolvedFlag: tt.resolved, NextFollowUp: tt.followUp}
			assert.Equal(t, tt.want, Classify(issue))
		})
	}
}

func TestMatchesStatusFilter(t *testing.T) {
	tests := []struct {
		name     string
		resolved string
		followUp string
		status   Status
		want     bool
	}{
		{"open matches blank flag", "", "", StatusOpen, true},
		{"open matches n", "n", "", StatusOpen, true},
		{"open rejects follow-up", "n", "2025-06-01", StatusOpen, false},
		{"closed matches y", "Y", "", StatusClosed, true},
		{"closed does not recognize true token", "true", "", StatusClosed, false},
		{"closed does not recognize closed token", "closed", "", StatusClosed, false},
		{"on hold needs explicit no", "maybe", "2025-06-01", StatusOnHold, false},
		{"on hold matches n with follow-up", "N", "2025-06-01", StatusOnHold, true},
		{"unknown status matches everything", "whatever", "", Status("Escalated"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := Issue{ResolvedFlag: tt.resolved, NextFollowUp: tt.followUp}
			assert.Equal(t, tt.want, MatchesStatusFilter(issue, tt.status))
		})
	}
}

// The display classifier and filter predicate are deliberately
// divergent; for the common literal inputs they must still agree.
func TestClassifierAndFilterAgreeOnLiteralTokens(t *testing.T) {
	issue := Issue{ResolvedFlag: "N", NextFollowUp: "2025-06-01"}
	assert.Equal(t, StatusOnHold, Classify(issue))
	assert.True(t, MatchesStatusFilter(issue, StatusOnHold))

	// "true" is where they drift: Closed for display, invisible to the
	// Closed filter.
	drifted := Issue{ResolvedFlag: "true"}
	assert.Equal(t, StatusClosed, Classify(drifted))
	assert.False(t, MatchesStatusFilter(drifted, StatusClosed))
}

func TestResolved(t *testing.T) {
	assert.True(t, Resolved(Issue{ResolvedFlag: "yes"}))
	assert.True(t, Resolved(Issue{ResolvedFlag: " Y "}))
	assert.False(t, Resolved(Issue{ResolvedFlag: "true"}))
	assert.False(t, Resolved(Issue{ResolvedFlag: "no"}))
	assert.False(t, Resolved(Issue{}))
}

func TestPriorityBucket(t *testing.T) {
	assert.Equal(t, "high", PriorityBucket("High"))
	assert.Equal(t, "high", PriorityBucket("very HIGH!"))
	assert.Equal(t, "medium", PriorityBucket("Med"))
	assert.Equal(t, "medium", PriorityBucket("medium"))
	assert.Equal(t, "low", PriorityBucket("Low priority"))
	assert.Equal(t, "unclassified", PriorityBucket("P1"))
	assert.Equal(t, "unclassified", PriorityBucket(""))
}

func TestSearchTextCoversEveryField(t *testing.T) {
	issue := Issue{
		IssueID:          "42",
		Client:           "Acme",
		City:             "Pune",
		IssueDescription: "Engine",
		VehicleNumber:    "MH12",
		Priority:         "High",
		AssignedTo:       "Ravi",
		RaisedAt:         "2025-01-15",
		ResolvedFlag:     "N",
		NextFollowUp:     "2025-02-01",
	}
	text := issue.SearchText()
	for _, value := range issue.Values() {
		assert.Contains(t, text, strings.ToLower(value))
	}
}
