package domain

import "strings"

// Status enumerates derived lifecycle states for issues. A status is
// computed on demand from the resolved flag and follow-up date and is
// never stored on the record.
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
	StatusOnHold Status = "On Hold"
)

// Issue is the canonical record produced by ingest. All fields are raw
// text; a missing source column is represented as "" rather than being
// absent. Client is guaranteed non-empty by the normalizer gate.
type Issue struct {
	IssueID          string `json:"issue_id"`
	Client           string `json:"client"`
	City             string `json:"city"`
	IssueDescription string `json:"issue_description"`
	VehicleNumber    string `json:"vehicle_number"`
	Priority         string `json:"priority"`
	AssignedTo       string `json:"assigned_to"`
	RaisedAt         string `json:"raised_at"`
	ResolvedFlag     string `json:"resolved_flag"`
	NextFollowUp     string `json:"next_follow_up"`
}

// FieldNames returns the canonical column headers in record field order.
// Export and table rendering both rely on this ordering.
func FieldNames() []string {
	return []string{
		"Issue ID",
		"Client",
		"City",
		"Issue",
		"Vehicle Number",
		"Priority (High/Med/Low)",
		"Assigned To",
		"Timestamp Issues Raised",
		"Resolved Y/N",
		"Next Follow Up Date",
	}
}

// Values returns the field values in the same order as FieldNames.
func (i Issue) Values() []string {
	return []string{
		i.IssueID,
		i.Client,
		i.City,
		i.IssueDescription,
		i.VehicleNumber,
		i.Priority,
		i.AssignedTo,
		i.RaisedAt,
		i.ResolvedFlag,
		i.NextFollowUp,
	}
}

// SearchText joins every field value with spaces, lowercased, for
// free-text matching. No field is excluded.
func (i Issue) SearchText() string {
	return strings.ToLower(strings.Join(i.Values(), " "))
}

func normalizedFlag(i Issue) string {
	return strings.ToLower(strings.TrimSpace(i.ResolvedFlag))
}

// Classify derives the display status. The resolved check runs first and
// is unconditional: an issue marked resolved is Closed even when a
// follow-up date is still set.
func Classify(i Issue) Status {
	switch normalizedFlag(i) {
	case "yes", "y", "true", "closed":
		return StatusClosed
	}
	if strings.TrimSpace(i.NextFollowUp) != "" {
		return StatusOnHold
	}
	return StatusOpen
}

// Resolved reports the binary resolved check used by the monthly trend,
// oldest-issue and aging views. Deliberately narrower than Classify: it
// only honors the yes/y tokens, matching the original dashboard.
func Resolved(i Issue) bool {
	flag := normalizedFlag(i)
	return flag == "yes" || flag == "y"
}

// MatchesStatusFilter reports whether the issue passes the status
// dropdown predicate. This predicate is narrower than Classify (it does
// not recognize true/false/closed/open tokens); the two are kept as
// separate functions on purpose since unifying them would change
// observable filter results. An unrecognized status value matches
// everything.
func MatchesStatusFilter(i Issue, status Status) bool {
	flag := normalizedFlag(i)
	followUp := strings.TrimSpace(i.NextFollowUp)
	switch status {
	case StatusOpen:
		return (flag == "no" || flag == "n" || flag == "") && followUp == ""
	case StatusClosed:
		return flag == "yes" || flag == "y"
	case StatusOnHold:
		return (flag == "no" || flag == "n") && followUp != ""
	default:
		return true
	}
}

// PriorityBucket classifies a free-text priority label by substring.
func PriorityBucket(priority string) string {
	lower := strings.ToLower(priority)
	switch {
	case strings.Contains(lower, "high"):
		return "high"
	case strings.Contains(lower, "med"):
		return "medium"
	case strings.Contains(lower, "low"):
		return "low"
	default:
		return "unclassified"
	}
}
