package ingest

import "strings"

// Header candidate lists for each canonical field, in resolution
// priority order. The feed's column names drift between exports, so
// each field accepts several spellings.
var (
	issueIDColumns  = []string{"Issue ID", "ID", "IssueID", "Issue_ID"}
	clientColumns   = []string{"Client", "Customer", "Company", "Client Name"}
	cityColumns     = []string{"City", "Location", "Place"}
	issueColumns    = []string{"Issue", "Problem", "Description", "Issue Description"}
	vehicleColumns  = []string{"Vehicle Number", "Vehicle No", "VehicleNumber", "Vehicle", "Vehicle_Number", "VehicleNo"}
	priorityColumns = []string{"Priority (High/Med/Low)", "Priority", "Severity"}
	assigneeColumns = []string{"Assigned To", "Assignee", "Assigned", "Owner"}
	raisedColumns   = []string{"Timestamp Issues Raised", "Date", "Created Date", "Timestamp"}
	resolvedColumns = []string{"Resolved Y/N", "Resolved", "Status", "Resolution Status"}
	followUpColumns = []string{"Next Follow Up Date", "Follow Up", "Next Follow Up", "Follow Up Date"}
)

// Row is one parsed record keyed by header name. Keys preserve header
// order so the case-insensitive and substring fallbacks below stay
// deterministic.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow zips headers with field values. Missing trailing values default
// to "". Extra values beyond the header width are dropped.
func NewRow(headers, fields []string) Row {
	row := Row{
		keys:   headers,
		values: make(map[string]string, len(headers)),
	}
	for i, header := range headers {
		if i < len(fields) {
			row.values[header] = fields[i]
		} else {
			row.values[header] = ""
		}
	}
	return row
}

// Get returns the raw value for an exact header name.
func (r Row) Get(key string) string {
	return r.values[key]
}

// Resolve returns the value for the first candidate name that matches a
// row key with a non-empty value. Tiers per candidate: exact match,
// case-insensitive match, then substring match in either direction.
// Within a tier the first matching key in header order wins. Returns ""
// when nothing matches.
func (r Row) Resolve(candidates []string) string {
	for _, candidate := range candidates {
		if value := strings.TrimSpace(r.values[candidate]); value != "" {
			return value
		}
		if value := r.matchFold(candidate); value != "" {
			return value
		}
		if value := r.matchSubstring(candidate); value != "" {
			return value
		}
	}
	return ""
}

func (r Row) matchFold(candidate string) string {
	for _, key := range r.keys {
		if strings.EqualFold(key, candidate) {
			if value := strings.TrimSpace(r.values[key]); value != "" {
				return value
			}
		}
	}
	return ""
}

func (r Row) matchSubstring(candidate string) string {
	lowerCandidate := strings.ToLower(candidate)
	for _, key := range r.keys {
		lowerKey := strings.ToLower(key)
		if strings.Contains(lowerCandidate, lowerKey) || strings.Contains(lowerKey, lowerCandidate) {
			if value := strings.TrimSpace(r.values[key]); value != "" {
				return value
			}
		}
	}
	return ""
}
