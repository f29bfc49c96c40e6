package ingest

import (
	"errors"
	"strings"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// ErrNoRecords signals a document that parsed but yielded zero usable
// issues; callers treat it like a fetch failure and fall back.
var ErrNoRecords = errors.New("no qualifying records in document")

// ErrTooShort signals a document without at least a header and one row.
var ErrTooShort = errors.New("document too short")

// placeholderClients are spreadsheet junk values that disqualify a row.
var placeholderClients = map[string]struct{}{
	"undefined": {},
	"null":      {},
	"unknown":   {},
	"n/a":       {},
}

func usableClient(value string) bool {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= 1 {
		return false
	}
	_, placeholder := placeholderClients[strings.ToLower(trimmed)]
	return !placeholder
}

// Normalize converts header and row data into canonical issues. Rows
// without a usable client value are discarded entirely; they never
// become issues and are not counted anywhere. Output preserves input
// row order, with no deduplication.
func Normalize(headers []string, rows [][]string) []domain.Issue {
	issues := make([]domain.Issue, 0, len(rows))
	for _, fields := range rows {
		row := NewRow(headers, fields)

		client := row.Resolve(clientColumns)
		if !usableClient(client) {
			continue
		}

		issues = append(issues, domain.Issue{
			IssueID:          row.Resolve(issueIDColumns),
			Client:           client,
			City:             row.Resolve(cityColumns),
			IssueDescription: row.Resolve(issueColumns),
			VehicleNumber:    row.Resolve(vehicleColumns),
			Priority:         row.Resolve(priorityColumns),
			AssignedTo:       row.Resolve(assigneeColumns),
			RaisedAt:         row.Resolve(raisedColumns),
			ResolvedFlag:     row.Resolve(resolvedColumns),
			NextFollowUp:     row.Resolve(followUpColumns),
		})
	}
	return issues
}

// ParseDocument tokenizes a whole CSV document and normalizes it into
// issues. Blank lines are skipped. Returns ErrTooShort for documents
// without data rows and ErrNoRecords when every row fails the client
// gate.
func ParseDocument(text string) ([]domain.Issue, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, ErrTooShort
	}

	headers := ParseLine(lines[0])
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, ParseLine(line))
	}

	issues := Normalize(headers, rows)
	if len(issues) == 0 {
		return nil, ErrNoRecords
	}
	return issues, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
