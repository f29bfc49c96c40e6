package analytics

import (
	"errors"
	"strings"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// ErrNothingToExport is returned for an empty filtered set; callers are
// expected to reject the export before ever reaching the serializer.
var ErrNothingToExport = errors.New("nothing to export")

// ToCSV serializes issues back to delimited text. The header row uses
// the canonical field names in record order; every value is wrapped in
// double quotes with internal quotes doubled. Lines are joined with \n.
func ToCSV(issues []domain.Issue) (string, error) {
	if len(issues) == 0 {
		return "", ErrNothingToExport
	}

	lines := make([]string, 0, len(issues)+1)
	lines = append(lines, quoteLine(domain.FieldNames()))
	for _, issue := range issues {
		lines = append(lines, quoteLine(issue.Values()))
	}
	return strings.Join(lines, "\n"), nil
}

func quoteLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
