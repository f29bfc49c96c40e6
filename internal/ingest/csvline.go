package ingest

import "strings"

// ParseLine tokenizes one line of comma-delimited text into trimmed
// field values. A field may be wrapped in double quotes when the quote
// sits on a field boundary; quoted fields may contain commas. Doubled
// quotes inside a quoted field are not unescaped; the export side still
// doubles quotes, so the asymmetry is confined to re-ingesting our own
// exports. Tokenization is best effort and never fails: malformed input
// yields whatever fields can be recovered.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if !inQuotes && (i == 0 || line[i-1] == ',') {
				inQuotes = true
			} else if inQuotes && (i == len(line)-1 || line[i+1] == ',') {
				inQuotes = false
			} else {
				current.WriteByte(ch)
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
