package domain

import "time"

// DatasetSource marks where a snapshot came from, so clients can show a
// degraded-mode indicator instead of silently rendering fallback data.
type DatasetSource string

const (
	SourceLive  DatasetSource = "live"
	SourceCache DatasetSource = "cache"
	SourceDemo  DatasetSource = "demo"
)

// Dataset is one canonical snapshot of the issue set. Snapshots are
// replaced wholesale on refresh; individual issues are never mutated.
type Dataset struct {
	Issues    []Issue
	Source    DatasetSource
	FetchedAt time.Time
}
