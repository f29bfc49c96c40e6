package events

import (
	"time"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDatasetRefreshed     EventType = "dataset_refreshed"
	EventDatasetRefreshFailed EventType = "dataset_refresh_failed"
	EventExportGenerated      EventType = "export_generated"
)

// Event represents a lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DatasetRefreshedPayload describes one completed refresh cycle.
type DatasetRefreshedPayload struct {
	Source   domain.DatasetSource `json:"source"`
	Records  int                  `json:"records"`
	Duration time.Duration        `json:"duration"`
	Token    uint64               `json:"token"`
}

// DatasetRefreshFailedPayload describes a cycle that produced no
// dataset, including one superseded by a newer cycle.
type DatasetRefreshFailedPayload struct {
	Reason string `json:"reason"`
	Token  uint64 `json:"token"`
}

// ExportGeneratedPayload describes a served CSV export.
type ExportGeneratedPayload struct {
	FileName string `json:"file_name"`
	Records  int    `json:"records"`
}
