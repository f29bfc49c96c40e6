package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

func TestIssueStoreSnapshotBeforeLoad(t *testing.T) {
	store := NewIssueStore()
	_, loaded := store.Snapshot()
	assert.False(t, loaded)
	assert.Zero(t, store.Len())
}

func TestIssueStoreReplaceAndSnapshot(t *testing.T) {
	store := NewIssueStore()
	store.Replace(domain.Dataset{
		Issues:    []domain.Issue{{IssueID: "1", Client: "Acme"}},
		Source:    domain.SourceLive,
		FetchedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	snapshot, loaded := store.Snapshot()
	require.True(t, loaded)
	assert.Equal(t, domain.SourceLive, snapshot.Source)
	require.Len(t, snapshot.Issues, 1)
	assert.Equal(t, 1, store.Len())
}

func TestIssueStoreSnapshotIsIsolatedFromReplace(t *testing.T) {
	store := NewIssueStore()
	store.Replace(domain.Dataset{
		Issues: []domain.Issue{{IssueID: "1", Client: "Acme"}},
		Source: domain.SourceLive,
	})

	snapshot, _ := store.Snapshot()
	store.Replace(domain.Dataset{
		Issues: []domain.Issue{{IssueID: "2", Client: "Globex"}},
		Source: domain.SourceDemo,
	})

	// The earlier snapshot still reflects the dataset it was taken from.
	require.Len(t, snapshot.Issues, 1)
	assert.Equal(t, "1", snapshot.Issues[0].IssueID)
}
