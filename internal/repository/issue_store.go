package repository

import (
	"sync"

	"github.com/spec-kit/issue-dashboard/internal/domain"
)

// IssueStore owns the canonical issue set in memory. Refreshes replace
// the whole dataset; readers get defensive copies so a snapshot taken
// before a refresh stays valid while derived views are computed from it.
type IssueStore struct {
	mu      sync.RWMutex
	dataset domain.Dataset
	loaded  bool
}

// NewIssueStore returns an empty store.
func NewIssueStore() *IssueStore {
	return &IssueStore{}
}

// Replace swaps in a new canonical dataset.
func (s *IssueStore) Replace(dataset domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = dataset
	s.loaded = true
}

// Snapshot returns a copy of the current dataset. The second return is
// false before the first refresh has landed.
func (s *IssueStore) Snapshot() (domain.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.Dataset{}, false
	}
	out := s.dataset
	out.Issues = make([]domain.Issue, len(s.dataset.Issues))
	copy(out.Issues, s.dataset.Issues)
	return out, true
}

// Len reports the size of the canonical set.
func (s *IssueStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dataset.Issues)
}
