package cache

import (
	"sync"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/domain/providers"
)

// SnapshotStore is the in-memory implementation of the dataset snapshot.
// The fill follows a check-then-fill pattern: concurrent cold-start callers
// may both fetch the source, but only the first non-empty fill sticks, and
// the source data is identical, so the race is harmless.
type SnapshotStore struct {
	mu   sync.RWMutex
	rows []entities.FacilityDatasetRow
}

// NewSnapshotStore creates an empty snapshot store
func NewSnapshotStore() providers.DatasetSnapshot {
	return &SnapshotStore{}
}

// Rows returns the snapshot contents; empty until the first successful fill
func (s *SnapshotStore) Rows() []entities.FacilityDatasetRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows
}

// Fill populates the snapshot once. Empty input and repeat fills are no-ops,
// keeping the snapshot immutable for the rest of the process lifetime.
func (s *SnapshotStore) Fill(rows []entities.FacilityDatasetRow) {
	if len(rows) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) > 0 {
		return
	}
	s.rows = rows
}

// Loaded reports whether the snapshot has been populated
func (s *SnapshotStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows) > 0
}
