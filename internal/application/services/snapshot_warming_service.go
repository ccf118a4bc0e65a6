package services

import (
	"context"

	"github.com/hlh-health/facility-registry/internal/domain/providers"
	"github.com/hlh-health/facility-registry/internal/domain/repositories"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
	"github.com/hlh-health/facility-registry/pkg/retry"
)

// SnapshotWarmingService optionally fills the dataset snapshot at startup so
// the first CCN search does not pay for the bulk download. Warming is
// best-effort: the search path keeps its own load-on-first-use behavior, so
// a failed warm only delays the first request.
type SnapshotWarmingService struct {
	source   repositories.FacilityDatasetSource
	snapshot providers.DatasetSnapshot
}

// NewSnapshotWarmingService creates a new snapshot warming service
func NewSnapshotWarmingService(source repositories.FacilityDatasetSource, snapshot providers.DatasetSnapshot) *SnapshotWarmingService {
	return &SnapshotWarmingService{
		source:   source,
		snapshot: snapshot,
	}
}

// Warm fetches the dataset with backoff and fills the snapshot. Runs outside
// any request path; request-path fetches never retry.
func (s *SnapshotWarmingService) Warm(ctx context.Context) error {
	if s.snapshot.Loaded() {
		return nil
	}

	logger := observability.GetLogger()
	logger.Info().Msg("warming facility dataset snapshot")

	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		rows, fetchErr := s.source.FetchAll(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		s.snapshot.Fill(rows)
		return nil
	})
	if err != nil {
		logger.Warn().Err(err).Msg("snapshot warming failed; dataset will load on first search")
		return err
	}

	logger.Info().Int("rows", len(s.snapshot.Rows())).Msg("facility dataset snapshot warmed")
	return nil
}
