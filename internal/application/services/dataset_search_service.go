package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/domain/providers"
	"github.com/hlh-health/facility-registry/internal/domain/repositories"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
	"github.com/hlh-health/facility-registry/pkg/utils"
)

const (
	// searchScoreThreshold is the minimum similarity for a CCN search hit.
	searchScoreThreshold = 60
	// searchResultLimit caps how many matches a CCN search returns.
	searchResultLimit = 5
)

// DatasetSearchService resolves free-text facility names to CCNs by fuzzy
// search over the CMS hospital dataset snapshot.
type DatasetSearchService struct {
	source   repositories.FacilityDatasetSource
	snapshot providers.DatasetSnapshot
	matcher  *MatchingService
	metrics  *observability.Metrics
}

// NewDatasetSearchService creates a new dataset search service
func NewDatasetSearchService(source repositories.FacilityDatasetSource, snapshot providers.DatasetSnapshot, matcher *MatchingService) *DatasetSearchService {
	return &DatasetSearchService{
		source:   source,
		snapshot: snapshot,
		matcher:  matcher,
	}
}

// WithMetrics enables snapshot-fill instrumentation.
func (s *DatasetSearchService) WithMetrics(metrics *observability.Metrics) *DatasetSearchService {
	s.metrics = metrics
	return s
}

// SearchByName ranks dataset rows against the given facility name and
// returns the top matches above the similarity threshold. An optional state
// filter narrows the working set before ranking, so an out-of-state row can
// never be returned even when it would score higher. Finding nothing in a
// loaded dataset is a success with zero matches, not an error.
func (s *DatasetSearchService) SearchByName(ctx context.Context, name, state string) (*entities.CCNSearchResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("provide a hospital name")
	}

	rows, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}

	stateFilter := utils.NormalizeStateCode(state)
	if stateFilter != "" {
		filtered := make([]entities.FacilityDatasetRow, 0, len(rows))
		for _, row := range rows {
			if utils.NormalizeStateCode(row.State) == stateFilter {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	ranked := s.matcher.RankRows(name, rows, searchResultLimit, searchScoreThreshold)

	matches := make([]entities.CCNMatch, 0, len(ranked))
	for _, m := range ranked {
		matches = append(matches, entities.CCNMatch{
			CCN:          m.Row.FacilityID,
			Name:         m.Row.FacilityName,
			Address:      m.Row.Address,
			City:         m.Row.City,
			State:        m.Row.State,
			Zip:          m.Row.Zip,
			HospitalType: m.Row.HospitalType,
			MatchScore:   m.Score,
		})
	}

	return &entities.CCNSearchResult{
		Matches: matches,
		Summary: searchSummary(name, stateFilter, matches),
	}, nil
}

// loadRows returns the snapshot contents, fetching and populating it on
// first use. A failed or empty fetch leaves the snapshot empty so the next
// request tries again; until then the dataset is unavailable.
func (s *DatasetSearchService) loadRows(ctx context.Context) ([]entities.FacilityDatasetRow, error) {
	if rows := s.snapshot.Rows(); len(rows) > 0 {
		return rows, nil
	}

	fetched, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, apperrors.NewUnavailableError("CMS hospital dataset could not be loaded", err)
	}
	if len(fetched) == 0 {
		return nil, apperrors.NewUnavailableError("CMS hospital dataset could not be loaded", nil)
	}

	s.snapshot.Fill(fetched)
	observability.RecordSnapshotFill(ctx, s.metrics, len(fetched))
	return fetched, nil
}

func searchSummary(name, stateFilter string, matches []entities.CCNMatch) string {
	if len(matches) == 0 {
		msg := fmt.Sprintf("No hospitals found matching %q", name)
		if stateFilter != "" {
			msg += fmt.Sprintf(" in state %s", stateFilter)
		}
		return msg + "."
	}
	top := matches[0]
	return fmt.Sprintf("Found %d matches. Top match: %s (CCN: %s) in %s, %s.",
		len(matches), top.Name, top.CCN, top.City, top.State)
}
