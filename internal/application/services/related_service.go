package services

import (
	"context"
	"fmt"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/domain/repositories"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
)

// relatedScoreThreshold is the minimum blended name+city score for a
// candidate to count as a related organization.
const relatedScoreThreshold = 70

// RelatedService expands an NPI to its organizationally related NPIs:
// corporate siblings and subparts discovered through shared legal business
// and parent organization names.
type RelatedService struct {
	registry   repositories.OrganizationRegistry
	classifier *ClassificationService
	matcher    *MatchingService
}

// NewRelatedService creates a new related-entity service
func NewRelatedService(registry repositories.OrganizationRegistry, classifier *ClassificationService, matcher *MatchingService) *RelatedService {
	return &RelatedService{
		registry:   registry,
		classifier: classifier,
		matcher:    matcher,
	}
}

// GetRelated returns the deduplicated related NPIs for a 10-digit NPI.
// Failure of the anchor lookup is fatal; failures of the per-name expansion
// queries are swallowed so a single bad query cannot abort the expansion.
func (s *RelatedService) GetRelated(ctx context.Context, npi string) (*entities.RelatedResult, error) {
	clean, ok := cleanNPI(npi)
	if !ok {
		return nil, apperrors.NewValidationError("provide a valid 10-digit NPI")
	}

	records, err := s.registry.GetByNPI(ctx, clean)
	if err != nil {
		return nil, apperrors.NewExternalError("NPPES lookup failed", err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no NPPES match for NPI %s", clean))
	}

	anchor := records[0]
	candidates := s.expandByNames(ctx, anchor)

	related := make([]entities.RelatedFacility, 0, len(candidates))
	for _, cand := range candidates {
		score := s.matcher.BlendedScore(cand.LegalName, anchor.LegalName, cand.PrimaryCity, anchor.PrimaryCity)
		if score < relatedScoreThreshold {
			continue
		}
		related = append(related, entities.RelatedFacility{
			NPI:       cand.NPI,
			Name:      cand.LegalName,
			Kinds:     s.classifier.Classify(cand.Taxonomies),
			City:      cand.PrimaryCity,
			IsSubpart: cand.IsSubpart,
		})
	}

	return &entities.RelatedResult{
		QueryNPI: clean,
		Related:  related,
		Summary:  fmt.Sprintf("Found %d related NPIs for %s.", len(related), clean),
	}, nil
}

// expandByNames issues one name search per distinct non-empty value among
// the anchor's legal business name and parent organization name, then merges
// the results deduplicated by NPI, first occurrence winning.
func (s *RelatedService) expandByNames(ctx context.Context, anchor entities.OrganizationRecord) []entities.OrganizationRecord {
	queries := make([]string, 0, 2)
	if anchor.LegalName != "" {
		queries = append(queries, anchor.LegalName)
	}
	if anchor.ParentOrganizationName != "" && anchor.ParentOrganizationName != anchor.LegalName {
		queries = append(queries, anchor.ParentOrganizationName)
	}

	logger := observability.LoggerFromContext(ctx)

	seen := make(map[string]struct{})
	var merged []entities.OrganizationRecord
	for _, q := range queries {
		results, err := s.registry.SearchByName(ctx, q, "")
		if err != nil {
			// Best-effort expansion: skip this query, keep the rest.
			logger.Warn().Err(err).Str("query", q).Msg("related-NPI name search failed")
			continue
		}
		for _, r := range results {
			if r.NPI == "" {
				continue
			}
			if _, dup := seen[r.NPI]; dup {
				continue
			}
			seen[r.NPI] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}
