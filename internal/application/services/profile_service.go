package services

import (
	"context"
	"fmt"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/infrastructure/observability"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
)

// ProfileService composes the facility classification and the related-NPI
// expansion into one profile.
type ProfileService struct {
	facility *FacilityService
	related  *RelatedService
}

// NewProfileService creates a new profile service
func NewProfileService(facility *FacilityService, related *RelatedService) *ProfileService {
	return &ProfileService{
		facility: facility,
		related:  related,
	}
}

// GetProfile returns the combined facility profile for a 10-digit NPI. A
// failed facility lookup fails the whole operation with that error
// unchanged. A failed related-NPI expansion degrades to a profile carrying
// only the facility data, because the classification alone is independently
// useful.
func (s *ProfileService) GetProfile(ctx context.Context, npi string) (*entities.ProfileResult, error) {
	clean, ok := cleanNPI(npi)
	if !ok {
		return nil, apperrors.NewValidationError("provide a valid 10-digit NPI")
	}

	info, err := s.facility.GetFacilityType(ctx, clean)
	if err != nil {
		return nil, err
	}

	result := &entities.ProfileResult{Facility: info.Facility}

	rel, err := s.related.GetRelated(ctx, clean)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("npi", clean).
			Msg("related-NPI expansion failed; returning facility data only")
		result.Summary = fmt.Sprintf("%s No related NPIs returned.", info.Summary)
		return result, nil
	}

	result.Related = rel
	result.Summary = fmt.Sprintf("%s Related NPIs found: %d.", info.Summary, len(rel.Related))
	return result, nil
}
