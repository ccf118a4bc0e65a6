package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/internal/domain/repositories"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
)

// FacilityService resolves an NPI to its facility classification.
type FacilityService struct {
	registry   repositories.OrganizationRegistry
	classifier *ClassificationService
}

// NewFacilityService creates a new facility service
func NewFacilityService(registry repositories.OrganizationRegistry, classifier *ClassificationService) *FacilityService {
	return &FacilityService{
		registry:   registry,
		classifier: classifier,
	}
}

// GetFacilityType returns the facility kinds for a 10-digit NPI together
// with the organization's identity and primary location.
func (s *FacilityService) GetFacilityType(ctx context.Context, npi string) (*entities.ClassificationResult, error) {
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

	org := records[0]
	kinds := s.classifier.Classify(org.Taxonomies)

	info := entities.FacilityInfo{
		Name:  org.LegalName,
		NPI:   org.NPI,
		Kinds: kinds,
		City:  org.PrimaryCity,
		State: org.PrimaryState,
	}

	return &entities.ClassificationResult{
		Facility: info,
		Summary: fmt.Sprintf("%s (NPI %s) is classified as: %s in %s, %s.",
			info.Name, info.NPI, strings.Join(entities.KindStrings(kinds), ", "), info.City, info.State),
	}, nil
}
