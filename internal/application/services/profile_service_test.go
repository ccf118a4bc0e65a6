package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlh-health/facility-registry/internal/application/services"
	"github.com/hlh-health/facility-registry/internal/domain/entities"
	apperrors "github.com/hlh-health/facility-registry/pkg/errors"
)

func newProfileService(facilityRegistry, relatedRegistry *stubRegistry) *services.ProfileService {
	classifier := services.NewClassificationService()
	facility := services.NewFacilityService(facilityRegistry, classifier)
	related := services.NewRelatedService(relatedRegistry, classifier, services.NewMatchingService())
	return services.NewProfileService(facility, related)
}

func TestGetProfile_ComposesFacilityAndRelated(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}
	registry.byName["ST MARY MEDICAL CENTER"] = []entities.OrganizationRecord{
		{NPI: "1111111111", LegalName: "ST MARY MEDICAL CENTER", PrimaryCity: "LONG BEACH"},
	}

	service := newProfileService(registry, registry)
	result, err := service.GetProfile(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, "1234567890", result.Facility.NPI)
	require.NotNil(t, result.Related)
	assert.Len(t, result.Related.Related, 1)
	assert.Contains(t, result.Summary, "Related NPIs found: 1.")
}

func TestGetProfile_RelatedFailureDegradesToPartialSuccess(t *testing.T) {
	facilityRegistry := newStubRegistry()
	facilityRegistry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}

	relatedRegistry := newStubRegistry()
	relatedRegistry.byNPIErr = errRegistryDown

	service := newProfileService(facilityRegistry, relatedRegistry)
	result, err := service.GetProfile(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, "ST MARY MEDICAL CENTER", result.Facility.Name)
	assert.Nil(t, result.Related)
	assert.Contains(t, result.Summary, "No related NPIs returned.")
}

func TestGetProfile_FacilityFailurePropagatesVerbatim(t *testing.T) {
	facilityRegistry := newStubRegistry()
	service := newProfileService(facilityRegistry, newStubRegistry())

	_, err := service.GetProfile(context.Background(), "1234567890")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	assert.EqualError(t, err, "NOT_FOUND: no NPPES match for NPI 1234567890")
}

func TestGetProfile_ValidatesNPI(t *testing.T) {
	facilityRegistry := newStubRegistry()
	service := newProfileService(facilityRegistry, newStubRegistry())

	_, err := service.GetProfile(context.Background(), "12345abcde")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Zero(t, facilityRegistry.npiCalls)
}
