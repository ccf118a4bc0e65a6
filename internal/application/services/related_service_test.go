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

func newRelatedService(registry *stubRegistry) *services.RelatedService {
	return services.NewRelatedService(registry, services.NewClassificationService(), services.NewMatchingService())
}

func TestGetRelated_ExpandsByLegalAndParentName(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}
	registry.byName["ST MARY MEDICAL CENTER"] = []entities.OrganizationRecord{
		{
			NPI:         "1111111111",
			LegalName:   "ST MARY MEDICAL CENTER",
			PrimaryCity: "LONG BEACH",
			IsSubpart:   true,
			Taxonomies:  []entities.TaxonomyEntry{{Code: "282N00000X"}},
		},
	}
	registry.byName["PROVIDENCE HEALTH SYSTEM"] = []entities.OrganizationRecord{
		{
			NPI:         "2222222222",
			LegalName:   "ST MARY MEDICAL CENTER",
			PrimaryCity: "LONG BEACH",
		},
	}

	service := newRelatedService(registry)
	result, err := service.GetRelated(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, []string{"ST MARY MEDICAL CENTER", "PROVIDENCE HEALTH SYSTEM"}, registry.nameQueries)
	require.Len(t, result.Related, 2)
	assert.Equal(t, "1111111111", result.Related[0].NPI)
	assert.True(t, result.Related[0].IsSubpart)
	assert.Equal(t, []entities.FacilityKind{entities.KindGeneralAcuteCareHospital}, result.Related[0].Kinds)
	assert.Contains(t, result.Summary, "Found 2 related NPIs")
}

func TestGetRelated_SameLegalAndParentNameQueriesOnce(t *testing.T) {
	registry := newStubRegistry()
	org := stMaryOrg()
	org.ParentOrganizationName = org.LegalName
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{org}

	service := newRelatedService(registry)
	_, err := service.GetRelated(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Equal(t, []string{"ST MARY MEDICAL CENTER"}, registry.nameQueries)
}

func TestGetRelated_DeduplicatesByNPIFirstWins(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}
	dup := entities.OrganizationRecord{NPI: "1111111111", LegalName: "ST MARY MEDICAL CENTER", PrimaryCity: "LONG BEACH"}
	registry.byName["ST MARY MEDICAL CENTER"] = []entities.OrganizationRecord{dup}
	registry.byName["PROVIDENCE HEALTH SYSTEM"] = []entities.OrganizationRecord{dup}

	service := newRelatedService(registry)
	result, err := service.GetRelated(context.Background(), "1234567890")

	require.NoError(t, err)
	assert.Len(t, result.Related, 1)
}

func TestGetRelated_FiltersCandidatesBelowThreshold(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}
	registry.byName["ST MARY MEDICAL CENTER"] = []entities.OrganizationRecord{
		{NPI: "1111111111", LegalName: "ST MARY MEDICAL CENTER", PrimaryCity: "LONG BEACH"},
		{NPI: "3333333333", LegalName: "QQQQ WWWW EEEE", PrimaryCity: "RRRRR"},
	}

	service := newRelatedService(registry)
	result, err := service.GetRelated(context.Background(), "1234567890")

	require.NoError(t, err)
	require.Len(t, result.Related, 1)
	assert.Equal(t, "1111111111", result.Related[0].NPI)
}

func TestGetRelated_SwallowsPerQueryFailures(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPI["1234567890"] = []entities.OrganizationRecord{stMaryOrg()}
	registry.byNameErr["ST MARY MEDICAL CENTER"] = errRegistryDown
	registry.byName["PROVIDENCE HEALTH SYSTEM"] = []entities.OrganizationRecord{
		{NPI: "2222222222", LegalName: "ST MARY MEDICAL CENTER", PrimaryCity: "LONG BEACH"},
	}

	service := newRelatedService(registry)
	result, err := service.GetRelated(context.Background(), "1234567890")

	require.NoError(t, err)
	require.Len(t, result.Related, 1)
	assert.Equal(t, "2222222222", result.Related[0].NPI)
}

func TestGetRelated_AnchorFailureIsFatal(t *testing.T) {
	registry := newStubRegistry()
	registry.byNPIErr = errRegistryDown

	service := newRelatedService(registry)
	_, err := service.GetRelated(context.Background(), "1234567890")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeExternal, apperrors.TypeOf(err))
}

func TestGetRelated_ValidatesNPI(t *testing.T) {
	registry := newStubRegistry()
	service := newRelatedService(registry)

	_, err := service.GetRelated(context.Background(), "12345")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Zero(t, registry.npiCalls)
}
