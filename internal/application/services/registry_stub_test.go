package services_test

import (
	"context"
	"errors"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// stubRegistry is a hand stub of the organization registry for service
// tests. Lookups count calls so tests can assert validation happens before
// any collaborator access.
type stubRegistry struct {
	byNPI     map[string][]entities.OrganizationRecord
	byNPIErr  error
	byName    map[string][]entities.OrganizationRecord
	byNameErr map[string]error

	npiCalls    int
	nameQueries []string
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{
		byNPI:     make(map[string][]entities.OrganizationRecord),
		byName:    make(map[string][]entities.OrganizationRecord),
		byNameErr: make(map[string]error),
	}
}

func (s *stubRegistry) GetByNPI(ctx context.Context, npi string) ([]entities.OrganizationRecord, error) {
	s.npiCalls++
	if s.byNPIErr != nil {
		return nil, s.byNPIErr
	}
	return s.byNPI[npi], nil
}

func (s *stubRegistry) SearchByName(ctx context.Context, name, state string) ([]entities.OrganizationRecord, error) {
	s.nameQueries = append(s.nameQueries, name)
	if err, ok := s.byNameErr[name]; ok {
		return nil, err
	}
	return s.byName[name], nil
}

// stubDatasetSource is a hand stub of the bulk dataset fetch.
type stubDatasetSource struct {
	rows  []entities.FacilityDatasetRow
	err   error
	calls int
}

func (s *stubDatasetSource) FetchAll(ctx context.Context) ([]entities.FacilityDatasetRow, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

var errRegistryDown = errors.New("connection refused")
