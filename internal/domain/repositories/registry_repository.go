package repositories

import (
	"context"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// OrganizationRegistry abstracts the NPPES registry API.
type OrganizationRegistry interface {
	// GetByNPI returns zero-or-more organization records for a 10-digit NPI.
	// A missing NPI is an empty slice, not an error.
	GetByNPI(ctx context.Context, npi string) ([]entities.OrganizationRecord, error)

	// SearchByName returns organization records whose name matches the given
	// free-text name, optionally narrowed to a state, capped at 200 results.
	SearchByName(ctx context.Context, name, state string) ([]entities.OrganizationRecord, error)
}
