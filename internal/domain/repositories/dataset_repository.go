package repositories

import (
	"context"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// FacilityDatasetSource abstracts the bulk CMS hospital dataset fetch. It
// must be idempotent: it is called again on every search request until the
// snapshot is populated.
type FacilityDatasetSource interface {
	FetchAll(ctx context.Context) ([]entities.FacilityDatasetRow, error)
}
