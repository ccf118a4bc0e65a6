package providers

import "github.com/hlh-health/facility-registry/internal/domain/entities"

// DatasetSnapshot is the process-wide in-memory copy of the bulk facility
// dataset. It is filled at most once per process lifetime; once non-empty it
// is treated as read-only.
type DatasetSnapshot interface {
	// Rows returns the snapshot contents, or an empty slice before the first
	// successful fill.
	Rows() []entities.FacilityDatasetRow

	// Fill populates the snapshot. Calls after the first successful fill are
	// no-ops, which makes the concurrent cold-start race benign.
	Fill(rows []entities.FacilityDatasetRow)

	// Loaded reports whether the snapshot has been populated.
	Loaded() bool
}
