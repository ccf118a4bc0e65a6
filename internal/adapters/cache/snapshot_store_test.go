package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hlh-health/facility-registry/internal/adapters/cache"
	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

func TestSnapshotStore_FillOnce(t *testing.T) {
	store := cache.NewSnapshotStore()
	assert.False(t, store.Loaded())
	assert.Empty(t, store.Rows())

	first := []entities.FacilityDatasetRow{{FacilityID: "050002", FacilityName: "ST MARY MEDICAL CENTER"}}
	store.Fill(first)
	assert.True(t, store.Loaded())
	assert.Len(t, store.Rows(), 1)

	// A second fill must not replace the snapshot.
	store.Fill([]entities.FacilityDatasetRow{{FacilityID: "999999"}, {FacilityID: "888888"}})
	assert.Len(t, store.Rows(), 1)
	assert.Equal(t, "050002", store.Rows()[0].FacilityID)
}

func TestSnapshotStore_EmptyFillIsNoOp(t *testing.T) {
	store := cache.NewSnapshotStore()
	store.Fill(nil)
	assert.False(t, store.Loaded())

	store.Fill([]entities.FacilityDatasetRow{})
	assert.False(t, store.Loaded())
}
