package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlh-health/facility-registry/internal/application/services"
	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

func TestNameScore_Identical(t *testing.T) {
	matcher := services.NewMatchingService()
	assert.Equal(t, 100, matcher.NameScore("ST MARY MEDICAL CENTER", "ST MARY MEDICAL CENTER"))
}

func TestNameScore_DisjointNames(t *testing.T) {
	matcher := services.NewMatchingService()

	// The metric compares joined sorted token strings, so multi-token names
	// always share the separator character; only single-token names with no
	// characters in common score a true zero.
	assert.Equal(t, 0, matcher.NameScore("ABCD", "WXYZ"))
	assert.Less(t, matcher.NameScore("ABCD EFGH", "WXYZ QRST"), 60)
}

func TestNameScore_Symmetric(t *testing.T) {
	matcher := services.NewMatchingService()
	a, b := "ST MARY MEDICAL CENTER", "MERCY GENERAL HOSPITAL"
	assert.Equal(t, matcher.NameScore(a, b), matcher.NameScore(b, a))
}

func TestNameScore_TokenOrderInsensitive(t *testing.T) {
	matcher := services.NewMatchingService()
	assert.Equal(t, 100, matcher.NameScore("MEDICAL CENTER ST MARY", "ST MARY MEDICAL CENTER"))
}

func TestBlendedScore_WithoutAnchorCityUsesNameAlone(t *testing.T) {
	matcher := services.NewMatchingService()

	score := matcher.BlendedScore("ST MARY MEDICAL CENTER", "ST MARY MEDICAL CENTER", "LONG BEACH", "")
	assert.Equal(t, 100, score)
}

func TestBlendedScore_BlendsCitySimilarity(t *testing.T) {
	matcher := services.NewMatchingService()

	// Same name, same city: perfect blend.
	assert.Equal(t, 100, matcher.BlendedScore("ST MARY MEDICAL CENTER", "ST MARY MEDICAL CENTER", "LONG BEACH", "LONG BEACH"))

	// Same name, different city: the blend pulls the score down.
	blended := matcher.BlendedScore("ST MARY MEDICAL CENTER", "ST MARY MEDICAL CENTER", "QQQQQ", "LONG BEACH")
	assert.Less(t, blended, 100)
	assert.GreaterOrEqual(t, blended, 50)
}

func TestRankRows_ThresholdAndRanking(t *testing.T) {
	matcher := services.NewMatchingService()

	rows := []entities.FacilityDatasetRow{
		{FacilityID: "1", FacilityName: "MERCY GENERAL HOSPITAL"},
		{FacilityID: "2", FacilityName: "ST MARY MEDICAL CENTER"},
		{FacilityID: "3", FacilityName: "QQQQ WWWW"},
	}

	matches := matcher.RankRows("St. Mary's Medical Ctr", rows, 5, 60)

	require.NotEmpty(t, matches)
	assert.Equal(t, "2", matches[0].Row.FacilityID)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 60)
		assert.NotEqual(t, "3", m.Row.FacilityID)
	}
}

func TestRankRows_ExcludesUnrelatedName(t *testing.T) {
	matcher := services.NewMatchingService()

	rows := []entities.FacilityDatasetRow{
		{FacilityID: "2", FacilityName: "ST MARY MEDICAL CENTER"},
	}

	matches := matcher.RankRows("Unrelated Name Zzz", rows, 5, 60)
	assert.Empty(t, matches)
}

func TestRankRows_TiesKeepInputOrder(t *testing.T) {
	matcher := services.NewMatchingService()

	rows := []entities.FacilityDatasetRow{
		{FacilityID: "first", FacilityName: "MERCY HOSPITAL"},
		{FacilityID: "second", FacilityName: "MERCY HOSPITAL"},
	}

	matches := matcher.RankRows("MERCY HOSPITAL", rows, 5, 60)
	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Row.FacilityID)
	assert.Equal(t, "second", matches[1].Row.FacilityID)
}

func TestRankRows_LimitsResults(t *testing.T) {
	matcher := services.NewMatchingService()

	rows := make([]entities.FacilityDatasetRow, 0, 8)
	for i := 0; i < 8; i++ {
		rows = append(rows, entities.FacilityDatasetRow{FacilityID: "x", FacilityName: "MERCY HOSPITAL"})
	}

	matches := matcher.RankRows("MERCY HOSPITAL", rows, 5, 60)
	assert.Len(t, matches, 5)
}
