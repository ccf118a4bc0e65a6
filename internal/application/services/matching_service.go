package services

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
	"github.com/hlh-health/facility-registry/pkg/utils"
)

// MatchingService scores and ranks candidate records against a query using
// token-set similarity, optionally blended with a partial-ratio score on a
// secondary field.
type MatchingService struct{}

// NewMatchingService creates a new matching service
func NewMatchingService() *MatchingService {
	return &MatchingService{}
}

// NameScore returns the token-set similarity of two names in [0,100]. The
// metric ignores token order and duplication, so "ST MARY MEDICAL CENTER"
// and "Medical Center St Mary" score 100.
func (s *MatchingService) NameScore(a, b string) int {
	return fuzzy.TokenSetRatio(a, b)
}

// BlendedScore combines the name similarity against the anchor name with a
// partial-ratio similarity of the candidate's city against the anchor city.
// When the anchor city is unknown the name score stands alone.
func (s *MatchingService) BlendedScore(candidateName, anchorName, candidateCity, anchorCity string) int {
	score := fuzzy.TokenSetRatio(candidateName, anchorName)
	if strings.TrimSpace(anchorCity) != "" {
		score = (score + fuzzy.PartialRatio(candidateCity, anchorCity)) / 2
	}
	return score
}

// RankRows scores every dataset row's facility name against the query and
// returns at most limit matches with score >= minScore, best first. Ties
// keep input order: the sort is stable and compares scores only.
func (s *MatchingService) RankRows(query string, rows []entities.FacilityDatasetRow, limit, minScore int) []entities.FacilityMatch {
	normalized := utils.NormalizeFacilityName(query)

	scored := make([]entities.FacilityMatch, 0, len(rows))
	for _, row := range rows {
		scored = append(scored, entities.FacilityMatch{
			Row:   row,
			Score: fuzzy.TokenSetRatio(normalized, row.FacilityName),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	matches := make([]entities.FacilityMatch, 0, limit)
	for _, m := range scored {
		if len(matches) >= limit || m.Score < minScore {
			break
		}
		matches = append(matches, m)
	}
	return matches
}
