package entities

// FacilityInfo is the classified identity of a single organization.
type FacilityInfo struct {
	Name  string         `json:"name"`
	NPI   string         `json:"npi"`
	Kinds []FacilityKind `json:"kinds"`
	City  string         `json:"city"`
	State string         `json:"state"`
}

// ClassificationResult is the output of the facility-type lookup.
type ClassificationResult struct {
	Facility FacilityInfo `json:"facility"`
	Summary  string       `json:"-"`
}

// RelatedFacility is one organizationally related NPI discovered by the
// related-entity expansion.
type RelatedFacility struct {
	NPI       string         `json:"npi"`
	Name      string         `json:"name"`
	Kinds     []FacilityKind `json:"kinds"`
	City      string         `json:"city"`
	IsSubpart bool           `json:"is_subpart"`
}

// RelatedResult is the output of the related-NPI expansion.
type RelatedResult struct {
	QueryNPI string            `json:"query_npi"`
	Related  []RelatedFacility `json:"related_npis"`
	Summary  string            `json:"-"`
}

// CCNMatch is one fuzzy match from the CCN name search.
type CCNMatch struct {
	CCN          string `json:"ccn"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	HospitalType string `json:"hospital_type"`
	MatchScore   int    `json:"match_score"`
}

// CCNSearchResult is the output of the CCN name search. An empty Matches
// slice is a successful result, distinct from the dataset being unavailable.
type CCNSearchResult struct {
	Matches []CCNMatch `json:"matches"`
	Summary string     `json:"-"`
}

// ProfileResult composes the facility classification with, when available,
// the related-NPI expansion. Related is nil when the expansion failed; the
// facility data alone is still a successful result.
type ProfileResult struct {
	Facility FacilityInfo   `json:"facility"`
	Related  *RelatedResult `json:"related,omitempty"`
	Summary  string         `json:"-"`
}
