package entities

// TaxonomyEntry is one taxonomy line from a registry organization record.
// Either field may be empty; the registry frequently omits descriptions on
// legacy records.
type TaxonomyEntry struct {
	Code        string `json:"code"`
	Description string `json:"desc"`
}

// OrganizationRecord is the canonical form of an NPPES organization result.
// Registry responses are loose optional-field bags; the registry client
// normalizes them into this shape, defaulting missing address fields to empty
// strings.
type OrganizationRecord struct {
	NPI                    string          `json:"npi"`
	LegalName              string          `json:"legal_name"`
	ParentOrganizationName string          `json:"parent_organization_name,omitempty"`
	PrimaryCity            string          `json:"city"`
	PrimaryState           string          `json:"state"`
	Taxonomies             []TaxonomyEntry `json:"taxonomies"`
	IsSubpart              bool            `json:"is_subpart"`
}
