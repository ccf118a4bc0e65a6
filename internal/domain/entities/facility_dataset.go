package entities

// FacilityDatasetRow is one row of the CMS Hospital General Information
// dataset. Rows are loaded once into the process-wide snapshot and treated as
// immutable afterwards.
type FacilityDatasetRow struct {
	FacilityID   string `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	HospitalType string `json:"hospital_type"`
}

// FacilityMatch pairs a dataset row with its similarity score against a
// query, in [0,100].
type FacilityMatch struct {
	Row   FacilityDatasetRow
	Score int
}
