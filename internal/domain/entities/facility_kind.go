package entities

import "strings"

// FacilityKind is one of a fixed closed vocabulary of facility
// classifications. Kinds are produced only by the classification service and
// never supplied by callers.
type FacilityKind string

const (
	KindGeneralAcuteCareHospital FacilityKind = "general acute care hospital"
	KindCriticalAccessHospital   FacilityKind = "critical access hospital"
	KindRehabilitationHospital   FacilityKind = "rehabilitation hospital"
	KindPsychiatricHospital      FacilityKind = "psychiatric hospital"
	KindLTACHospital             FacilityKind = "ltac hospital"
	KindLTCFacility              FacilityKind = "ltc facility"
	KindSkilledNursingFacility   FacilityKind = "skilled nursing facility"
	KindOncologyClinic           FacilityKind = "oncology clinic/center"
	KindRadiationOncologyClinic  FacilityKind = "radiation oncology clinic/center"

	// KindUnknown is the sentinel when no classification rule matched.
	KindUnknown FacilityKind = "unknown"
)

// IsHospital reports whether the kind belongs to the hospital family.
func (k FacilityKind) IsHospital() bool {
	return strings.Contains(string(k), "hospital")
}

// IsOncology reports whether the kind belongs to the oncology family.
func (k FacilityKind) IsOncology() bool {
	return strings.Contains(string(k), "oncology")
}

// KindStrings renders a kind list for human-readable summaries.
func KindStrings(kinds []FacilityKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
