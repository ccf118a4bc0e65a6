package services

import (
	"regexp"
	"strings"

	"github.com/hlh-health/facility-registry/internal/domain/entities"
)

// taxonomyCodeMap maps exact NPPES taxonomy codes to facility kinds. An
// exact code match always wins over the keyword fallback.
var taxonomyCodeMap = map[string]entities.FacilityKind{
	// Hospitals
	"282N00000X": entities.KindGeneralAcuteCareHospital, // General Acute Care Hospital
	"282NC0060X": entities.KindCriticalAccessHospital,   // Critical Access Hospital
	"282E00000X": entities.KindLTACHospital,             // Long Term Care Hospital (LTCH / LTAC)
	"283X00000X": entities.KindRehabilitationHospital,   // Rehabilitation Hospital
	"283Q00000X": entities.KindPsychiatricHospital,      // Psychiatric Hospital
	"281P00000X": entities.KindGeneralAcuteCareHospital, // Chronic Disease Hospital (often hospital class)

	// Acute-care variants
	"282NR1301X": entities.KindGeneralAcuteCareHospital, // Rural Acute Care Hospital
	"282NC2000X": entities.KindGeneralAcuteCareHospital, // Children's Hospital
	"282NW0100X": entities.KindGeneralAcuteCareHospital, // Women's Hospital

	// Long-term care facilities (non-hospital)
	"314000000X": entities.KindSkilledNursingFacility, // SNF (also considered LTC)
	"313M00000X": entities.KindLTCFacility,            // Nursing Facility / Intermediate Care Facility
	"310400000X": entities.KindLTCFacility,            // Assisted Living Facility
	"310500000X": entities.KindLTCFacility,            // Alzheimer Center
	"311Z00000X": entities.KindLTCFacility,            // Custodial Care Facility

	// Oncology clinics/centers (not hospitals)
	"261QX0200X": entities.KindOncologyClinic,          // Clinic/Center: Oncology
	"261QX0203X": entities.KindRadiationOncologyClinic, // Clinic/Center: Oncology, Radiation
}

type keywordRule struct {
	pattern *regexp.Regexp
	kind    entities.FacilityKind
}

// keywordRules is the ordered fallback for taxonomy lines whose code is
// missing or unknown. The order is load-bearing: the first matching rule
// wins per line, so "radiation oncology" must be tried before the generic
// oncology rule, skilled nursing before generic nursing, and LTAC before the
// generic hospital terms.
var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)\bradiation\s+oncology\b`), entities.KindRadiationOncologyClinic},
	{regexp.MustCompile(`(?i)\boncology\b`), entities.KindOncologyClinic},

	{regexp.MustCompile(`(?i)\bskilled\s+nursing\b`), entities.KindSkilledNursingFacility},
	{regexp.MustCompile(`(?i)\bnursing\s+facility\b`), entities.KindLTCFacility},
	{regexp.MustCompile(`(?i)\bassisted\s+living\b`), entities.KindLTCFacility},
	{regexp.MustCompile(`(?i)\bcustodial\s+care\b`), entities.KindLTCFacility},

	{regexp.MustCompile(`(?i)\blong[-\s]?term\s+care\s+hospital\b`), entities.KindLTACHospital},
	{regexp.MustCompile(`(?i)\blong[-\s]?term\s+acute\s+care\b`), entities.KindLTACHospital},

	{regexp.MustCompile(`(?i)\bgeneral\s+acute\s+care\b`), entities.KindGeneralAcuteCareHospital},
	{regexp.MustCompile(`(?i)\bcritical\s+access\b`), entities.KindCriticalAccessHospital},
	{regexp.MustCompile(`(?i)\bpsychiatric\b`), entities.KindPsychiatricHospital},
	{regexp.MustCompile(`(?i)\brehabilitation\b`), entities.KindRehabilitationHospital},
}

// ClassificationService maps taxonomy entries to facility kinds
type ClassificationService struct{}

// NewClassificationService creates a new classification service
func NewClassificationService() *ClassificationService {
	return &ClassificationService{}
}

// Classify returns the deduplicated facility kinds for an organization's
// taxonomy list, in first-discovery order. When both a hospital kind and an
// oncology kind are present across entries, the generic oncology clinic kind
// is appended so hospital-affiliated oncology programs without a dedicated
// oncology taxonomy line still surface it. Falls back to the unknown
// sentinel when nothing matched.
func (s *ClassificationService) Classify(taxonomies []entities.TaxonomyEntry) []entities.FacilityKind {
	var kinds []entities.FacilityKind
	hasHospital := false
	hasOncology := false

	collect := func(kind entities.FacilityKind) {
		if !containsKind(kinds, kind) {
			kinds = append(kinds, kind)
		}
		if kind.IsHospital() {
			hasHospital = true
		}
		if kind.IsOncology() {
			hasOncology = true
		}
	}

	for _, t := range taxonomies {
		code := strings.ToUpper(strings.TrimSpace(t.Code))

		// 1) Exact code map wins
		if kind, ok := taxonomyCodeMap[code]; ok {
			collect(kind)
			continue
		}

		// 2) Keyword fallback on code and description text
		hay := strings.TrimSpace(code + " " + t.Description)
		if hay == "" {
			continue
		}
		for _, rule := range keywordRules {
			if rule.pattern.MatchString(hay) {
				collect(rule.kind)
				break
			}
		}
	}

	if hasHospital && hasOncology && !containsKind(kinds, entities.KindOncologyClinic) {
		kinds = append(kinds, entities.KindOncologyClinic)
	}

	if len(kinds) == 0 {
		return []entities.FacilityKind{entities.KindUnknown}
	}
	return kinds
}

func containsKind(kinds []entities.FacilityKind, kind entities.FacilityKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
