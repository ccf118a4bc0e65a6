package utils

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeFacilityName prepares a facility name for fuzzy comparison:
// trimmed, uppercased, with internal whitespace collapsed. The registry and
// the CMS dataset both store names in uppercase, so queries are folded to the
// same case before scoring.
func NormalizeFacilityName(name string) string {
	name = strings.TrimSpace(name)
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.ToUpper(name)
}

// NormalizeStateCode normalizes a two-letter state filter. Returns the empty
// string when no usable filter was supplied.
func NormalizeStateCode(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
