package services

import (
	"regexp"
	"strings"
)

var npiPattern = regexp.MustCompile(`^\d{10}$`)

// cleanNPI trims the identifier and reports whether it is a well-formed
// 10-digit NPI. Validation happens before any collaborator call.
func cleanNPI(npi string) (string, bool) {
	trimmed := strings.TrimSpace(npi)
	return trimmed, npiPattern.MatchString(trimmed)
}
