package domain

import (
	"regexp"
	"strings"

	perr "padala/internal/platform/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxNameLen caps courier and region identifiers
const maxNameLen = 50

// courier identifiers allow letters, digits, ampersand, hyphen, and spaces
var courierNameRe = regexp.MustCompile(`^[A-Za-z0-9&\- ]+$`)

// AllowedRegions is the closed set of serviceable region identifiers.
var AllowedRegions = []string{"ncr", "luzon", "visayas", "mindanao"}

// NormalizeCourier trims and uppercases a courier identifier, rejecting
// empty, oversized, or oddly-charactered names.
func NormalizeCourier(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", perr.InvalidCourierf("courier must not be empty")
	}
	if len(s) > maxNameLen {
		return "", perr.InvalidCourierf("courier name exceeds %d characters", maxNameLen)
	}
	if !courierNameRe.MatchString(s) {
		return "", perr.InvalidCourierf("courier name contains unsupported characters")
	}
	return cases.Upper(language.English).String(s), nil
}

// NormalizeRegion trims and lowercases a region identifier and checks it
// against the allowed set.
func NormalizeRegion(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", perr.InvalidRegionf("region must not be empty")
	}
	if len(s) > maxNameLen {
		return "", perr.InvalidRegionf("region name exceeds %d characters", maxNameLen)
	}
	s = cases.Lower(language.English).String(s)
	for _, r := range AllowedRegions {
		if s == r {
			return s, nil
		}
	}
	return "", perr.InvalidRegionf("unknown region %q, expected one of %s", s, strings.Join(AllowedRegions, ", "))
}
