package validation

import "strings"

var streetTypes = []string{"St", "Rd", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Ter", "Way"}

var states = []string{"QLD", "NSW", "VIC", "TAS", "SA", "WA", "NT", "ACT"}

// ValidStreetType reports whether the street type is one of the accepted
// suffixes (St, Rd, Ave, Blvd, Dr, Ln, Ct, Pl, Ter, Way). Matching is exact.
func ValidStreetType(streetType string) bool {
	for _, t := range streetTypes {
		if streetType == t {
			return true
		}
	}
	return false
}

// ValidState reports whether the state is one of the accepted abbreviations.
// Matching is case-insensitive.
func ValidState(state string) bool {
	upper := strings.ToUpper(state)
	for _, s := range states {
		if upper == s {
			return true
		}
	}
	return false
}

// ValidPostcode reports whether a postcode lies in 1000..9999 inclusive.
func ValidPostcode(postcode int) bool {
	return postcode >= 1000 && postcode <= 9999
}
