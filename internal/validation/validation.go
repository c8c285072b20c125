// Package validation contains the pure field validators for the auction
// house: currency amounts, person names, emails, passwords and the tokens
// of a structured street address. All functions are stateless.
package validation

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ValidCurrency parses a currency string into an exact decimal amount.
// The input is trimmed, a single leading '$' is stripped, and the remainder
// must contain exactly one '.' separating integer and fractional parts.
// Thousands separators are accepted. Negative amounts are rejected.
func ValidCurrency(input string) (decimal.Decimal, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, false
	}
	if input[0] == '$' {
		input = input[1:]
	}
	if strings.Count(input, ".") != 1 {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(input, ",", ""))
	if err != nil || amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

// ValidName reports whether a display name is acceptable: letters, spaces,
// hyphens and apostrophes only, letters at both ends, and no two non-letter
// symbols adjacent.
func ValidName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}

	for _, r := range runes {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return false
		}
	}
	if !unicode.IsLetter(runes[0]) || !unicode.IsLetter(runes[len(runes)-1]) {
		return false
	}
	for i := 1; i < len(runes); i++ {
		if !unicode.IsLetter(runes[i]) && !unicode.IsLetter(runes[i-1]) {
			return false
		}
	}
	return true
}

// ValidEmail reports whether an email address is acceptable: exactly one '@',
// a local part of letters, digits, '_', '-' and '.' not ending in a symbol,
// and a domain of letters, digits, '-' and '.' that contains a dot, does not
// start or end with a symbol, and whose final label is letters only.
func ValidEmail(email string) bool {
	if strings.Count(email, "@") != 1 {
		return false
	}
	parts := strings.Split(email, "@")
	return validLocalPart(parts[0]) && validDomainPart(parts[1])
}

func validLocalPart(local string) bool {
	if local == "" {
		return false
	}
	for _, r := range local {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}
	last := local[len(local)-1]
	return last != '_' && last != '-' && last != '.'
}

func validDomainPart(domain string) bool {
	if domain == "" {
		return false
	}
	for _, r := range domain {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '.' {
			return false
		}
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if domain[0] == '-' || domain[0] == '.' || domain[len(domain)-1] == '-' || domain[len(domain)-1] == '.' {
		return false
	}

	labels := strings.Split(domain, ".")
	for _, r := range labels[len(labels)-1] {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ValidPassword reports whether a password is acceptable: at least 8
// characters with at least one uppercase letter, one lowercase letter,
// one digit and one symbol.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsSpace(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
