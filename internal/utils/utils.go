package utils

import "strings"

// NormalizeID - Returns the canonical form of a course identifier, surrounding white space removed and upper case.
// All table operations compare canonical identifiers.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// NormalizeIDs - Returns a new slice with every identifier in canonical form, empty entries are left out
func NormalizeIDs(ids []string) (normalized []string) {
	normalized = make([]string, 0, len(ids))
	for _, id := range ids {
		id = NormalizeID(id)
		if id != "" {
			normalized = append(normalized, id)
		}
	}

	return
}

// LeadingInt - Parses the leading decimal digits of s the way C atoi does for unsigned input.
// A string without leading digits, including the empty string, gives 0.
func LeadingInt(s string) (n int64) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return
		}
		n = n*10 + int64(c-'0')
	}

	return
}

// Substring - Returns up to length bytes of s starting at start, clamped to the bounds of s
func Substring(s string, start, length int) string {
	if start >= len(s) || length <= 0 {
		return ""
	}
	end := start + length
	if end > len(s) {
		end = len(s)
	}

	return s[start:end]
}

// RoundUp2 - Returns the nearest higher power of 2 for values above 2, values of 2 or less return 2
func RoundUp2(a int64) int64 {
	if a <= 2 {
		return 2
	}

	a--
	a |= a >> 1
	a |= a >> 2
	a |= a >> 4
	a |= a >> 8
	a |= a >> 16
	a |= a >> 32
	a++

	return a
}
