// Package phone normalizes Indonesian WhatsApp numbers to 62-prefixed form.
package phone

import "strings"

// Normalize strips every non-digit character and rewrites local prefixes:
// "08..." and "8..." both become "628...". Anything else is returned as-is
// after stripping.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	switch {
	case strings.HasPrefix(digits, "08"):
		return "62" + digits[1:]
	case strings.HasPrefix(digits, "8"):
		return "62" + digits
	default:
		return digits
	}
}
