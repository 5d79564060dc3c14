package textutil

import "strings"

// SanitizeToken flattens value into a token safe for use in file names:
// ASCII letters are lowercased, digits, hyphens and underscores pass
// through, and every other rune turns into an underscore. A value with
// nothing to keep comes back as "unknown".
func SanitizeToken(value string) string {
	mapped := strings.Map(tokenRune, strings.TrimSpace(value))
	mapped = strings.Trim(mapped, "_-")
	if mapped == "" {
		return "unknown"
	}
	return mapped
}

func tokenRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		return r
	case r >= 'A' && r <= 'Z':
		return r - 'A' + 'a'
	default:
		return '_'
	}
}
