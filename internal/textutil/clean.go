package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// spaceRunPattern matches whitespace runs for collapsing.
var spaceRunPattern = regexp.MustCompile(`\s+`)

// CleanName prepares a captured artist or title for display: underscores
// become spaces, whitespace runs collapse to a single space, and words that
// start with a lower-case letter are capitalized. Short all-caps words
// (DJ, MC, NIN) are kept as written.
func CleanName(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(spaceRunPattern.ReplaceAllString(s, " "))
	if s == "" {
		return s
	}
	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = cleanWord(word)
	}
	return strings.Join(words, " ")
}

func cleanWord(word string) string {
	if word == "" {
		return word
	}
	if utf8.RuneCountInString(word) <= 4 && isUpperWord(word) {
		return word
	}
	first, size := utf8.DecodeRuneInString(word)
	if !unicode.IsLower(first) {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}

// isUpperWord reports whether word contains at least one cased rune and no
// lower-case runes.
func isUpperWord(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
