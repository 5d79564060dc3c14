package textutil

import (
	"strings"
	"unicode"
)

// quoteReplacer maps curly quote characters to their straight equivalents.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// apostrophePlaceholder stands in for apostrophes while quote-delimited
// phrases are matched. The pilcrow is vanishingly rare in filenames.
const apostrophePlaceholder = "¶"

// NormalizeQuotes converts curly single and double quotes to their straight
// ASCII forms.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// ShieldApostrophes replaces apostrophes that belong to a word (Ain't, Goin',
// 'cause) with a placeholder so quoted-phrase patterns cannot mistake them
// for delimiters. Apostrophes that form a delimiter pair are left intact: an
// opener (start or space before, word character after) pairs with the next
// closer (word character before, space or end after), scanning left to right.
func ShieldApostrophes(s string) string {
	runes := []rune(s)
	positions := make([]int, 0, 4)
	for i, r := range runes {
		if r == '\'' {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return s
	}

	delimiter := make(map[int]bool, 2)
	for i := 0; i < len(positions); i++ {
		pos := positions[i]
		if !opensQuote(runes, pos) {
			continue
		}
		for j := i + 1; j < len(positions); j++ {
			if closesQuote(runes, positions[j]) {
				delimiter[pos] = true
				delimiter[positions[j]] = true
				i = j
				break
			}
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if r == '\'' && !delimiter[i] && shieldable(runes, i) {
			b.WriteString(apostrophePlaceholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RestoreApostrophes converts shielded placeholders back to apostrophes.
func RestoreApostrophes(s string) string {
	return strings.ReplaceAll(s, apostrophePlaceholder, "'")
}

func opensQuote(runes []rune, i int) bool {
	return (i == 0 || unicode.IsSpace(runes[i-1])) && i+1 < len(runes) && isWordRune(runes[i+1])
}

func closesQuote(runes []rune, i int) bool {
	return i > 0 && isWordRune(runes[i-1]) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1]))
}

// shieldable reports whether the apostrophe at i sits in a contraction or
// elision context: mid-word, trailing after a word, or leading before one.
func shieldable(runes []rune, i int) bool {
	prevWord := i > 0 && isWordRune(runes[i-1])
	nextWord := i+1 < len(runes) && isWordRune(runes[i+1])
	if prevWord && nextWord {
		return true
	}
	return opensQuote(runes, i) || closesQuote(runes, i)
}

// Word characters follow Unicode semantics: letters, numbers, underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
