// Package filename recovers artist, title, and live-performance hints from
// music-video filenames via an ordered pattern cascade.
//
// Parsing is total: every input yields a Result with a non-empty title, the
// final cascade alternative falling back to the whole cleaned stem. The
// lookup tables behind the cascade are fixed at startup, so Parse is safe
// for unsynchronized concurrent use.
package filename

import (
	"path/filepath"
	"regexp"
	"strings"

	"cratedig/internal/scenetag"
	"cratedig/internal/textutil"
)

// Result holds everything recovered from one filename.
type Result struct {
	Artist       string
	Title        string
	Live         bool
	Pattern      Pattern
	ReleaseGroup string
}

// liveIndicators are scanned case-insensitively against the original stem
// before any tag stripping, so markers living inside release tags (HDTV,
// WEB/AVC) still count.
var liveIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhellfest\b`),
	regexp.MustCompile(`(?i)\blive\b`),
	regexp.MustCompile(`(?i)\bfestival\b`),
	regexp.MustCompile(`(?i)\bconcert\b`),
	regexp.MustCompile(`(?i)\bhdtv\b`),
	regexp.MustCompile(`(?i)\bweb\b.*\bavc\b`),
	regexp.MustCompile(`(?i)\bau\s+[\p{L}\p{N}_]+\s+[0-9]{4}\b`),
}

// Parse extracts metadata from a video filename. The extension is stripped,
// quotes are normalized, live indicators and the release group are recorded,
// apostrophes are shielded, and the structural cascade picks the first
// matching shape.
func Parse(name string) Result {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = name
	}
	stem = textutil.NormalizeQuotes(stem)

	res := Result{Pattern: PatternNone}
	res.Live = hasLiveIndicator(stem)

	cleaned, group := scenetag.Extract(stem)
	res.ReleaseGroup = group

	shielded := textutil.ShieldApostrophes(cleaned)
	shielded, _ = scenetag.Extract(shielded)

	matched := false
	for _, rule := range cascade {
		m := rule.re.FindStringSubmatch(shielded)
		if m == nil {
			continue
		}
		res.Pattern = rule.pattern
		rule.build(m, &res)
		matched = true
		break
	}
	if !matched {
		res.Title = display(shielded)
	}
	// Degenerate stems ("_", "___") normalize to nothing; fall back to the
	// raw stem so the title is never empty for a non-empty filename.
	if res.Title == "" {
		res.Title = strings.TrimSpace(stem)
	}
	return res
}

func hasLiveIndicator(stem string) bool {
	for _, re := range liveIndicators {
		if re.MatchString(stem) {
			return true
		}
	}
	return false
}
