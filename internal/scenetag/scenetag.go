package scenetag

import (
	"regexp"
	"strings"
)

// state carries the working text and the claimed group through the cascade.
type state struct {
	text  string
	group string
}

// rule is one step of the extraction cascade. apply receives the working
// state and the submatch indices of re against state.text.
type rule struct {
	name  string
	re    *regexp.Regexp
	apply func(s *state, m []int)
}

// The cascade. Rules run top to bottom; each may trim the text whether or
// not it claims a group. Rules 1-4 overwrite an earlier claim, rules 5-7
// only fill an empty one, rule 8 never claims.
var rules = []rule{
	{
		name: "ripped-by",
		re:   regexp.MustCompile(`[-_\s]*[Rr]ipped?\s*[Bb]y\s*([a-zA-Z0-9_]+)[-_\s]*`),
		apply: func(s *state, m []int) {
			s.group = capture(s.text, m, 1)
			s.text = strings.Trim(s.text[:m[0]]+s.text[m[1]:], " -_")
		},
	},
	{
		name: "codec-year-group",
		re:   regexp.MustCompile(`(?i)[-_](?:dvdrip[-_]?)?(?:xvid|x264|avc|mpeg4|divx)[-_]?([0-9]{4})?[-_]?([a-zA-Z0-9_]+)?$`),
		apply: func(s *state, m []int) {
			if g := capture(s.text, m, 2); g != "" {
				s.group = g
			}
			s.text = strings.Trim(s.text[:m[0]], " -_")
		},
	},
	{
		name: "dvdrip-rerip",
		re:   regexp.MustCompile(`(?i)[-_]dvdrip[-_]xvid[-_](?:rerip[-_])?([0-9]{4})[-_]([a-zA-Z0-9_]+)$`),
		apply: func(s *state, m []int) {
			s.group = capture(s.text, m, 2)
			s.text = strings.Trim(s.text[:m[0]], " -_")
		},
	},
	{
		name: "group-plus-suffix",
		re:   regexp.MustCompile(`[-_]([a-zA-Z0-9_]+)[-_]([a-zA-Z]{2,3})$`),
		apply: func(s *state, m []int) {
			name, suffix := capture(s.text, m, 1), capture(s.text, m, 2)
			if !isKnownGroup(name) && !isKnownSuffix(suffix) {
				return
			}
			s.group = name + "-" + suffix
			s.text = strings.Trim(s.text[:m[0]], " -_")
		},
	},
	{
		name: "bare-known-group",
		re:   regexp.MustCompile(`[-_]([a-zA-Z0-9_]+)$`),
		apply: func(s *state, m []int) {
			if s.group != "" {
				return
			}
			name := capture(s.text, m, 1)
			if !isKnownGroup(name) {
				return
			}
			s.group = name
			s.text = strings.Trim(s.text[:m[0]], " -_")
		},
	},
	{
		name: "svcd-vcd",
		re:   regexp.MustCompile(`(?i)[-_](?:svcd|vcd)[-_]([0-9]{4})?[-_]?([a-zA-Z0-9_]+)?$`),
		apply: func(s *state, m []int) {
			if g := capture(s.text, m, 2); g != "" && s.group == "" {
				s.group = g
			}
			s.text = strings.Trim(s.text[:m[0]], " -_")
		},
	},
	{
		name: "dotted-broadcast",
		re:   regexp.MustCompile(`(?i)\.(?:pdtv|hdtv|web)\.xvid[-_]([a-zA-Z0-9_]+)$`),
		apply: func(s *state, m []int) {
			if s.group == "" {
				s.group = capture(s.text, m, 1)
			}
			s.text = strings.Trim(s.text[:m[0]], " -_.")
		},
	},
	{
		name: "tech-suffix-scrub",
		re:   regexp.MustCompile(`(?i)[-_.](?:svcd|vcd|dvdrip|webrip|hdtv|pdtv|720p|1080p|avc|mkv|x264|xvid|ac-3|aac)[-_.]?(?:[0-9]{4})?$`),
		apply: func(s *state, m []int) {
			s.text = strings.Trim(s.text[:m[0]], " -_.")
		},
	},
}

// Extract strips release tags from text and returns the cleaned text plus
// the release group, or "" when no rule recognized one. Total and pure;
// re-running Extract on already-clean text changes nothing.
func Extract(text string) (string, string) {
	s := state{text: text}
	for _, r := range rules {
		m := r.re.FindStringSubmatchIndex(s.text)
		if m == nil {
			continue
		}
		r.apply(&s, m)
	}
	return s.text, s.group
}

// capture returns submatch i of m against text, or "" when the group did
// not participate in the match.
func capture(text string, m []int, i int) string {
	if 2*i >= len(m) || m[2*i] < 0 {
		return ""
	}
	return text[m[2*i]:m[2*i+1]]
}
