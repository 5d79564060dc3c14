package filename

import (
	"regexp"
	"strings"

	"cratedig/internal/textutil"
)

// trailingVideoID strips a downloader ID left inside a captured subtitle.
var trailingVideoID = regexp.MustCompile(`-[a-zA-Z0-9_-]{11}$`)

// cascadeRule is one alternative of the structural cascade. Rules are tried
// in order against the shielded, tag-stripped stem; the first match wins.
type cascadeRule struct {
	pattern Pattern
	re      *regexp.Regexp
	build   func(m []string, r *Result)
}

// The cascade. Order is load-bearing: the specific shapes (bracketed IDs,
// quoted series, trailing downloader IDs) must win over the generic
// dash-split fallback, and the 11-character bracket form over the loose
// bracket form.
var cascade = []cascadeRule{
	{
		pattern: PatternYouTubeBrackets,
		re:      regexp.MustCompile(`^(.+?)\s*-\s*(.+?)\s*\[[a-zA-Z0-9_-]{11}\]$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2])
		},
	},
	{
		pattern: PatternQuotedSeriesEpisode,
		re:      regexp.MustCompile(`^(.+?)\s*'(.+?)'\s*([IVXLCDM]+)\s+-\s+(.+?)-{1,2}[a-zA-Z0-9_-]{10,11}$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2]) + " " + display(m[3]) + " - " + display(m[4])
		},
	},
	{
		pattern: PatternQuotedSeriesEpisodeNoSubtitle,
		re:      regexp.MustCompile(`^(.+?)\s*'(.+?)'\s*([IVXLCDM]+)-[a-zA-Z0-9_-]{11}$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2]) + " " + display(m[3])
		},
	},
	{
		pattern: PatternYtdlpDash,
		re:      regexp.MustCompile(`^(.+?)\s*-\s*(.+?)-[a-zA-Z0-9_-]{11}$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2])
		},
	},
	{
		pattern: PatternQuotedTitle,
		re:      regexp.MustCompile(`^(.+?)\s*'(.+?)'\s*(.+?)?(?:-[a-zA-Z0-9_-]{11})?$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			title := display(m[2])
			if m[3] != "" {
				subtitle := strings.TrimSpace(trailingVideoID.ReplaceAllString(display(m[3]), ""))
				if subtitle != "" {
					title += " - " + subtitle
				}
			}
			r.Title = title
		},
	},
	{
		pattern: PatternDailymotionBrackets,
		re:      regexp.MustCompile(`^(.+?)\s*-\s*(.+?)\s*\[[a-zA-Z0-9]+\]$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2])
		},
	},
	{
		pattern: PatternLiveAuFestival,
		re:      regexp.MustCompile(`(?i)^(.+?)\s*-\s*au\s+(.+?)\s+([0-9]{4})\s+hdtv`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = "Live at " + display(m[2]) + " " + m[3]
			r.Live = true
		},
	},
	{
		pattern: PatternDottedLive,
		re:      regexp.MustCompile(`(?i)^([^.]+(?:\.[^.]+)*?)\.?-\.?live\.(.+?)\.web`),
		build: func(m []string, r *Result) {
			r.Artist = displayDotted(m[1])
			r.Title = "Live - " + displayDotted(m[2])
			r.Live = true
		},
	},
	{
		pattern: PatternSimpleDash,
		re:      regexp.MustCompile(`^(.+?)\s*-\s*(.+)$`),
		build: func(m []string, r *Result) {
			r.Artist = display(m[1])
			r.Title = display(m[2])
		},
	},
}

// display turns a shielded capture into display text: trim, restore
// apostrophes, then normalize for display.
func display(fragment string) string {
	return textutil.CleanName(textutil.RestoreApostrophes(strings.TrimSpace(fragment)))
}

// displayDotted additionally converts dot separators to spaces first.
func displayDotted(fragment string) string {
	return display(strings.ReplaceAll(fragment, ".", " "))
}
