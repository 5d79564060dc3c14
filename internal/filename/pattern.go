package filename

// Pattern identifies which cascade alternative matched a filename stem.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternYouTubeBrackets
	PatternQuotedSeriesEpisode
	PatternQuotedSeriesEpisodeNoSubtitle
	PatternYtdlpDash
	PatternQuotedTitle
	PatternDailymotionBrackets
	PatternLiveAuFestival
	PatternDottedLive
	PatternSimpleDash
)

func (p Pattern) String() string {
	switch p {
	case PatternYouTubeBrackets:
		return "youtube_brackets"
	case PatternQuotedSeriesEpisode:
		return "quoted_series_episode"
	case PatternQuotedSeriesEpisodeNoSubtitle:
		return "quoted_series_episode_no_subtitle"
	case PatternYtdlpDash:
		return "ytdlp_dash"
	case PatternQuotedTitle:
		return "quoted_title"
	case PatternDailymotionBrackets:
		return "dailymotion_brackets"
	case PatternLiveAuFestival:
		return "live_au_festival"
	case PatternDottedLive:
		return "dotted_live"
	case PatternSimpleDash:
		return "simple_dash"
	default:
		return "none"
	}
}
