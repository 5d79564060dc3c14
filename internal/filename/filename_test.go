package filename

import "testing"

func TestParseCascade(t *testing.T) {
	cases := []struct {
		input   string
		artist  string
		title   string
		live    bool
		pattern Pattern
		group   string
	}{
		{
			input:   "Artist - Title-oW0VovnyjPY.mp4",
			artist:  "Artist",
			title:   "Title",
			pattern: PatternYtdlpDash,
		},
		{
			input:   "Artist - Title (info) [CsHiG-43Fzg].mp4",
			artist:  "Artist",
			title:   "Title (info)",
			pattern: PatternYouTubeBrackets,
		},
		{
			input:   "FBI - ON A LE STYLE QUI CLAQUE [x28l79].mp4",
			artist:  "FBI",
			title:   "ON A LE STYLE QUI CLAQUE",
			pattern: PatternDailymotionBrackets,
		},
		{
			input:   "Charlotte de Witte 'New Form' II - Return To Nowhere-EiEFdnU6KWY.mp4",
			artist:  "Charlotte De Witte",
			title:   "New Form II - Return To Nowhere",
			pattern: PatternQuotedSeriesEpisode,
		},
		{
			input:   "Charlotte de Witte 'New Form' IV - Formula--G_nX3n_sog.webm",
			artist:  "Charlotte De Witte",
			title:   "New Form IV - Formula",
			pattern: PatternQuotedSeriesEpisode,
		},
		{
			input:   "Charlotte de Witte 'New Form' I-3cOOu52n26c.webm",
			artist:  "Charlotte De Witte",
			title:   "New Form I",
			pattern: PatternQuotedSeriesEpisodeNoSubtitle,
		},
		{
			input:   "Justice 'Cross' Genesis-AbCdEfGhIjK.mp4",
			artist:  "Justice",
			title:   "Cross - Genesis",
			pattern: PatternQuotedTitle,
		},
		{
			input:   "Justice 'Cross'.mp4",
			artist:  "Justice",
			title:   "Cross",
			pattern: PatternQuotedTitle,
		},
		{
			input:   "darkthrone-too_old_too_cold-dvdrip-xvid-2006-srp.avi",
			artist:  "Darkthrone",
			title:   "Too Old Too Cold",
			pattern: PatternSimpleDash,
			group:   "srp",
		},
		{
			input:   "Band - Song-HDTV-XviD-2006-GRP.avi",
			artist:  "Band",
			title:   "Song",
			live:    true,
			pattern: PatternSimpleDash,
			group:   "GRP",
		},
		{
			input:   "Shaka Ponk - Au Hellfest 2022 HDTV x264.mp4",
			artist:  "Shaka Ponk",
			title:   "Live at Hellfest 2022",
			live:    true,
			pattern: PatternLiveAuFestival,
		},
		{
			input:   "Justice - au printemps 2019 hdtv web avc.mkv",
			artist:  "Justice",
			title:   "Live at Printemps 2019",
			live:    true,
			pattern: PatternLiveAuFestival,
		},
		{
			input:   "Napalm.Death.-.Live.Deathfist.2006.WEB.PDTV.XviD-BLAG.mkv",
			artist:  "Napalm Death",
			title:   "Live - Deathfist 2006",
			live:    true,
			pattern: PatternDottedLive,
			group:   "BLAG",
		},
		{
			input:   "Bryan Adams - Ain't Gonna Cry-AbCdEfGhIjK.mp4",
			artist:  "Bryan Adams",
			title:   "Ain't Gonna Cry",
			pattern: PatternYtdlpDash,
		},
		{
			input:   "Guns N' Roses - Patience.mp4",
			artist:  "Guns N' Roses",
			title:   "Patience",
			pattern: PatternSimpleDash,
		},
		{
			input:   "Metallica - Live in Moscow.mp4",
			artist:  "Metallica",
			title:   "Live In Moscow",
			live:    true,
			pattern: PatternSimpleDash,
		},
		{
			input:   "'cause I Said So.mp4",
			title:   "'cause I Said So",
			pattern: PatternNone,
		},
		{
			input:   "Random Clip.mp4",
			title:   "Random Clip",
			pattern: PatternNone,
		},
	}
	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Artist != tc.artist || got.Title != tc.title || got.Live != tc.live ||
			got.Pattern != tc.pattern || got.ReleaseGroup != tc.group {
			t.Errorf("Parse(%q) = %+v, want artist=%q title=%q live=%v pattern=%s group=%q",
				tc.input, got, tc.artist, tc.title, tc.live, tc.pattern, tc.group)
		}
	}
}

func TestParseTitleNeverEmpty(t *testing.T) {
	inputs := []string{"_", "___.mp4", "-", "...", ".mp4", "'", "x"}
	for _, input := range inputs {
		if got := Parse(input); got.Title == "" {
			t.Errorf("Parse(%q) produced empty title", input)
		}
	}
}

func TestParseLiveIndicators(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"Artist - Concert Clip.mp4", true},
		{"Artist - Glastonbury Festival Set.mp4", true},
		{"Artist - Song WEB AVC.mkv", true},
		{"Artist - Alive.mp4", false},
		{"Artist - Au Revoir.mp4", false},
		{"Artist - auditorium 2019.mp4", false},
		{"Artist - Song WEB h264.mp4", false},
	}
	for _, tc := range cases {
		if got := Parse(tc.input); got.Live != tc.want {
			t.Errorf("Parse(%q).Live = %v, want %v", tc.input, got.Live, tc.want)
		}
	}
}

func TestPatternString(t *testing.T) {
	cases := []struct {
		pattern Pattern
		want    string
	}{
		{PatternNone, "none"},
		{PatternYouTubeBrackets, "youtube_brackets"},
		{PatternQuotedSeriesEpisode, "quoted_series_episode"},
		{PatternQuotedSeriesEpisodeNoSubtitle, "quoted_series_episode_no_subtitle"},
		{PatternYtdlpDash, "ytdlp_dash"},
		{PatternQuotedTitle, "quoted_title"},
		{PatternDailymotionBrackets, "dailymotion_brackets"},
		{PatternLiveAuFestival, "live_au_festival"},
		{PatternDottedLive, "dotted_live"},
		{PatternSimpleDash, "simple_dash"},
	}
	for _, tc := range cases {
		if got := tc.pattern.String(); got != tc.want {
			t.Errorf("Pattern(%d).String() = %q, want %q", int(tc.pattern), got, tc.want)
		}
	}
}
