package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"cratedig/internal/classify"
	"cratedig/internal/scan"
)

// TableOptions adjusts table rendering.
type TableOptions struct {
	// ForceStyled renders with the rounded style even when the writer is
	// not a terminal.
	ForceStyled bool
}

var sections = []struct {
	title    string
	category classify.Category
}{
	{"MUSIC VIDEOS", classify.CategoryMusicVideo},
	{"LIVE SETS (Full concerts/DJ sets)", classify.CategoryLiveSet},
	{"LIVE PERFORMANCES (Single songs)", classify.CategoryLivePerformance},
	{"UNKNOWN/UNCLASSIFIED", classify.CategoryUnknown},
}

// WriteTable renders records grouped by classification. Empty sections are
// skipped; the summary always prints. Terminal writers get the rounded
// style, everything else plain ASCII.
func WriteTable(w io.Writer, records []scan.Record, opts TableOptions) error {
	styled := opts.ForceStyled || isTerminal(w)

	var b strings.Builder
	b.WriteString("MUSIC VIDEO METADATA EXTRACTION RESULTS\n")

	counts := make(map[classify.Category]int)
	for _, rec := range records {
		counts[rec.Type]++
	}

	for _, section := range sections {
		items := filterByCategory(records, section.category)
		if len(items) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(renderSection(section.title, items, styled))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total files processed: %d\n", len(records))
	fmt.Fprintf(&b, "  Music videos: %d\n", counts[classify.CategoryMusicVideo])
	fmt.Fprintf(&b, "  Live sets: %d\n", counts[classify.CategoryLiveSet])
	fmt.Fprintf(&b, "  Live performances: %d\n", counts[classify.CategoryLivePerformance])
	fmt.Fprintf(&b, "  Unknown: %d\n", counts[classify.CategoryUnknown])

	_, err := io.WriteString(w, b.String())
	return err
}

func filterByCategory(records []scan.Record, category classify.Category) []scan.Record {
	var out []scan.Record
	for _, rec := range records {
		if rec.Type == category {
			out = append(out, rec)
		}
	}
	return out
}

func renderSection(title string, items []scan.Record, styled bool) string {
	tw := table.NewWriter()
	if styled {
		tw.SetStyle(table.StyleRounded)
	}
	tw.SetTitle("%s (%d files)", title, len(items))
	tw.AppendHeader(table.Row{"Artist", "Title", "Duration", "Resolution", "Video", "Audio", "Bitrate", "Size", "Date"})

	for _, item := range items {
		artist := item.Artist
		if artist == "" {
			artist = "Unknown"
		}
		name := item.Title
		if name == "" {
			name = "Unknown"
		}
		tw.AppendRow(table.Row{
			truncate(artist, 24),
			truncate(name, 31),
			item.Duration,
			item.Resolution,
			item.VideoCodec,
			item.AudioCodec,
			item.Bitrate,
			item.Filesize,
			item.FileDate,
		})
	}

	return tw.Render() + "\n"
}

// truncate hard-cuts s to limit runes, no ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
