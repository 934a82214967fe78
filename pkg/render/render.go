// Package render turns the current result set into plain structured rows:
// rank, display strings and an emphasis tier per record. Terminal coloring,
// hyperlink escapes and column layout are the caller's concern; this
// package only decides which fields appear and how their text reads.
package render

import (
	"fmt"
	"strings"

	"github.com/kunalnano/yt-search/pkg/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one presentable result line.
type Row struct {
	Rank     int
	Title    string
	Channel  string
	Verified bool
	// Badge is "✓" for verified channels, empty otherwise.
	Badge string
	// Views is the compact display form of the parsed count.
	Views    string
	Age      string
	Duration string
	URL      string
	// Tier is the emphasis bucket (1-4), recomputed from the view count
	// on every render.
	Tier        int
	Description string
}

// Rows builds display rows for an already filtered and sorted result set.
// Ranks are 1-based and only valid against this exact sequence.
func Rows(videos []core.Video, showDescriptions bool) []Row {
	rows := make([]Row, 0, len(videos))
	for i, v := range videos {
		row := Row{
			Rank:     i + 1,
			Title:    v.Title,
			Channel:  v.Channel,
			Verified: v.Verified,
			Views:    FormatViews(v.Views),
			Age:      orNA(v.AgeText),
			Duration: orNA(v.DurationText),
			URL:      v.WatchURL(),
			Tier:     v.Tier(),
		}
		if v.Verified {
			row.Badge = "✓"
		}
		if showDescriptions {
			row.Description = v.Description
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatViews renders a count in the compact form results tables use:
// 3.2B, 2.1M, 950K, plain digits below a thousand. Bucket bounds sit where
// the rounding rolls over, so 999_999 is "1M" rather than "1000K".
func FormatViews(n int64) string {
	switch {
	case n >= 999_950_000:
		return trimZero(fmt.Sprintf("%.1fB", float64(n)/1_000_000_000))
	case n >= 999_500:
		return trimZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// trimZero turns "3.0B" into "3B".
func trimZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}

var printer = message.NewPrinter(language.English)

// FormatExactViews renders the full count with digit grouping for the
// detailed info view, e.g. 2,147,483,647.
func FormatExactViews(n int64) string {
	return printer.Sprintf("%d", n)
}

// Truncate shortens s to max runes, ending in ".." when cut. Rune-safe so
// multi-byte titles never split mid-character.
func Truncate(s string, max int) string {
	if max <= 2 {
		max = 3
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-2]) + ".."
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
