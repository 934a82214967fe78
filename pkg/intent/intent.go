// Package intent infers unset filter facets from query text, so "quick
// python tips" favors short videos and "latest rust release" sorts by date
// without the user typing a single filter command.
package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kunalnano/yt-search/pkg/core"
)

// now is swappable for deterministic year detection in tests.
var now = time.Now

var (
	tutorialWords = []string{"tutorial", "how to", "learn", "beginner", "course", "guide", "explained"}
	musicWords    = []string{"music", "song", "album", "lyrics", "official video", "official audio"}
	recencyWords  = []string{"latest", "new", "recent", "today"}
	shortWords    = []string{"quick", "short"}
	longWords     = []string{"full", "complete course"}

	yearPattern = regexp.MustCompile(`\b(\d{4})\b`)
)

// Analyze inspects the raw query and returns the inferred facets. Facets it
// has no opinion on stay unset; the caller merges the result into the
// explicit FilterSet with core.FilterSet.Merge, so inference never overrides
// a facet the user chose. The query text itself is left intact: signal words
// like "tutorial" are meaningful literal search terms too.
func Analyze(raw string) core.FilterSet {
	var f core.FilterSet
	q := strings.ToLower(raw)

	// Duration signals are mutually exclusive; the most specific match
	// wins, so "quick tutorial" is short, not medium.
	switch {
	case containsAny(q, shortWords):
		f.Duration = core.DurationShort
	case containsAny(q, longWords):
		f.Duration = core.DurationLong
	case containsAny(q, tutorialWords):
		f.Duration = core.DurationMedium
	}

	// Music vocabulary would select a music category if the retrieval
	// surface exposed one; the results page does not, so it is a no-op
	// kept only to document the signal.
	_ = containsAny(q, musicWords)

	if containsAny(q, recencyWords) || mentionsCurrentYear(raw) {
		f.Sort = core.SortDate
	}

	// "best"/"top" reaffirms the popularity default. Meaningful because
	// search resets the filter set: it beats nothing, but documents the
	// user's intent when a stale relevance sort would otherwise be typed
	// back in by hand.
	if containsAny(q, []string{"best", "top"}) && f.Sort == core.SortUnset {
		f.Sort = core.SortViews
	}

	return f
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// mentionsCurrentYear reports whether the query names the current or next
// calendar year. Older years are treated as topical terms ("summer of 69"),
// not recency signals.
func mentionsCurrentYear(raw string) bool {
	thisYear := now().Year()
	for _, m := range yearPattern.FindAllStringSubmatch(raw, -1) {
		y, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if y == thisYear || y == thisYear+1 {
			return true
		}
	}
	return false
}
