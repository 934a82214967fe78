package search

import (
	"sort"
	"strings"
	"time"

	"github.com/kunalnano/yt-search/pkg/core"
)

// Duration bucket bounds in seconds: short < 240, medium 240-1200
// inclusive, long > 1200.
const (
	shortUpperBound = 240
	longLowerBound  = 1200
)

// Recency windows for the date facet.
var dateWindows = map[core.DateFilter]time.Duration{
	core.DateToday: 24 * time.Hour,
	core.DateWeek:  7 * 24 * time.Hour,
	core.DateMonth: 31 * 24 * time.Hour,
	core.DateYear:  366 * 24 * time.Hour,
}

// ApplyFilters returns the records matching every active facet, evaluated
// at now. Records with an unknown duration or publish time are excluded
// from the corresponding explicit filter but pass when that facet is unset.
// The HD facet has no reliable per-record signal in the page, so it is a
// best-effort no-op here; the encoder already narrows remotely. The channel
// constraint is an exact, case-insensitive name match.
func ApplyFilters(videos []core.Video, channel string, f core.FilterSet, now time.Time) []core.Video {
	out := make([]core.Video, 0, len(videos))
	for _, v := range videos {
		if !matchesDuration(v, f.Duration) {
			continue
		}
		if !matchesDate(v, f.Date, now) {
			continue
		}
		if channel != "" && !strings.EqualFold(v.Channel, channel) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesDuration(v core.Video, d core.DurationFilter) bool {
	if d == core.DurationAny {
		return true
	}
	if !v.KnownDuration() {
		return false
	}
	switch d {
	case core.DurationShort:
		return v.Duration < shortUpperBound
	case core.DurationMedium:
		return v.Duration >= shortUpperBound && v.Duration <= longLowerBound
	case core.DurationLong:
		return v.Duration > longLowerBound
	default:
		return true
	}
}

func matchesDate(v core.Video, d core.DateFilter, now time.Time) bool {
	if d == core.DateAny {
		return true
	}
	if !v.KnownAge() {
		return false
	}
	window, ok := dateWindows[d]
	if !ok {
		return true
	}
	return now.Sub(v.PublishedAt) < window
}

// SortVideos orders the records in place. The sort is stable: equal keys
// keep their prior relative order. SortRelevance trusts the source's own
// ordering and does not re-sort at all.
func SortVideos(videos []core.Video, order core.SortOrder) {
	switch order {
	case core.SortViews:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Views > videos[j].Views
		})
	case core.SortDate:
		// Most recent first; unknown publish times sink to the end.
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].PublishedAt.After(videos[j].PublishedAt)
		})
	case core.SortRelevance:
	}
}
