// Package core holds the domain types shared by the search pipeline: the
// Video record produced by extraction, the immutable Query, and the FilterSet
// of tagged facets. Nothing here talks to the network or the terminal.
package core

import "time"

// Video is a single search result extracted from the results page. Records
// are immutable once extracted; a new search replaces the whole set.
type Video struct {
	// ID is the opaque video identifier. Extraction drops fragments
	// without one, so ID is never empty on a live record.
	ID string

	Title    string
	Channel  string
	Verified bool

	// Views is the parsed view count; 0 when the count text could not be
	// parsed. ViewsText keeps the raw text for display.
	Views     int64
	ViewsText string

	// Duration is the length in seconds; 0 means unknown. Unknown
	// durations are excluded from every explicit duration filter.
	Duration     int
	DurationText string

	// PublishedAt is approximate, derived from relative-age text like
	// "3 weeks ago". The zero time means unknown. AgeText keeps the raw
	// text for display.
	PublishedAt time.Time
	AgeText     string

	Description string
}

// WatchURL returns the canonical short link for the video.
func (v Video) WatchURL() string {
	return "https://youtu.be/" + v.ID
}

// FullURL returns the long watch URL, used when opening a browser.
func (v Video) FullURL() string {
	return "https://youtube.com/watch?v=" + v.ID
}

// Tier buckets the view count into a display emphasis level (1-4). It is a
// pure function of Views, recomputed on every render and never stored.
func (v Video) Tier() int {
	switch {
	case v.Views >= 1_000_000_000:
		return 4
	case v.Views >= 1_000_000:
		return 3
	case v.Views >= 100_000:
		return 2
	default:
		return 1
	}
}

// KnownDuration reports whether the duration was successfully parsed.
func (v Video) KnownDuration() bool {
	return v.Duration > 0
}

// KnownAge reports whether the publish age was successfully parsed.
func (v Video) KnownAge() bool {
	return !v.PublishedAt.IsZero()
}
