// Package extract turns a raw results page into Video records. It is the
// only package coupled to the page format: the results markup embeds a
// `var ytInitialData = {...};` script blob whose JSON carries the result
// list. When the format shifts, this package is the blast radius.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/log"
)

const initialDataMarker = "var ytInitialData = "

var logger = log.ForComponent("extract")

// Stats reports how extraction went. Degraded records made it into the
// result set with one or more fields defaulted; Dropped fragments had no
// video identifier and were discarded entirely.
type Stats struct {
	Fragments int
	Dropped   int
	Degraded  int
}

// Extract parses the payload into Video records in source order. Every
// field is independently fallible: a missing or malformed field degrades to
// its default rather than discarding the record. Only a fragment without an
// identifier is dropped, since a record that cannot be opened or linked is
// useless.
func Extract(payload string) ([]core.Video, Stats, error) {
	var stats Stats

	start := strings.Index(payload, initialDataMarker)
	if start < 0 {
		return nil, stats, fmt.Errorf("no initial data blob in payload")
	}

	// Decode exactly one JSON value starting at the blob; the decoder
	// stops at the closing brace, so the trailing ";" and the rest of the
	// page are ignored.
	var data initialData
	dec := json.NewDecoder(strings.NewReader(payload[start+len(initialDataMarker):]))
	if err := dec.Decode(&data); err != nil {
		return nil, stats, fmt.Errorf("decoding initial data: %w", err)
	}

	var videos []core.Video
	sections := data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents
	for _, section := range sections {
		if section.ItemSectionRenderer == nil {
			continue
		}
		for _, item := range section.ItemSectionRenderer.Contents {
			if item.VideoRenderer == nil {
				continue
			}
			stats.Fragments++

			video, degraded, ok := buildVideo(item.VideoRenderer)
			if !ok {
				stats.Dropped++
				continue
			}
			if degraded {
				stats.Degraded++
			}
			videos = append(videos, video)
		}
	}

	logger.Debugf("extracted %d records (%d fragments, %d dropped, %d degraded)",
		len(videos), stats.Fragments, stats.Dropped, stats.Degraded)
	return videos, stats, nil
}

// buildVideo converts one videoRenderer fragment. degraded is true when any
// field other than the identifier fell back to its default; ok is false when
// the fragment has no identifier at all.
func buildVideo(vr *videoRenderer) (v core.Video, degraded, ok bool) {
	if vr.VideoID == "" {
		return core.Video{}, false, false
	}

	title := vr.Title.text()
	if title == "" {
		title = "Unknown"
		degraded = true
	}

	channel := vr.OwnerText.text()
	if channel == "" {
		channel = "Unknown"
		degraded = true
	}

	viewsText := vr.ViewCountText.SimpleText
	views := ParseViewCount(viewsText)
	if viewsText != "" && views == 0 && !strings.HasPrefix(strings.TrimSpace(viewsText), "0") {
		// Had text but could not make sense of it.
		degraded = true
	}

	durationText := vr.LengthText.SimpleText
	duration := ParseDuration(durationText)
	if durationText != "" && duration == 0 {
		degraded = true
	}

	ageText := vr.PublishedTimeText.SimpleText
	publishedAt := ParseAge(ageText)

	return core.Video{
		ID:           vr.VideoID,
		Title:        title,
		Channel:      channel,
		Verified:     vr.verified(),
		Views:        views,
		ViewsText:    viewsText,
		Duration:     duration,
		DurationText: durationText,
		PublishedAt:  publishedAt,
		AgeText:      ageText,
		Description:  vr.snippet(),
	}, degraded, true
}
