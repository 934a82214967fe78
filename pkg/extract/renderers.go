package extract

// Typed shapes for the slice of the initial-data JSON we actually read.
// Everything else in the blob is ignored by the decoder.

type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []sectionContent `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type sectionContent struct {
	ItemSectionRenderer *struct {
		Contents []itemContent `json:"contents"`
	} `json:"itemSectionRenderer"`
}

type itemContent struct {
	VideoRenderer *videoRenderer `json:"videoRenderer"`
}

type videoRenderer struct {
	VideoID           string     `json:"videoId"`
	Title             runs       `json:"title"`
	OwnerText         runs       `json:"ownerText"`
	ViewCountText     simpleText `json:"viewCountText"`
	LengthText        simpleText `json:"lengthText"`
	PublishedTimeText simpleText `json:"publishedTimeText"`
	OwnerBadges       []badge    `json:"ownerBadges"`

	DetailedMetadataSnippets []metadataSnippet `json:"detailedMetadataSnippets"`
}

type runs struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

// text concatenates all runs; titles occasionally arrive split across
// several of them.
func (r runs) text() string {
	var b []byte
	for _, run := range r.Runs {
		b = append(b, run.Text...)
	}
	return string(b)
}

type simpleText struct {
	SimpleText string `json:"simpleText"`
}

type badge struct {
	MetadataBadgeRenderer struct {
		Style string `json:"style"`
	} `json:"metadataBadgeRenderer"`
}

const (
	badgeVerified       = "BADGE_STYLE_TYPE_VERIFIED"
	badgeVerifiedArtist = "BADGE_STYLE_TYPE_VERIFIED_ARTIST"
)

// verified is a presence check for a verification badge next to the channel.
func (vr *videoRenderer) verified() bool {
	for _, b := range vr.OwnerBadges {
		if b.MetadataBadgeRenderer.Style == badgeVerified ||
			b.MetadataBadgeRenderer.Style == badgeVerifiedArtist {
			return true
		}
	}
	return false
}

type metadataSnippet struct {
	SnippetText runs `json:"snippetText"`
}

// snippet returns the first description snippet, empty when absent.
func (vr *videoRenderer) snippet() string {
	if len(vr.DetailedMetadataSnippets) == 0 {
		return ""
	}
	return vr.DetailedMetadataSnippets[0].SnippetText.text()
}
