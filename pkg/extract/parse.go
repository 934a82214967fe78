package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// now is swappable so age parsing is deterministic in tests.
var now = time.Now

// ParseViewCount converts view-count text to an integer. Abbreviated
// suffixes (K, M, B, case-insensitive, optional decimal point) multiply the
// numeric prefix by 1e3/1e6/1e9, truncating to an integer. Commas and
// "views"/"watching" noise are stripped. Unparseable input yields 0.
func ParseViewCount(s string) int64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ",", "")
	for _, noise := range []string{"views", "view", "watching"} {
		s = strings.TrimSpace(strings.TrimSuffix(s, noise))
	}
	if s == "" {
		return 0
	}

	mult := int64(1)
	switch s[len(s)-1] {
	case 'k':
		mult = 1_000
		s = s[:len(s)-1]
	case 'm':
		mult = 1_000_000
		s = s[:len(s)-1]
	case 'b':
		mult = 1_000_000_000
		s = s[:len(s)-1]
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return int64(f * float64(mult))
}

// ParseDuration converts "MM:SS" or "H:MM:SS" text to total seconds.
// Unparseable input yields 0, which downstream treats as unknown.
func ParseDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}

var agePattern = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)

// ParseAge converts relative-age text like "3 weeks ago" (or "Streamed 2
// days ago") into an approximate timestamp. Months count as 30 days and
// years as 365; the result feeds coarse recency windows, not calendars.
// Unparseable input yields the zero time, meaning unknown.
func ParseAge(s string) time.Time {
	m := agePattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return time.Time{}
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}
	}

	var unit time.Duration
	switch m[2] {
	case "second":
		unit = time.Second
	case "minute":
		unit = time.Minute
	case "hour":
		unit = time.Hour
	case "day":
		unit = 24 * time.Hour
	case "week":
		unit = 7 * 24 * time.Hour
	case "month":
		unit = 30 * 24 * time.Hour
	case "year":
		unit = 365 * 24 * time.Hour
	default:
		return time.Time{}
	}

	return now().Add(-time.Duration(n) * unit)
}
