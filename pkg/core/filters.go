package core

import (
	"fmt"
	"strings"
)

// DurationFilter selects a video-length bucket.
type DurationFilter int

const (
	DurationAny DurationFilter = iota
	DurationShort
	DurationMedium
	DurationLong
)

func (d DurationFilter) String() string {
	switch d {
	case DurationShort:
		return "short"
	case DurationMedium:
		return "medium"
	case DurationLong:
		return "long"
	default:
		return "any"
	}
}

// ParseDurationFilter rejects unknown values so a typo in "filter duration
// shrot" fails at the prompt instead of silently matching nothing.
func ParseDurationFilter(s string) (DurationFilter, error) {
	switch strings.ToLower(s) {
	case "short":
		return DurationShort, nil
	case "medium":
		return DurationMedium, nil
	case "long":
		return DurationLong, nil
	case "any", "":
		return DurationAny, nil
	default:
		return DurationAny, fmt.Errorf("invalid duration filter %q (want short, medium or long)", s)
	}
}

// DateFilter selects an upload recency window.
type DateFilter int

const (
	DateAny DateFilter = iota
	DateToday
	DateWeek
	DateMonth
	DateYear
)

func (d DateFilter) String() string {
	switch d {
	case DateToday:
		return "today"
	case DateWeek:
		return "week"
	case DateMonth:
		return "month"
	case DateYear:
		return "year"
	default:
		return "any"
	}
}

func ParseDateFilter(s string) (DateFilter, error) {
	switch strings.ToLower(s) {
	case "today":
		return DateToday, nil
	case "week":
		return DateWeek, nil
	case "month":
		return DateMonth, nil
	case "year":
		return DateYear, nil
	case "any", "":
		return DateAny, nil
	default:
		return DateAny, fmt.Errorf("invalid date filter %q (want today, week, month or year)", s)
	}
}

// SortOrder selects the result ordering. SortUnset means "nobody asked":
// the effective order is then SortViews, the whole point of this client.
type SortOrder int

const (
	SortUnset SortOrder = iota
	SortViews
	SortDate
	SortRelevance
)

func (s SortOrder) String() string {
	switch s {
	case SortViews:
		return "views"
	case SortDate:
		return "date"
	case SortRelevance:
		return "relevance"
	default:
		return "views"
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "views":
		return SortViews, nil
	case "date":
		return SortDate, nil
	case "relevance":
		return SortRelevance, nil
	case "":
		return SortUnset, nil
	default:
		return SortUnset, fmt.Errorf("invalid sort order %q (want views, date or relevance)", s)
	}
}

// FilterSet is a fixed-shape record of independent facets. Facets are
// orthogonal: setting one never clears another.
type FilterSet struct {
	Duration DurationFilter
	Date     DateFilter
	Sort     SortOrder
	HD       bool
}

// EffectiveSort resolves the default: an unset sort means views-descending.
func (f FilterSet) EffectiveSort() SortOrder {
	if f.Sort == SortUnset {
		return SortViews
	}
	return f.Sort
}

// IsZero reports whether no facet has been set.
func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}

// Merge fills the facets left unset in f from inferred. Facets already set
// in f always win; inference never overrides an explicit choice.
func (f FilterSet) Merge(inferred FilterSet) FilterSet {
	out := f
	if out.Duration == DurationAny {
		out.Duration = inferred.Duration
	}
	if out.Date == DateAny {
		out.Date = inferred.Date
	}
	if out.Sort == SortUnset {
		out.Sort = inferred.Sort
	}
	if !out.HD {
		out.HD = inferred.HD
	}
	return out
}

// String renders the active facets for the status line, e.g.
// "duration=long, sort=date, hd". Returns "none" when nothing is set.
func (f FilterSet) String() string {
	var parts []string
	if f.Duration != DurationAny {
		parts = append(parts, "duration="+f.Duration.String())
	}
	if f.Date != DateAny {
		parts = append(parts, "date="+f.Date.String())
	}
	if f.Sort != SortUnset {
		parts = append(parts, "sort="+f.Sort.String())
	}
	if f.HD {
		parts = append(parts, "hd")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
