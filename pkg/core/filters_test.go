package core

import "testing"

func TestParseDurationFilter(t *testing.T) {
	if _, err := ParseDurationFilter("shrot"); err == nil {
		t.Error("expected error for invalid duration value")
	}
	d, err := ParseDurationFilter("LONG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != DurationLong {
		t.Errorf("got %v, want DurationLong", d)
	}
}

func TestParseDateFilter(t *testing.T) {
	if _, err := ParseDateFilter("yesterday"); err == nil {
		t.Error("expected error for invalid date value")
	}
	d, err := ParseDateFilter("week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != DateWeek {
		t.Errorf("got %v, want DateWeek", d)
	}
}

func TestParseSortOrder(t *testing.T) {
	if _, err := ParseSortOrder("rating"); err == nil {
		t.Error("expected error for unsupported sort value")
	}
	s, err := ParseSortOrder("relevance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != SortRelevance {
		t.Errorf("got %v, want SortRelevance", s)
	}
}

func TestEffectiveSortDefaultsToViews(t *testing.T) {
	var f FilterSet
	if f.EffectiveSort() != SortViews {
		t.Error("unset sort should resolve to views")
	}
	f.Sort = SortRelevance
	if f.EffectiveSort() != SortRelevance {
		t.Error("explicit sort should win over the default")
	}
}

func TestFacetsAreOrthogonal(t *testing.T) {
	// Setting one facet never resets another.
	f := FilterSet{Sort: SortDate}
	f.Duration = DurationLong
	if f.Sort != SortDate {
		t.Error("setting duration cleared sort")
	}
	f.Date = DateMonth
	if f.Duration != DurationLong || f.Sort != SortDate {
		t.Error("setting date cleared another facet")
	}
	f.HD = true
	if f.Duration != DurationLong || f.Date != DateMonth || f.Sort != SortDate {
		t.Error("setting hd cleared another facet")
	}
}

func TestMergeFillsOnlyUnsetFacets(t *testing.T) {
	explicit := FilterSet{Sort: SortRelevance}
	inferred := FilterSet{Sort: SortViews, Duration: DurationMedium}

	merged := explicit.Merge(inferred)
	if merged.Sort != SortRelevance {
		t.Error("inference overrode an explicitly set sort")
	}
	if merged.Duration != DurationMedium {
		t.Error("inference should fill the unset duration facet")
	}
}

func TestFilterSetString(t *testing.T) {
	if got := (FilterSet{}).String(); got != "none" {
		t.Errorf("empty set String() = %q", got)
	}
	f := FilterSet{Duration: DurationLong, Sort: SortDate, HD: true}
	if got := f.String(); got != "duration=long, sort=date, hd" {
		t.Errorf("String() = %q", got)
	}
}
