package search

import (
	"testing"
	"time"

	"github.com/kunalnano/yt-search/pkg/core"
)

func TestDurationBuckets(t *testing.T) {
	now := time.Now()
	videos := []core.Video{
		{ID: "s", Duration: 239},
		{ID: "m-low", Duration: 240},
		{ID: "m-high", Duration: 1200},
		{ID: "l", Duration: 1201},
		{ID: "unknown", Duration: 0},
	}

	tests := []struct {
		filter core.DurationFilter
		want   []string
	}{
		{core.DurationShort, []string{"s"}},
		{core.DurationMedium, []string{"m-low", "m-high"}},
		{core.DurationLong, []string{"l"}},
		{core.DurationAny, []string{"s", "m-low", "m-high", "l", "unknown"}},
	}
	for _, tt := range tests {
		got := ApplyFilters(videos, "", core.FilterSet{Duration: tt.filter}, now)
		ids := make([]string, len(got))
		for i, v := range got {
			ids[i] = v.ID
		}
		if len(ids) != len(tt.want) {
			t.Errorf("%v: got %v, want %v", tt.filter, ids, tt.want)
			continue
		}
		for i := range ids {
			if ids[i] != tt.want[i] {
				t.Errorf("%v: got %v, want %v", tt.filter, ids, tt.want)
				break
			}
		}
	}
}

func TestUnknownDurationExcludedFromExplicitBuckets(t *testing.T) {
	now := time.Now()
	videos := []core.Video{{ID: "unknown", Duration: 0}}
	for _, f := range []core.DurationFilter{core.DurationShort, core.DurationMedium, core.DurationLong} {
		if got := ApplyFilters(videos, "", core.FilterSet{Duration: f}, now); len(got) != 0 {
			t.Errorf("unknown duration must not match %v", f)
		}
	}
}

func TestDateWindows(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	videos := []core.Video{
		{ID: "hours", PublishedAt: now.Add(-6 * time.Hour)},
		{ID: "days", PublishedAt: now.Add(-3 * 24 * time.Hour)},
		{ID: "weeks", PublishedAt: now.Add(-20 * 24 * time.Hour)},
		{ID: "months", PublishedAt: now.Add(-200 * 24 * time.Hour)},
		{ID: "old", PublishedAt: now.Add(-2 * 366 * 24 * time.Hour)},
		{ID: "unknown"},
	}

	tests := []struct {
		filter core.DateFilter
		want   int
	}{
		{core.DateToday, 1},
		{core.DateWeek, 2},
		{core.DateMonth, 3},
		{core.DateYear, 4},
		{core.DateAny, 6},
	}
	for _, tt := range tests {
		got := ApplyFilters(videos, "", core.FilterSet{Date: tt.filter}, now)
		if len(got) != tt.want {
			t.Errorf("%v: got %d records, want %d", tt.filter, len(got), tt.want)
		}
	}
}

func TestChannelConstraintIsExactCaseInsensitive(t *testing.T) {
	now := time.Now()
	videos := []core.Video{
		{ID: "a", Channel: "Fireship"},
		{ID: "b", Channel: "Fireship Clips"},
		{ID: "c", Channel: "fireship"},
	}
	got := ApplyFilters(videos, "fireship", core.FilterSet{}, now)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 (exact match only)", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("unexpected records: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestHDFilterIsBestEffortNoOp(t *testing.T) {
	now := time.Now()
	videos := []core.Video{{ID: "a"}, {ID: "b"}}
	got := ApplyFilters(videos, "", core.FilterSet{HD: true}, now)
	if len(got) != 2 {
		t.Errorf("hd has no per-record signal and must not drop records locally")
	}
}

func TestSortViewsDescendingAndStable(t *testing.T) {
	videos := []core.Video{
		{ID: "tie-1", Views: 500},
		{ID: "big", Views: 9000},
		{ID: "tie-2", Views: 500},
		{ID: "small", Views: 1},
	}
	SortVideos(videos, core.SortViews)

	wantOrder := []string{"big", "tie-1", "tie-2", "small"}
	for i, want := range wantOrder {
		if videos[i].ID != want {
			t.Fatalf("position %d = %q, want %q (ties must keep prior order)", i, videos[i].ID, want)
		}
	}
}

func TestSortDateMostRecentFirst(t *testing.T) {
	now := time.Now()
	videos := []core.Video{
		{ID: "old", PublishedAt: now.Add(-48 * time.Hour)},
		{ID: "unknown"},
		{ID: "fresh", PublishedAt: now.Add(-time.Hour)},
	}
	SortVideos(videos, core.SortDate)
	if videos[0].ID != "fresh" || videos[1].ID != "old" {
		t.Errorf("order = %v, %v, %v", videos[0].ID, videos[1].ID, videos[2].ID)
	}
	if videos[2].ID != "unknown" {
		t.Error("unknown publish times should sink to the end")
	}
}

func TestSortRelevancePreservesSourceOrder(t *testing.T) {
	videos := []core.Video{
		{ID: "1", Views: 5},
		{ID: "2", Views: 9000},
		{ID: "3", Views: 1},
	}
	SortVideos(videos, core.SortRelevance)
	for i, want := range []string{"1", "2", "3"} {
		if videos[i].ID != want {
			t.Fatal("relevance means trusting the source order: no re-sort")
		}
	}
}
