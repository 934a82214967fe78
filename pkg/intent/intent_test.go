package intent

import (
	"fmt"
	"testing"
	"time"

	"github.com/kunalnano/yt-search/pkg/core"
)

func TestTutorialInfersMediumDuration(t *testing.T) {
	f := Analyze("python tutorial for data science")
	if f.Duration != core.DurationMedium {
		t.Errorf("Duration = %v, want medium", f.Duration)
	}
}

func TestQuickBeatsTutorial(t *testing.T) {
	f := Analyze("quick python tutorial")
	if f.Duration != core.DurationShort {
		t.Errorf("Duration = %v, want short (most specific signal wins)", f.Duration)
	}
}

func TestFullCourseInfersLongDuration(t *testing.T) {
	f := Analyze("complete course linear algebra")
	if f.Duration != core.DurationLong {
		t.Errorf("Duration = %v, want long", f.Duration)
	}
}

func TestRecencyInfersDateSort(t *testing.T) {
	for _, q := range []string{"latest rust release", "new framework overview"} {
		if f := Analyze(q); f.Sort != core.SortDate {
			t.Errorf("Analyze(%q).Sort = %v, want date", q, f.Sort)
		}
	}
}

func TestCurrentYearInfersDateSort(t *testing.T) {
	old := now
	now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { now = old }()

	for year, want := range map[int]core.SortOrder{
		2026: core.SortDate,
		2027: core.SortDate, // next calendar year counts too
		2019: core.SortUnset,
	} {
		f := Analyze(fmt.Sprintf("react tutorial %d", year))
		// "tutorial" also fires; only the sort facet is under test here.
		if f.Sort != want {
			t.Errorf("year %d: Sort = %v, want %v", year, f.Sort, want)
		}
	}
}

func TestBestInfersViewsSort(t *testing.T) {
	f := Analyze("best mechanical keyboards")
	if f.Sort != core.SortViews {
		t.Errorf("Sort = %v, want views", f.Sort)
	}
}

func TestRecencyWinsOverBest(t *testing.T) {
	// Both signals present on the same facet; recency is checked first
	// and "best" only fills a still-unset sort.
	f := Analyze("best new albums")
	if f.Sort != core.SortDate {
		t.Errorf("Sort = %v, want date", f.Sort)
	}
}

func TestMusicIsANoOp(t *testing.T) {
	f := Analyze("queen official audio")
	if !f.IsZero() {
		t.Errorf("music vocabulary should not set any facet, got %v", f)
	}
}

func TestInferenceNeverOverridesExplicitFacet(t *testing.T) {
	explicit := core.FilterSet{Sort: core.SortRelevance}
	merged := explicit.Merge(Analyze("best python tutorial"))
	if merged.Sort != core.SortRelevance {
		t.Errorf("Sort = %v, inference must not override an explicit facet", merged.Sort)
	}
	if merged.Duration != core.DurationMedium {
		t.Errorf("Duration = %v, unset facets should still be filled", merged.Duration)
	}
}
