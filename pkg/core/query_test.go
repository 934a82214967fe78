package core

import (
	"reflect"
	"testing"
)

func TestNewQuerySplitsTerms(t *testing.T) {
	q := NewQuery("  python   tutorial ")
	if got := q.String(); got != "python tutorial" {
		t.Errorf("String() = %q", got)
	}
	if q.Exact() {
		t.Error("plain query should not be exact")
	}
}

func TestNewQueryLiftsChannelConstraint(t *testing.T) {
	q := NewQuery("react hooks channel:fireship")
	if got := q.Channel(); got != "fireship" {
		t.Errorf("Channel() = %q", got)
	}
	if got := q.String(); got != "react hooks" {
		t.Errorf("channel token should not remain a literal term, got %q", got)
	}
}

func TestNewExactQuery(t *testing.T) {
	q := NewExactQuery(`"react hooks useState"`)
	if !q.Exact() {
		t.Error("expected exact flag")
	}
	if got := q.String(); got != "react hooks useState" {
		t.Errorf("String() = %q", got)
	}
}

func TestRefineIsAdditive(t *testing.T) {
	q := NewQuery("python tutorial")
	r1 := q.Refine("x")
	r2 := r1.Refine("x")

	want := []string{"python", "tutorial", "x", "x"}
	if !reflect.DeepEqual(r2.Terms(), want) {
		t.Errorf("Terms() = %v, want %v (duplicates kept, order preserved)", r2.Terms(), want)
	}

	// The original query is untouched.
	if got := q.String(); got != "python tutorial" {
		t.Errorf("refine mutated the source query: %q", got)
	}
}

func TestRefineKeepsExactAndChannel(t *testing.T) {
	q := NewExactQuery("react hooks").WithChannel("fireship")
	r := q.Refine("useState")
	if !r.Exact() {
		t.Error("refine dropped the exact flag")
	}
	if r.Channel() != "fireship" {
		t.Error("refine dropped the channel constraint")
	}
}

func TestIsEmpty(t *testing.T) {
	if !NewQuery("").IsEmpty() {
		t.Error("empty input should yield an empty query")
	}
	if NewQuery("channel:veritasium").IsEmpty() {
		t.Error("a channel constraint alone is still searchable")
	}
	if NewQuery("cats").IsEmpty() {
		t.Error("query with terms is not empty")
	}
}
