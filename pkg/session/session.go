// Package session holds the state of one interactive search session: the
// active query, the active filter set and the last result set. Operations
// either fully succeed (new consistent state) or fully fail (state
// unchanged); a failed retrieval never clobbers the results on screen.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/extract"
	"github.com/kunalnano/yt-search/pkg/intent"
	"github.com/kunalnano/yt-search/pkg/log"
)

// ErrNoSession is returned by operations that need a prior search.
var ErrNoSession = errors.New("no active search: run 'search <terms>' first")

// Searcher is the pipeline capability the session drives. *search.Service
// implements it; tests substitute their own.
type Searcher interface {
	Run(ctx context.Context, q core.Query, f core.FilterSet) ([]core.Video, extract.Stats, error)
}

// Session is owned by a single interactive loop. One exists per running
// shell; it is not safe for concurrent use and does not need to be.
type Session struct {
	searcher Searcher
	logger   *log.Logger

	query   core.Query
	filters core.FilterSet
	results []core.Video
	stats   extract.Stats
	active  bool

	descriptionsVisible bool
}

// New creates a session around a pipeline.
func New(searcher Searcher) *Session {
	return &Session{
		searcher: searcher,
		logger:   log.ForComponent("session"),
	}
}

// Search starts a fresh search. The filter set is reset first: explicit
// facets passed with this call are applied, then intent inference fills the
// facets still unset. Filters from a previous search do not carry over (a
// fresh search is a fresh context; refine and filter exist for keeping it).
func (s *Session) Search(ctx context.Context, raw string, explicit core.FilterSet) error {
	return s.run(ctx, core.NewQuery(raw), explicit.Merge(intent.Analyze(raw)))
}

// SearchExact starts a fresh search matching the terms as one exact phrase.
func (s *Session) SearchExact(ctx context.Context, phrase string, explicit core.FilterSet) error {
	return s.run(ctx, core.NewExactQuery(phrase), explicit.Merge(intent.Analyze(phrase)))
}

// Refine appends terms to the active query and re-runs the pipeline with
// the unchanged filter set. Terms concatenate; nothing is deduplicated.
func (s *Session) Refine(ctx context.Context, terms string) error {
	if !s.active {
		return ErrNoSession
	}
	return s.run(ctx, s.query.Refine(terms), s.filters)
}

// ApplyFilter sets one facet of the active filter set and re-runs the
// pipeline against the unchanged query. Invalid facet names or values are
// rejected before any retrieval happens.
func (s *Session) ApplyFilter(ctx context.Context, facet, value string) error {
	if !s.active {
		return ErrNoSession
	}

	filters := s.filters
	switch facet {
	case "duration":
		d, err := core.ParseDurationFilter(value)
		if err != nil {
			return err
		}
		filters.Duration = d
	case "date":
		d, err := core.ParseDateFilter(value)
		if err != nil {
			return err
		}
		filters.Date = d
	case "sort":
		o, err := core.ParseSortOrder(value)
		if err != nil {
			return err
		}
		filters.Sort = o
	case "hd":
		switch strings.ToLower(value) {
		case "", "on", "true":
			filters.HD = true
		case "off", "false":
			filters.HD = false
		default:
			return fmt.Errorf("invalid hd value %q (want on or off)", value)
		}
	default:
		return fmt.Errorf("unknown filter facet %q (want duration, date, sort or hd)", facet)
	}

	return s.run(ctx, s.query, filters)
}

// ClearFilters resets every facet to its default and re-runs the pipeline.
func (s *Session) ClearFilters(ctx context.Context) error {
	if !s.active {
		return ErrNoSession
	}
	return s.run(ctx, s.query, core.FilterSet{})
}

// ToggleDescriptions flips the description snippet display and returns the
// new state. Pure presentation state: no retrieval happens.
func (s *Session) ToggleDescriptions() bool {
	s.descriptionsVisible = !s.descriptionsVisible
	return s.descriptionsVisible
}

// SetDescriptionsVisible sets the initial display preference from config.
func (s *Session) SetDescriptionsVisible(v bool) {
	s.descriptionsVisible = v
}

// DescriptionsVisible reports the current display preference.
func (s *Session) DescriptionsVisible() bool {
	return s.descriptionsVisible
}

// SetSearcher swaps the pipeline, used when the config is hot-reloaded.
// The current query, filters and results stay as they are.
func (s *Session) SetSearcher(searcher Searcher) {
	s.searcher = searcher
}

// run executes the pipeline and commits the new state only on success.
func (s *Session) run(ctx context.Context, q core.Query, f core.FilterSet) error {
	results, stats, err := s.searcher.Run(ctx, q, f)
	if err != nil {
		return err
	}

	s.query = q
	s.filters = f
	s.results = results
	s.stats = stats
	s.active = true

	if stats.Degraded > 0 {
		s.logger.Debugf("%d record(s) partially parsed", stats.Degraded)
	}
	return nil
}

// Results returns a copy of the current result set in presented order.
// Callers may reorder or trim it without disturbing session state.
func (s *Session) Results() []core.Video {
	return append([]core.Video(nil), s.results...)
}

// Video resolves a 1-based display rank against the current result set, as
// last presented. Ranks from a previous result set are meaningless: any
// operation that replaces the results invalidates them.
func (s *Session) Video(n int) (core.Video, error) {
	if n < 1 || n > len(s.results) {
		return core.Video{}, fmt.Errorf("invalid video number %d (have %d results)", n, len(s.results))
	}
	return s.results[n-1], nil
}

// Query returns the active query.
func (s *Session) Query() core.Query {
	return s.query
}

// Filters returns the active filter set.
func (s *Session) Filters() core.FilterSet {
	return s.filters
}

// LastStats returns extraction diagnostics for the current result set.
func (s *Session) LastStats() extract.Stats {
	return s.stats
}

// Active reports whether a search has completed in this session.
func (s *Session) Active() bool {
	return s.active
}
