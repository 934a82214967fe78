package search

import (
	"context"
	"time"

	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/extract"
	"github.com/kunalnano/yt-search/pkg/fetch"
	"github.com/kunalnano/yt-search/pkg/log"
)

// Service runs the full retrieval pipeline for one query: encode, fetch,
// extract, filter, sort, cap. It holds no session state; the session layer
// owns that.
type Service struct {
	fetcher    fetch.Fetcher
	baseURL    string
	maxResults int
	logger     *log.Logger
}

// NewService creates a pipeline service. maxResults caps the record count
// after filtering and sorting; values <= 0 mean no cap.
func NewService(fetcher fetch.Fetcher, baseURL string, maxResults int) *Service {
	return &Service{
		fetcher:    fetcher,
		baseURL:    baseURL,
		maxResults: maxResults,
		logger:     log.ForComponent("search"),
	}
}

// Run executes the pipeline and returns the filtered, sorted records. The
// returned Stats surface extraction diagnostics (dropped and partially
// parsed fragments). Run never partially succeeds: on any error the caller
// gets no records and keeps whatever state it had.
func (s *Service) Run(ctx context.Context, q core.Query, f core.FilterSet) ([]core.Video, extract.Stats, error) {
	req, err := EncodeRequest(q, f, s.baseURL)
	if err != nil {
		return nil, extract.Stats{}, err
	}

	s.logger.Debugf("fetching %s", req.URL)
	payload, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, extract.Stats{}, err
	}

	videos, stats, err := extract.Extract(payload)
	if err != nil {
		return nil, stats, err
	}

	videos = ApplyFilters(videos, q.Channel(), f, time.Now())
	SortVideos(videos, f.EffectiveSort())

	if s.maxResults > 0 && len(videos) > s.maxResults {
		videos = videos[:s.maxResults]
	}

	s.logger.Infof("%q: %d results (filters: %s)", q.String(), len(videos), f)
	return videos, stats, nil
}
