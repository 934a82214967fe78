// Package search owns the retrieval pipeline: encoding a query and filter
// set into a request, fetching and extracting the page, then applying the
// local filter and sort semantics to the extracted records.
package search

import (
	"errors"
	"net/url"
	"strings"

	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/fetch"
)

// ErrEmptyQuery is returned when there is nothing to search for: no terms
// and no channel constraint. User-correctable; session state is untouched.
var ErrEmptyQuery = errors.New("empty query: type some search terms first")

// Endpoint filter tokens for the sp parameter. The endpoint accepts one
// token per request, so EncodeRequest picks the most useful one and the
// local filter engine enforces the full semantics either way.
var (
	dateTokens = map[core.DateFilter]string{
		core.DateToday: "EgIIAg==",
		core.DateWeek:  "EgIIAw==",
		core.DateMonth: "EgIIBA==",
		core.DateYear:  "EgIIBQ==",
	}
	durationTokens = map[core.DurationFilter]string{
		core.DurationShort:  "EgIYAQ==",
		core.DurationMedium: "EgIYAw==",
		core.DurationLong:   "EgIYAg==",
	}
	sortTokens = map[core.SortOrder]string{
		core.SortDate:  "CAI=",
		core.SortViews: "CAM=",
	}
	hdToken = "EgIgAQ=="
)

// EncodeRequest translates a query and filter set into the retrieval
// request. Terms are percent-encoded, exact phrases are wrapped in the
// double quoting the endpoint understands, and a channel constraint is
// normalized back into the literal channel:<name> term form.
func EncodeRequest(q core.Query, f core.FilterSet, baseURL string) (fetch.Request, error) {
	if q.IsEmpty() {
		return fetch.Request{}, ErrEmptyQuery
	}

	term := q.String()
	if q.Exact() && term != "" {
		term = `"` + term + `"`
	}
	if q.Channel() != "" {
		term = strings.TrimSpace(term + " channel:" + q.Channel())
	}

	params := url.Values{}
	params.Set("search_query", term)
	if sp := filterToken(f); sp != "" {
		params.Set("sp", sp)
	}

	return fetch.Request{URL: strings.TrimRight(baseURL, "/") + "/results?" + params.Encode()}, nil
}

// filterToken picks the single sp token worth sending. An explicit
// non-default sort wins; otherwise the most selective filter facet
// (date > duration > hd). Remote narrowing is advisory only.
func filterToken(f core.FilterSet) string {
	if tok, ok := sortTokens[f.Sort]; ok {
		return tok
	}
	if tok, ok := dateTokens[f.Date]; ok {
		return tok
	}
	if tok, ok := durationTokens[f.Duration]; ok {
		return tok
	}
	if f.HD {
		return hdToken
	}
	return ""
}
