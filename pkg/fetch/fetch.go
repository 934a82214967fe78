// Package fetch retrieves raw result pages. The rest of the pipeline only
// sees the Fetcher capability: a synchronous call that returns text or
// fails. Retry policy, pacing and payload decompression all live here.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/kunalnano/yt-search/pkg/log"
	"golang.org/x/time/rate"
)

// Request describes one retrieval. The URL carries everything the encoder
// produced: query terms, quoting and filter tokens.
type Request struct {
	URL string
}

// Fetcher is the retrieval capability the search pipeline consumes.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (string, error)
}

// Error is returned when a retrieval ultimately fails. Status is the last
// HTTP status observed (0 for transport errors) and Attempts counts how many
// tries were made before giving up.
type Error struct {
	Status   int
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch failed after %d attempt(s): HTTP %d", e.Attempts, e.Status)
	}
	return fmt.Sprintf("fetch failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures an HTTPFetcher.
type Options struct {
	// Timeout bounds a single attempt.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after the first.
	// Transient failures (timeouts, connection errors, 5xx) are retried
	// with exponential backoff; 4xx responses fail immediately.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// RequestsPerMinute paces successive retrievals. 0 disables pacing.
	RequestsPerMinute int

	UserAgent      string
	AcceptLanguage string
}

// HTTPFetcher retrieves pages over HTTP with bounded retries. It asks for
// gzip explicitly and decompresses itself; setting Accept-Encoding by hand
// disables the transport's transparent decompression.
type HTTPFetcher struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewHTTPFetcher creates a fetcher with the given options. Zero-valued
// options get conservative defaults.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = 1 * time.Second
	}
	if opts.MaxBackoff < opts.InitialBackoff {
		opts.MaxBackoff = opts.InitialBackoff
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}

	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: limiter,
		logger:  log.ForComponent("fetch"),
	}
}

// Fetch performs the retrieval, retrying transient failures up to the
// configured cap. It never retries after a success and never retries 4xx
// responses.
func (f *HTTPFetcher) Fetch(ctx context.Context, req Request) (string, error) {
	backoff := f.opts.InitialBackoff
	attempts := 0

	var lastErr error
	var lastStatus int

	for attempt := 0; attempt <= f.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			f.logger.Warnf("attempt %d failed, retrying in %s", attempt, backoff)
			select {
			case <-ctx.Done():
				return "", &Error{Status: lastStatus, Attempts: attempts, Err: ctx.Err()}
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > f.opts.MaxBackoff {
				backoff = f.opts.MaxBackoff
			}
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return "", &Error{Status: lastStatus, Attempts: attempts, Err: err}
		}

		attempts++
		body, status, err := f.do(ctx, req)
		if err == nil && status == http.StatusOK {
			f.logger.Debugf("fetched %d bytes from %s", len(body), req.URL)
			return body, nil
		}

		lastErr = err
		lastStatus = status

		// Client errors are not retryable: the request itself is wrong.
		if status >= 400 && status < 500 {
			return "", &Error{Status: status, Attempts: attempts, Err: fmt.Errorf("HTTP %d", status)}
		}
		if err != nil {
			f.logger.Debugf("transport error: %v", err)
		}
	}

	if lastErr == nil && lastStatus != 0 {
		lastErr = fmt.Errorf("HTTP %d", lastStatus)
	}
	return "", &Error{Status: lastStatus, Attempts: attempts, Err: lastErr}
}

// do performs a single attempt, returning the decompressed body and status.
func (f *HTTPFetcher) do(ctx context.Context, req Request) (string, int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("creating request: %w", err)
	}
	if f.opts.UserAgent != "" {
		httpReq.Header.Set("User-Agent", f.opts.UserAgent)
	}
	if f.opts.AcceptLanguage != "" {
		httpReq.Header.Set("Accept-Language", f.opts.AcceptLanguage)
	}
	httpReq.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warnf("closing response body: %v", closeErr)
		}
	}()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", resp.StatusCode, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer func() {
			if closeErr := gz.Close(); closeErr != nil {
				f.logger.Warnf("closing gzip reader: %v", closeErr)
			}
		}()
		reader = gz
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	return string(body), resp.StatusCode, nil
}

// IsRetryable reports whether err would have been retried: anything except
// a 4xx-class Error. Exposed for callers that wrap their own policy on top.
func IsRetryable(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Status < 400 || fe.Status >= 500
	}
	return true
}
